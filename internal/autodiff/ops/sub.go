package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// SubOp represents an element-wise subtraction: output = a - b.
// Both operands must be nodes of identical shape.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Op returns "-".
func (SubOp) Op() Op { return OpSub }

// Forward computes a - b.
func (op SubOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpSub, left, right, KindNode); err != nil {
		return nil, err
	}
	if err := requireShapes(OpSub, left, right); err != nil {
		return nil, err
	}
	return backend.Sub(left.Data, right.Data)
}

// Backward passes the gradient to a and its negation to b.
func (op SubOp) Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error) {
	if !isNode(left) || !isNode(right) {
		return Grads{}, unsupported(OpSub, left, right)
	}
	return Grads{Left: grad, Right: backend.Neg(grad)}, nil
}
