package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// AddOp represents an element-wise addition: output = a + b.
// Both operands must be nodes of identical shape.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// Op returns "+".
func (AddOp) Op() Op { return OpAdd }

// Forward computes a + b.
func (op AddOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpAdd, left, right, KindNode); err != nil {
		return nil, err
	}
	if err := requireShapes(OpAdd, left, right); err != nil {
		return nil, err
	}
	return backend.Add(left.Data, right.Data)
}

// Backward passes the upstream gradient unchanged to both operands.
func (op AddOp) Backward(grad *tensor.Array, left, right Input, _ tensor.Backend) (Grads, error) {
	if !isNode(left) || !isNode(right) {
		return Grads{}, unsupported(OpAdd, left, right)
	}
	return Grads{Left: grad, Right: grad}, nil
}
