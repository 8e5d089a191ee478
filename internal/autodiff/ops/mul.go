package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// MulOp represents an element-wise multiplication: output = a * b.
// The left operand is a node; the right is a node or a literal.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a (node b only)
type MulOp struct{}

// Op returns "*".
func (MulOp) Op() Op { return OpMul }

// Forward computes a * b.
func (op MulOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpMul, left, right, KindNode, KindLiteral); err != nil {
		return nil, err
	}
	if err := requireShapes(OpMul, left, right); err != nil {
		return nil, err
	}
	return backend.Mul(left.Data, right.Data)
}

// Backward computes input gradients for multiplication.
func (op MulOp) Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error) {
	c := newCalc(backend)
	var grads Grads
	switch {
	case isNode(left) && isNode(right):
		grads.Left = c.mul(grad, right.Data)
		grads.Right = c.mul(grad, left.Data)
	case isNode(left) && isLiteral(right):
		grads.Left = c.mul(grad, right.Data)
	default:
		return Grads{}, unsupported(OpMul, left, right)
	}
	return grads, c.err
}
