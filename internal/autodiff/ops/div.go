package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// DivOp represents an element-wise division: output = a / b.
// The left operand is a node; the right is a node or a literal.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b² (node b only)
type DivOp struct{}

// Op returns "/".
func (DivOp) Op() Op { return OpDiv }

// Forward computes a / b.
func (op DivOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpDiv, left, right, KindNode, KindLiteral); err != nil {
		return nil, err
	}
	if err := requireShapes(OpDiv, left, right); err != nil {
		return nil, err
	}
	return backend.Div(left.Data, right.Data)
}

// Backward computes input gradients for division.
func (op DivOp) Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error) {
	c := newCalc(backend)
	var grads Grads
	switch {
	case isNode(left) && isNode(right):
		grads.Left = c.div(grad, right.Data)
		// grad_b = -(outputGrad * a) / (b * b)
		grads.Right = c.neg(c.div(c.mul(grad, left.Data), c.square(right.Data)))
	case isNode(left) && isLiteral(right):
		grads.Left = c.div(grad, right.Data)
	default:
		return Grads{}, unsupported(OpDiv, left, right)
	}
	return grads, c.err
}

// RDivOp represents a literal divided by a node: output = k / x.
// Operands are recorded as (x, k).
//
// Backward pass:
//   - d(k/x)/dx = -k/x², so grad_x = -k * outputGrad / x²
type RDivOp struct{}

// Op returns "1/".
func (RDivOp) Op() Op { return OpRDiv }

// Forward computes k / x where left is x and right is k.
func (op RDivOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpRDiv, left, right, KindLiteral); err != nil {
		return nil, err
	}
	if err := requireShapes(OpRDiv, left, right); err != nil {
		return nil, err
	}
	return backend.Div(right.Data, left.Data)
}

// Backward computes the gradient for the node divisor.
func (op RDivOp) Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error) {
	if !isNode(left) || !isLiteral(right) {
		return Grads{}, unsupported(OpRDiv, left, right)
	}
	c := newCalc(backend)
	gradX := c.neg(c.div(c.mul(right.Data, grad), c.square(left.Data)))
	return Grads{Left: gradX}, c.err
}
