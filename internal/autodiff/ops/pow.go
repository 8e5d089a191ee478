package ops

import "github.com/born-ml/vecgrad/internal/tensor"

// PowOp represents an element-wise power: output = a ** b.
// The left operand (base) is a node; the right (exponent) is a node or a literal.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1), so grad_a = outputGrad * b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a), so grad_b = outputGrad * a^b * ln(a) (node b only)
type PowOp struct{}

// Op returns "**".
func (PowOp) Op() Op { return OpPow }

// Forward computes a ** b.
func (op PowOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpPow, left, right, KindNode, KindLiteral); err != nil {
		return nil, err
	}
	if err := requireShapes(OpPow, left, right); err != nil {
		return nil, err
	}
	return backend.Pow(left.Data, right.Data)
}

// Backward computes input gradients for exponentiation.
func (op PowOp) Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error) {
	if !isNode(left) || (!isNode(right) && !isLiteral(right)) {
		return Grads{}, unsupported(OpPow, left, right)
	}

	c := newCalc(backend)
	base, exponent := left.Data, right.Data

	var grads Grads
	grads.Left = c.mul(c.mul(grad, exponent), c.pow(base, c.sub(exponent, one)))
	if isNode(right) {
		grads.Right = c.mul(c.mul(grad, c.pow(base, exponent)), c.log(base))
	}
	return grads, c.err
}

// RPowOp represents a literal base raised to a node: output = k ** x.
// Operands are recorded as (x, k).
//
// Backward pass:
//   - d(k^x)/dx = k^x * ln(k), so grad_x = outputGrad * k^x * ln(k)
type RPowOp struct{}

// Op returns "1**".
func (RPowOp) Op() Op { return OpRPow }

// Forward computes k ** x where left is x and right is k.
func (op RPowOp) Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error) {
	if err := requireKinds(OpRPow, left, right, KindLiteral); err != nil {
		return nil, err
	}
	if err := requireShapes(OpRPow, left, right); err != nil {
		return nil, err
	}
	return backend.Pow(right.Data, left.Data)
}

// Backward computes the gradient for the node exponent.
func (op RPowOp) Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error) {
	if !isNode(left) || !isLiteral(right) {
		return Grads{}, unsupported(OpRPow, left, right)
	}
	c := newCalc(backend)
	k, x := right.Data, left.Data
	gradX := c.mul(c.mul(grad, c.pow(k, x)), c.log(k))
	return Grads{Left: gradX}, c.err
}
