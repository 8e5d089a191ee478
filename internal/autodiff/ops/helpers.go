package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// calc threads the first backend error through a sequence of elementwise steps,
// so gradient formulas read as formulas.
type calc struct {
	backend tensor.Backend
	err     error
}

func newCalc(backend tensor.Backend) *calc {
	return &calc{backend: backend}
}

func (c *calc) apply(fn func(a, b *tensor.Array) (*tensor.Array, error), a, b *tensor.Array) *tensor.Array {
	if c.err != nil {
		return nil
	}
	result, err := fn(a, b)
	if err != nil {
		c.err = err
		return nil
	}
	return result
}

func (c *calc) add(a, b *tensor.Array) *tensor.Array { return c.apply(c.backend.Add, a, b) }
func (c *calc) sub(a, b *tensor.Array) *tensor.Array { return c.apply(c.backend.Sub, a, b) }
func (c *calc) mul(a, b *tensor.Array) *tensor.Array { return c.apply(c.backend.Mul, a, b) }
func (c *calc) div(a, b *tensor.Array) *tensor.Array { return c.apply(c.backend.Div, a, b) }
func (c *calc) pow(a, b *tensor.Array) *tensor.Array { return c.apply(c.backend.Pow, a, b) }

func (c *calc) log(x *tensor.Array) *tensor.Array {
	if c.err != nil {
		return nil
	}
	return c.backend.Log(x)
}

func (c *calc) neg(x *tensor.Array) *tensor.Array {
	if c.err != nil {
		return nil
	}
	return c.backend.Neg(x)
}

// square returns x * x.
func (c *calc) square(x *tensor.Array) *tensor.Array {
	return c.mul(x, x)
}

var one = tensor.Scalar(1)

// requireKinds checks operand kinds at construction time.
func requireKinds(op Op, left, right Input, rightKinds ...Kind) error {
	if left.Kind != KindNode || left.Data == nil {
		return errors.Wrapf(ErrOperandKind, "%q: left operand is %s, want node", op, left.Kind)
	}
	for _, k := range rightKinds {
		if right.Kind == k && right.Data != nil {
			return nil
		}
	}
	return errors.Wrapf(ErrOperandKind, "%q: right operand is %s, want one of %v", op, right.Kind, rightKinds)
}

// requireShapes checks operand shapes at construction time.
// A 0-d literal on the right applies to every element; everything else must match exactly.
func requireShapes(op Op, left, right Input) error {
	if right.Kind == KindLiteral && right.Data.IsScalar() {
		return nil
	}
	if !left.Data.Shape().Equal(right.Data.Shape()) {
		return errors.Wrapf(tensor.ErrShapeMismatch, "%q: %v vs %v", op, left.Data.Shape(), right.Data.Shape())
	}
	return nil
}

// unsupported reports operand kinds that no branch of a backward rule handles.
func unsupported(op Op, left, right Input) error {
	return errors.Wrapf(ErrUnsupportedOperandKind, "%q: operands (%s, %s)", op, left.Kind, right.Kind)
}

func isNode(in Input) bool    { return in.Kind == KindNode && in.Data != nil }
func isLiteral(in Input) bool { return in.Kind == KindLiteral && in.Data != nil }
