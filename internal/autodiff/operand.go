package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// Operand is one recorded input of a node: either another Value or a raw literal.
// The kind is resolved once, when the node is built.
type Operand struct {
	kind    ops.Kind
	node    *Value
	literal *tensor.Array
}

// NodeOperand wraps a Value as an operand.
func NodeOperand(v *Value) Operand {
	return Operand{kind: ops.KindNode, node: v}
}

// LiteralOperand wraps a raw array as an operand.
func LiteralOperand(a *tensor.Array) Operand {
	return Operand{kind: ops.KindLiteral, literal: a}
}

// Kind reports what the operand holds.
func (o Operand) Kind() ops.Kind {
	return o.kind
}

// Node returns the operand's Value, or nil for literals and empty slots.
func (o Operand) Node() *Value {
	return o.node
}

// Literal returns the operand's raw array, or nil for nodes and empty slots.
func (o Operand) Literal() *tensor.Array {
	return o.literal
}

// Data returns the operand's numeric contents regardless of kind.
func (o Operand) Data() *tensor.Array {
	switch o.kind {
	case ops.KindNode:
		if o.node == nil {
			return nil
		}
		return o.node.data
	case ops.KindLiteral:
		return o.literal
	default:
		return nil
	}
}

// input converts the operand into the form operator rules consume.
func (o Operand) input() ops.Input {
	return ops.Input{Kind: o.kind, Data: o.Data()}
}

// toOperand resolves an arbitrary right-hand side into an Operand.
//
// Accepted:
//   - *Value and Operand
//   - *tensor.Array
//   - anything tensor.FromNested accepts (numeric scalars, nested slices)
func toOperand(op ops.Op, x any) (Operand, error) {
	switch v := x.(type) {
	case *Value:
		if v == nil {
			return Operand{}, errors.Wrapf(ErrOperandKind, "%q: nil value", op)
		}
		return NodeOperand(v), nil
	case Operand:
		if v.Data() == nil {
			return Operand{}, errors.Wrapf(ErrOperandKind, "%q: empty operand", op)
		}
		return v, nil
	}
	arr, err := tensor.FromNested(x)
	if err != nil {
		return Operand{}, errors.Wrapf(ErrOperandKind, "%q: %v", op, err)
	}
	return LiteralOperand(arr), nil
}
