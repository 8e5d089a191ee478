package autodiff

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// Value is a node of the expression graph.
//
// Data, operator and operands are fixed at construction. The gradient is
// nil until a backward pass reaches the node and may be replaced by later
// passes rooted at other results.
type Value struct {
	engine *Engine
	data   *tensor.Array
	left   Operand // zero Operand for leaves
	right  Operand
	op     ops.Op
	label  string
	grad   *tensor.Array
}

// ValueOption configures a leaf value.
type ValueOption func(*Value)

// WithLabel attaches a human-readable name to a value.
func WithLabel(label string) ValueOption {
	return func(v *Value) {
		v.label = label
	}
}

// Value creates a leaf node from user data.
//
// data may be a *tensor.Array, a Go numeric scalar, or a (nested) slice of them.
// Fails with ErrConstruction for input with no array reading and with
// ErrTypeMismatch for input that is not uniformly integral or floating-point.
func (e *Engine) Value(data any, opts ...ValueOption) (*Value, error) {
	arr, err := tensor.FromNested(data)
	if err != nil {
		return nil, err
	}
	v := &Value{engine: e, data: arr}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// Must returns v, panicking if err is non-nil. It is meant for expression
// chains whose operands are known to be valid.
//
// Example:
//
//	a := autodiff.Must(autodiff.Must(x.RMul(2)).Add(autodiff.Must(y.RMul(3))))
func Must(v *Value, err error) *Value {
	if err != nil {
		panic(err)
	}
	return v
}

// Data returns the node's array.
func (v *Value) Data() *tensor.Array {
	return v.data
}

// Grad returns the gradient written by the last backward pass that reached
// this node, or nil if none has.
func (v *Value) Grad() *tensor.Array {
	return v.grad
}

// Label returns the node's label.
func (v *Value) Label() string {
	return v.label
}

// SetLabel renames the node. Labels are cosmetic.
func (v *Value) SetLabel(label string) *Value {
	v.label = label
	return v
}

// Op returns the operator tag that produced the node; ops.OpNone for leaves.
func (v *Value) Op() ops.Op {
	return v.op
}

// Operands returns the recorded (left, right) operands. Both are empty for leaves.
func (v *Value) Operands() (left, right Operand) {
	return v.left, v.right
}

// IsLeaf reports whether the node was created directly from user data.
func (v *Value) IsLeaf() bool {
	return v.op == ops.OpNone
}

// Engine returns the engine the node belongs to.
func (v *Value) Engine() *Engine {
	return v.engine
}

// String returns the node's data formatted as an array literal.
func (v *Value) String() string {
	return v.data.String()
}

// GoString describes the node with its label.
func (v *Value) GoString() string {
	return fmt.Sprintf("Value(data=%s, label=%q)", v.data, v.label)
}

// Add returns v + other. other must be a *Value with the same shape.
func (v *Value) Add(other any) (*Value, error) {
	return v.apply(ops.OpAdd, other)
}

// Sub returns v - other. other must be a *Value with the same shape.
func (v *Value) Sub(other any) (*Value, error) {
	return v.apply(ops.OpSub, other)
}

// Mul returns v * other. other may be a *Value or a numeric literal.
func (v *Value) Mul(other any) (*Value, error) {
	return v.apply(ops.OpMul, other)
}

// Div returns v / other. other may be a *Value or a numeric literal.
func (v *Value) Div(other any) (*Value, error) {
	return v.apply(ops.OpDiv, other)
}

// Pow returns v ** other. other may be a *Value or a numeric literal.
func (v *Value) Pow(other any) (*Value, error) {
	return v.apply(ops.OpPow, other)
}

// RMul returns k * v for a literal k. Multiplication commutes, so the node
// is recorded with tag "*" and operands (v, k).
func (v *Value) RMul(k any) (*Value, error) {
	return v.reflected(ops.OpMul, k)
}

// RDiv returns k / v for a literal k, recorded with tag "1/" and operands (v, k).
func (v *Value) RDiv(k any) (*Value, error) {
	return v.reflected(ops.OpRDiv, k)
}

// RPow returns k ** v for a literal k, recorded with tag "1**" and operands (v, k).
func (v *Value) RPow(k any) (*Value, error) {
	return v.reflected(ops.OpRPow, k)
}

// reflected builds a node whose literal operand was written on the left in source.
func (v *Value) reflected(op ops.Op, k any) (*Value, error) {
	if _, isValue := k.(*Value); isValue {
		return nil, errors.Wrapf(ErrOperandKind, "%q: reflected operand must be a literal", op)
	}
	return v.apply(op, k)
}

// apply resolves the right operand and delegates to the operator's forward rule.
func (v *Value) apply(op ops.Op, other any) (*Value, error) {
	if v == nil {
		return nil, errors.Wrapf(ErrOperandKind, "%q: nil receiver", op)
	}
	right, err := toOperand(op, other)
	if err != nil {
		return nil, err
	}
	return v.engine.build(op, NodeOperand(v), right)
}

// build runs an operator's forward rule and records the result node.
func (e *Engine) build(op ops.Op, left, right Operand) (*Value, error) {
	operation, ok := ops.Lookup(op)
	if !ok {
		return nil, errors.Wrapf(ErrOperandKind, "unknown operator %q", op)
	}
	data, err := operation.Forward(left.input(), right.input(), e.backend)
	if err != nil {
		return nil, err
	}
	return &Value{
		engine: e,
		data:   data,
		left:   left,
		right:  right,
		op:     op,
	}, nil
}
