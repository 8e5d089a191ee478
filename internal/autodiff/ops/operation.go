// Package ops defines the operator rules of the vecgrad autodiff engine.
//
// Each operator implements the Operation interface, which provides:
//   - Forward pass: validates operand kinds and shapes, computes the result via the backend
//   - Backward pass: computes the local gradient for each operand given the upstream gradient
//
// Supported operations:
//   - AddOp "+": d(a+b)/da = 1, d(a+b)/db = 1
//   - SubOp "-": d(a-b)/da = 1, d(a-b)/db = -1
//   - MulOp "*": d(a*b)/da = b, d(a*b)/db = a
//   - DivOp "/": d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - RDivOp "1/": d(k/x)/dx = -k/x²
//   - PowOp "**": d(a^b)/da = b·a^(b-1), d(a^b)/db = a^b·ln(a)
//   - RPowOp "1**": d(k^x)/dx = k^x·ln(k)
//
// The set is closed: there is no registration hook for new operators.
package ops

import (
	"github.com/pkg/errors"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// Op is the tag recorded on a node identifying the rule that produced it.
type Op string

// Operator tags. OpNone marks a leaf.
const (
	OpNone Op = ""
	OpAdd  Op = "+"
	OpSub  Op = "-"
	OpMul  Op = "*"
	OpDiv  Op = "/"
	OpRDiv Op = "1/"
	OpPow  Op = "**"
	OpRPow Op = "1**"
)

// Kind tags what an operand slot holds.
type Kind int

// Operand kinds.
const (
	KindNone    Kind = iota // empty slot (leaf nodes)
	KindNode                // a graph node that can receive a gradient
	KindLiteral             // a raw numeric literal or array, never differentiated
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNode:
		return "node"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

var (
	// ErrOperandKind means an operator was given an operand outside its accepted kind set.
	ErrOperandKind = errors.New("operand kind not accepted by operator")

	// ErrUnsupportedOperandKind means a recorded node carries operand kinds
	// inconsistent with its operator tag.
	ErrUnsupportedOperandKind = errors.New("operand kind inconsistent with recorded operator")
)

// Input is one recorded operand as seen by an operation.
type Input struct {
	Kind Kind
	Data *tensor.Array
}

// Grads holds the gradient contribution for each operand.
// A nil entry means that operand receives nothing (it is a literal).
type Grads struct {
	Left  *tensor.Array
	Right *tensor.Array
}

// Operation is a differentiable binary operator.
type Operation interface {
	// Op returns the tag recorded on nodes produced by this operation.
	Op() Op

	// Forward validates operand kinds and shapes and computes the result data.
	Forward(left, right Input, backend tensor.Backend) (*tensor.Array, error)

	// Backward computes operand gradients given the gradient of the result.
	//
	// Example for AddOp:
	//   left, right: a, b (both nodes)
	//   grad: dL/d(a+b)
	//   returns: Grads{Left: grad, Right: grad}
	Backward(grad *tensor.Array, left, right Input, backend tensor.Backend) (Grads, error)
}

var registry = map[Op]Operation{
	OpAdd:  AddOp{},
	OpSub:  SubOp{},
	OpMul:  MulOp{},
	OpDiv:  DivOp{},
	OpRDiv: RDivOp{},
	OpPow:  PowOp{},
	OpRPow: RPowOp{},
}

// Lookup returns the operation for a tag. OpNone and unknown tags report false.
func Lookup(op Op) (Operation, bool) {
	operation, ok := registry[op]
	return operation, ok
}
