// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over arrays.
//
// Values record the operators applied to them, forming an expression DAG.
// Backward walks that DAG from a result toward its leaves and writes the
// gradient of the result onto every node it depends on.
//
// Example:
//
//	import (
//	    "github.com/born-ml/vecgrad/autodiff"
//	    "github.com/born-ml/vecgrad/backend/cpu"
//	)
//
//	func main() {
//	    engine := autodiff.New(cpu.New())
//
//	    x, _ := engine.Value([]int{1, 2, 3}, autodiff.WithLabel("x"))
//	    y, _ := engine.Value([]int{4, 5, 6}, autodiff.WithLabel("y"))
//
//	    a := autodiff.Must(autodiff.Must(x.RMul(2)).Add(autodiff.Must(y.RMul(3))))
//	    f := autodiff.Must(autodiff.Must(a.Pow(2)).Div(3))
//
//	    _ = f.Backward()
//	    fmt.Println(x.Grad(), y.Grad()) // df/dx, df/dy
//	}
//
// # Operators
//
// Add and Sub take two values of identical shape. Mul, Div and Pow take a
// value or a raw numeric literal on the right. RMul, RDiv and RPow build
// literal-on-the-left expressions such as 2 / x and 2 ** x.
//
// # Gradient policies
//
// By default (Accumulate) a node reached through several chains receives the
// sum of their contributions. Overwrite reproduces plain recursive propagation,
// where the last chain walked wins.
package autodiff

import (
	"log/slog"

	"github.com/born-ml/vecgrad/internal/autodiff"
	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/tensor"
)

// Engine builds values on a backend and runs backward passes over them.
type Engine = autodiff.Engine

// Value is a node of the expression graph.
type Value = autodiff.Value

// Operand is a recorded node input: another Value or a raw literal.
type Operand = autodiff.Operand

// Policy selects how gradients from several chains combine.
type Policy = autodiff.Policy

// Gradient policies.
const (
	Accumulate Policy = autodiff.Accumulate
	Overwrite  Policy = autodiff.Overwrite
)

// Op is the operator tag recorded on a node.
type Op = ops.Op

// Operator tags.
const (
	OpNone Op = ops.OpNone
	OpAdd  Op = ops.OpAdd
	OpSub  Op = ops.OpSub
	OpMul  Op = ops.OpMul
	OpDiv  Op = ops.OpDiv
	OpRDiv Op = ops.OpRDiv
	OpPow  Op = ops.OpPow
	OpRPow Op = ops.OpRPow
)

// Kind tags what an operand slot holds.
type Kind = ops.Kind

// Operand kinds.
const (
	KindNone    Kind = ops.KindNone
	KindNode    Kind = ops.KindNode
	KindLiteral Kind = ops.KindLiteral
)

// Option types.
type (
	EngineOption   = autodiff.EngineOption
	ValueOption    = autodiff.ValueOption
	BackwardOption = autodiff.BackwardOption
)

// Errors reported while building values or propagating gradients.
var (
	ErrConstruction           = autodiff.ErrConstruction
	ErrTypeMismatch           = autodiff.ErrTypeMismatch
	ErrShapeMismatch          = autodiff.ErrShapeMismatch
	ErrOperandKind            = autodiff.ErrOperandKind
	ErrUnsupportedOperandKind = autodiff.ErrUnsupportedOperandKind
)

// New creates an Engine wrapping the given backend.
//
// Example:
//
//	engine := autodiff.New(cpu.New(), autodiff.WithLogger(slog.Default()))
func New(backend tensor.Backend, opts ...EngineOption) *Engine {
	return autodiff.New(backend, opts...)
}

// WithLogger sets the logger backward passes report to at Debug level.
func WithLogger(logger *slog.Logger) EngineOption {
	return autodiff.WithLogger(logger)
}

// WithLabel attaches a human-readable name to a leaf value.
func WithLabel(label string) ValueOption {
	return autodiff.WithLabel(label)
}

// WithSeed sets the upstream gradient supplied to the backward root.
func WithSeed(seed any) BackwardOption {
	return autodiff.WithSeed(seed)
}

// WithPolicy selects the gradient policy of a backward pass.
func WithPolicy(p Policy) BackwardOption {
	return autodiff.WithPolicy(p)
}

// ParsePolicy converts "accumulate" or "overwrite" into a Policy.
func ParsePolicy(name string) (Policy, error) {
	return autodiff.ParsePolicy(name)
}

// Must returns v, panicking if err is non-nil.
func Must(v *Value, err error) *Value {
	return autodiff.Must(v, err)
}

// NodeOperand wraps a Value as an operand.
func NodeOperand(v *Value) Operand {
	return autodiff.NodeOperand(v)
}

// LiteralOperand wraps a raw array as an operand.
func LiteralOperand(a *tensor.Array) Operand {
	return autodiff.LiteralOperand(a)
}

// Topological returns every node reachable from root, operands before consumers.
func Topological(root *Value) []*Value {
	return autodiff.Topological(root)
}
