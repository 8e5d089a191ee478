// Package autodiff implements reverse-mode automatic differentiation over numeric arrays.
//
// An Engine wraps any tensor.Backend. Leaf values are created with Engine.Value;
// applying operators to values records an expression DAG in which every node
// remembers its operator tag and operands. Backward walks the DAG from a result
// toward the leaves, writing a gradient onto every node it reaches.
//
// Architecture:
//   - Decorator pattern: Engine wraps a Backend that does the actual arithmetic
//   - Value: immutable data plus the operator and operands that produced it
//   - ops.Operation: per-operator forward and local-derivative rules
//   - Tape: depth-first post-order of the DAG, walked in reverse during backward
//
// Usage:
//
//	engine := autodiff.New(cpu.New())
//	x, _ := engine.Value([]float64{1, 2, 3}, autodiff.WithLabel("x"))
//	y := autodiff.Must(x.Pow(2)) // y = x²
//	_ = y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = [2 4 6]
package autodiff

import (
	"log/slog"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// Engine builds values on top of a Backend and runs backward passes over them.
type Engine struct {
	backend tensor.Backend // Wrapped backend (CPU, ...)
	logger  *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger backward passes report to. Passes log at Debug level.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine wrapping the given backend.
func New(backend tensor.Backend, opts ...EngineOption) *Engine {
	e := &Engine{
		backend: backend,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Backend returns the wrapped backend.
func (e *Engine) Backend() tensor.Backend {
	return e.backend
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return "Autodiff(" + e.backend.Name() + ")"
}
