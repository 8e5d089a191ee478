package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/vecgrad/autodiff"
	"github.com/born-ml/vecgrad/backend/cpu"
)

// run evaluates a = 2*x + 3*y, b = x*y - a, c = a**2, f = c/3, then
// backpropagates from f and writes the intermediates and both gradients to w.
func run(w io.Writer, cfg Config, logger *slog.Logger) error {
	policy, err := autodiff.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}

	engine := autodiff.New(cpu.New(), autodiff.WithLogger(logger))
	x, err := engine.Value(cfg.X, autodiff.WithLabel("x"))
	if err != nil {
		return err
	}
	y, err := engine.Value(cfg.Y, autodiff.WithLabel("y"))
	if err != nil {
		return err
	}

	e := &expr{}
	x2 := e.step(x.RMul(2))
	y3 := e.step(y.RMul(3))
	a := e.step(x2.Add(y3))
	xy := e.step(x.Mul(y))
	b := e.step(xy.Sub(a))
	c := e.step(a.Pow(2))
	f := e.step(c.Div(3))
	if e.err != nil {
		return e.err
	}
	a.SetLabel("a")
	b.SetLabel("b")
	c.SetLabel("c")
	f.SetLabel("f")

	left, right := b.Operands()
	fmt.Fprintf(w, "a = %s\n", a)
	fmt.Fprintf(w, "b = x*y - a with x*y = %s, a = %s\n", left.Data(), right.Data())
	fmt.Fprintf(w, "c = %s\n", c)
	fmt.Fprintf(w, "f = %s\n", f)

	logger.Info("backward", "policy", policy.String(), "nodes", len(autodiff.Topological(f)))
	if err := f.Backward(autodiff.WithSeed(cfg.Seed), autodiff.WithPolicy(policy)); err != nil {
		return err
	}

	fmt.Fprintf(w, "df/dx = %s\n", x.Grad())
	fmt.Fprintf(w, "df/dy = %s\n", y.Grad())
	return nil
}

// expr threads the first construction error through a chain of operators.
type expr struct {
	err error
}

func (e *expr) step(v *autodiff.Value, err error) *autodiff.Value {
	if e.err != nil {
		return nil
	}
	if err != nil {
		e.err = err
	}
	return v
}
