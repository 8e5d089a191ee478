// Package cpu implements the CPU backend on top of gonum's floats kernels.
package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// CPUBackend implements elementwise array operations on CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.Array) (*tensor.Array, error) {
	return binary("add", a, b, tensor.Promote(a.DType(), b.DType()), floats.AddTo)
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.Array) (*tensor.Array, error) {
	return binary("sub", a, b, tensor.Promote(a.DType(), b.DType()), floats.SubTo)
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.Array) (*tensor.Array, error) {
	return binary("mul", a, b, tensor.Promote(a.DType(), b.DType()), floats.MulTo)
}

// Div performs element-wise true division. The result is always Float64.
func (cpu *CPUBackend) Div(a, b *tensor.Array) (*tensor.Array, error) {
	return binary("div", a, b, tensor.Float64, floats.DivTo)
}

// binary expands 0-d operands to the result length and runs a gonum kernel
// of the form kernel(dst, s, t).
func binary(
	name string,
	a, b *tensor.Array,
	dtype tensor.DataType,
	kernel func(dst, s, t []float64) []float64,
) (*tensor.Array, error) {
	outShape, err := tensor.ElementwiseShape(a.Shape(), b.Shape())
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	n := outShape.NumElements()
	dst := make([]float64, n)
	kernel(dst, expand(a, n), expand(b, n))
	return tensor.Wrap(dst, outShape, dtype), nil
}

// expand returns the elements of x, repeating a 0-d value n times.
func expand(x *tensor.Array, n int) []float64 {
	src := x.Values()
	if len(src) == n {
		return src
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = src[0]
	}
	return out
}
