package cpu

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/vecgrad/internal/tensor"
)

// Pow computes element-wise base ** exponent.
//
// The result is Int64 only when both operands are integral and every exponent
// is non-negative; otherwise it is Float64.
func (cpu *CPUBackend) Pow(base, exponent *tensor.Array) (*tensor.Array, error) {
	outShape, err := tensor.ElementwiseShape(base.Shape(), exponent.Shape())
	if err != nil {
		return nil, errors.Wrap(err, "pow")
	}
	n := outShape.NumElements()
	bs, es := expand(base, n), expand(exponent, n)

	dtype := tensor.Float64
	if base.DType().IsIntegral() && exponent.DType().IsIntegral() && (n == 0 || floats.Min(es) >= 0) {
		dtype = tensor.Int64
	}

	dst := make([]float64, n)
	for i := range dst {
		dst[i] = math.Pow(bs[i], es[i])
	}
	return tensor.Wrap(dst, outShape, dtype), nil
}

// Log computes element-wise natural logarithm: ln(x).
// Non-positive inputs yield NaN or -Inf, as with math.Log. The result is always Float64.
func (cpu *CPUBackend) Log(x *tensor.Array) *tensor.Array {
	src := x.Values()
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = math.Log(v)
	}
	return tensor.Wrap(dst, x.Shape(), tensor.Float64)
}

// Neg computes element-wise negation: -x.
func (cpu *CPUBackend) Neg(x *tensor.Array) *tensor.Array {
	dst := x.Float64s()
	floats.Scale(-1, dst)
	return tensor.Wrap(dst, x.Shape(), x.DType())
}
