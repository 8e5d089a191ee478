package tensor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Array is an immutable n-dimensional numeric array.
//
// Elements are stored row-major as float64 regardless of DataType; Int64
// arrays hold integral values only, exact up to 2^53.
type Array struct {
	data   []float64 // Row-major elements, never mutated after construction
	shape  Shape     // Array dimensions
	stride []int     // Memory strides (row-major)
	dtype  DataType  // Element kind
}

// New creates an Array from a copy of data.
// Int64 arrays reject non-integral values with ErrTypeMismatch.
func New(data []float64, shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(ErrConstruction, err.Error())
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrConstruction, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	if dtype == Int64 {
		for i, v := range data {
			if v != math.Trunc(v) {
				return nil, errors.Wrapf(ErrTypeMismatch, "element %d (%v) is not integral", i, v)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return wrap(buf, shape.Clone(), dtype), nil
}

// wrap takes ownership of data without copying or validating it.
// Used by backends that have just allocated the result buffer.
func wrap(data []float64, shape Shape, dtype DataType) *Array {
	return &Array{
		data:   data,
		shape:  shape,
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}
}

// Wrap builds an Array over a freshly allocated buffer owned by the caller.
// The caller must not retain or modify data afterwards. Integer results are
// rounded toward zero so Int64 arrays stay integral.
//
// Panics if the element count does not match the shape.
func Wrap(data []float64, shape Shape, dtype DataType) *Array {
	if shape.NumElements() != len(data) {
		panic(fmt.Sprintf("wrap: shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data)))
	}
	if dtype == Int64 {
		for i, v := range data {
			data[i] = math.Trunc(v)
		}
	}
	return wrap(data, shape.Clone(), dtype)
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's memory strides.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's element kind.
func (a *Array) DType() DataType {
	return a.dtype
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// IsScalar reports whether the array is 0-d.
func (a *Array) IsScalar() bool {
	return a.shape.IsScalar()
}

// Values exposes the backing elements for read-only use by backends.
// WARNING: callers must not modify the returned slice.
func (a *Array) Values() []float64 {
	return a.data
}

// Float64s returns a copy of the elements as float64.
func (a *Array) Float64s() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// Int64s returns a copy of the elements as int64.
// Panics if the array's dtype is not Int64.
func (a *Array) Int64s() []int64 {
	if a.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", a.dtype))
	}
	out := make([]int64, len(a.data))
	for i, v := range a.data {
		out[i] = int64(v)
	}
	return out
}

// Item returns the single element of a one-element array.
// Panics for arrays with more than one element.
func (a *Array) Item() float64 {
	if len(a.data) != 1 {
		panic(fmt.Sprintf("item: array of shape %v has %d elements", a.shape, len(a.data)))
	}
	return a.data[0]
}

// At returns the element at the given multi-dimensional index.
func (a *Array) At(indices ...int) float64 {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("at: expected %d indices, got %d", len(a.shape), len(indices)))
	}
	flat := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("at: index %d out of range for dimension %d of size %d", idx, i, a.shape[i]))
		}
		flat += idx * a.stride[i]
	}
	return a.data[flat]
}

// AsType returns the array converted to dtype. Float to Int64 truncates.
func (a *Array) AsType(dtype DataType) *Array {
	if a.dtype == dtype {
		return a
	}
	return Wrap(a.Float64s(), a.shape, dtype)
}

// Equal reports whether both arrays have the same shape, dtype and elements.
func (a *Array) Equal(other *Array) bool {
	if other == nil || a.dtype != other.dtype || !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// String formats the array as space-separated nested brackets: [1 2 3], [[1 2] [3 4]], or 7 for 0-d.
func (a *Array) String() string {
	var sb strings.Builder
	a.format(&sb, 0, 0)
	return sb.String()
}

func (a *Array) format(sb *strings.Builder, dim, offset int) {
	if dim == len(a.shape) {
		sb.WriteString(a.formatElement(a.data[offset]))
		return
	}
	sb.WriteByte('[')
	for i := 0; i < a.shape[dim]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		a.format(sb, dim+1, offset+i*a.stride[dim])
	}
	sb.WriteByte(']')
}

func (a *Array) formatElement(v float64) string {
	if a.dtype == Int64 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eENI") {
		s += "."
	}
	return s
}
