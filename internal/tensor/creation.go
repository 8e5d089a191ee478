package tensor

import (
	"reflect"

	"github.com/pkg/errors"
)

// Scalar creates a 0-d array holding v.
//
// Example:
//
//	k := tensor.Scalar(2)   // int64 scalar
//	h := tensor.Scalar(0.5) // float64 scalar
func Scalar[T Number](v T) *Array {
	return wrap([]float64{float64(v)}, Shape{}, inferDataType(v))
}

// FromSlice creates an array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T Number](data []T, shape Shape) (*Array, error) {
	var dummy T
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}
	return New(buf, shape, inferDataType(dummy))
}

// Full creates an array of the given shape with every element set to value.
func Full(shape Shape, value float64, dtype DataType) (*Array, error) {
	buf := make([]float64, shape.NumElements())
	for i := range buf {
		buf[i] = value
	}
	return New(buf, shape, dtype)
}

// elemKind classifies leaves found while coercing nested input.
type elemKind int

const (
	kindInt elemKind = iota
	kindFloat
	kindNonNumeric // strings, bools, complex
)

// FromNested coerces nested Go values into an array.
//
// Accepted input: Go numeric scalars, *Array, and slices or arrays of those
// nested to any regular depth. Integers produce Int64; any float promotes
// the whole array to Float64.
//
// Errors:
//   - ErrConstruction: nil, ragged nesting, or values with no array reading
//     (maps, structs, funcs, channels)
//   - ErrTypeMismatch: strings, bools or complex numbers anywhere in the input
//
// Example:
//
//	a, err := tensor.FromNested([][]int{{1, 2}, {3, 4}}) // int64, shape (2, 2)
func FromNested(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		if a == nil {
			return nil, errors.Wrap(ErrConstruction, "nil array")
		}
		return a, nil
	}

	c := &coercer{}
	shape, err := c.shapeOf(reflect.ValueOf(v), 0)
	if err != nil {
		return nil, err
	}
	if err := c.collect(reflect.ValueOf(v), shape, 0); err != nil {
		return nil, err
	}
	if c.nonNumeric {
		return nil, errors.Wrapf(ErrTypeMismatch, "input contains %s", c.offender)
	}

	dtype := Int64
	if c.sawFloat || (len(c.data) == 0 && !c.sawInt) {
		dtype = Float64
	}
	return wrap(c.data, shape, dtype), nil
}

// coercer walks a nested value twice: once to fix the shape, once to collect elements.
type coercer struct {
	data       []float64
	sawInt     bool
	sawFloat   bool
	nonNumeric bool
	offender   string
}

// shapeOf determines the shape along the first element of every level.
func (c *coercer) shapeOf(rv reflect.Value, depth int) (Shape, error) {
	rv = unwrapInterface(rv)
	if !rv.IsValid() {
		return nil, errors.Wrapf(ErrConstruction, "nil value at depth %d", depth)
	}
	if arr, ok := asArray(rv); ok {
		return arr.shape.Clone(), nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() && depth > 0 {
			return nil, errors.Wrapf(ErrConstruction, "nil slice at depth %d", depth)
		}
		n := rv.Len()
		if n == 0 {
			return Shape{0}, nil
		}
		inner, err := c.shapeOf(rv.Index(0), depth+1)
		if err != nil {
			return nil, err
		}
		return append(Shape{n}, inner...), nil
	default:
		if _, ok := classify(rv); ok {
			return Shape{}, nil
		}
		return nil, errors.Wrapf(ErrConstruction, "unsupported value of type %s", rv.Type())
	}
}

// collect appends elements in row-major order, verifying every sub-sequence has the expected shape.
func (c *coercer) collect(rv reflect.Value, shape Shape, depth int) error {
	rv = unwrapInterface(rv)
	if !rv.IsValid() {
		return errors.Wrapf(ErrConstruction, "nil value at depth %d", depth)
	}
	if arr, ok := asArray(rv); ok {
		if !arr.shape.Equal(shape) {
			return errors.Wrapf(ErrConstruction, "inhomogeneous shape at depth %d: %v vs %v", depth, arr.shape, shape)
		}
		c.data = append(c.data, arr.data...)
		if arr.dtype == Float64 {
			c.sawFloat = true
		} else {
			c.sawInt = true
		}
		return nil
	}

	if len(shape) == 0 {
		kind, ok := classify(rv)
		if !ok {
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				return errors.Wrapf(ErrConstruction, "inhomogeneous shape at depth %d", depth)
			}
			return errors.Wrapf(ErrConstruction, "unsupported value of type %s", rv.Type())
		}
		switch kind {
		case kindInt:
			c.sawInt = true
			c.data = append(c.data, intValue(rv))
		case kindFloat:
			c.sawFloat = true
			c.data = append(c.data, rv.Float())
		case kindNonNumeric:
			if !c.nonNumeric {
				c.nonNumeric = true
				c.offender = rv.Type().String()
			}
			c.data = append(c.data, 0)
		}
		return nil
	}

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return errors.Wrapf(ErrConstruction, "inhomogeneous shape at depth %d: expected sequence of length %d, got %s",
			depth, shape[0], rv.Type())
	}
	if rv.Len() != shape[0] {
		return errors.Wrapf(ErrConstruction, "inhomogeneous shape at depth %d: length %d vs %d", depth, rv.Len(), shape[0])
	}
	for i := 0; i < rv.Len(); i++ {
		if err := c.collect(rv.Index(i), shape[1:], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func unwrapInterface(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func asArray(rv reflect.Value) (*Array, bool) {
	if !rv.CanInterface() {
		return nil, false
	}
	arr, ok := rv.Interface().(*Array)
	return arr, ok && arr != nil
}

// classify reports the element kind of a scalar leaf; false means the value is not a scalar.
func classify(rv reflect.Value) (elemKind, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindInt, true
	case reflect.Float32, reflect.Float64:
		return kindFloat, true
	case reflect.String, reflect.Bool, reflect.Complex64, reflect.Complex128:
		return kindNonNumeric, true
	default:
		return 0, false
	}
}

func intValue(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return float64(rv.Int())
	}
}
