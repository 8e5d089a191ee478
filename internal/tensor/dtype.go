// Package tensor provides the numeric array primitive consumed by the vecgrad autodiff engine.
package tensor

// Number is the set of Go element types an Array can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DataType represents runtime element-kind information for arrays.
type DataType int

// Supported data types for arrays.
const (
	Int64 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// IsIntegral reports whether elements of this type are integers.
func (dt DataType) IsIntegral() bool {
	return dt == Int64
}

// IsFloating reports whether elements of this type are floating-point.
func (dt DataType) IsFloating() bool {
	return dt == Float64
}

// Promote returns the result type of a binary arithmetic operation on a and b
// that keeps integers closed (add, subtract, multiply).
func Promote(a, b DataType) DataType {
	if a == Int64 && b == Int64 {
		return Int64
	}
	return Float64
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Number](dummy T) DataType {
	switch any(dummy).(type) {
	case float32, float64:
		return Float64
	default:
		return Int64
	}
}
