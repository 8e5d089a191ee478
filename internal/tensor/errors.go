package tensor

import "github.com/pkg/errors"

// Errors reported by array construction and elementwise operations.
// Callers match them with errors.Is.
var (
	// ErrConstruction means the input cannot be coerced into a numeric array at all.
	ErrConstruction = errors.New("cannot coerce input to a numeric array")

	// ErrTypeMismatch means the input coerces to an array whose elements are
	// neither uniformly integral nor uniformly floating-point.
	ErrTypeMismatch = errors.New("array elements must be all integers or all floats")

	// ErrShapeMismatch means two operand shapes are incompatible.
	ErrShapeMismatch = errors.New("shape mismatch")
)
