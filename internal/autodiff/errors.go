package autodiff

import (
	"github.com/born-ml/vecgrad/internal/autodiff/ops"
	"github.com/born-ml/vecgrad/internal/tensor"
)

// Errors reported while building values or propagating gradients.
// All of them are fail-fast: no node is returned and no gradient is written.
var (
	// ErrConstruction means leaf data cannot be coerced into a numeric array.
	ErrConstruction = tensor.ErrConstruction

	// ErrTypeMismatch means leaf data mixes element kinds that are neither
	// purely integral nor purely floating-point.
	ErrTypeMismatch = tensor.ErrTypeMismatch

	// ErrShapeMismatch means operand shapes (or a backward seed) are incompatible.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrOperandKind means an operator was given an operand it does not accept,
	// such as a literal passed to Add.
	ErrOperandKind = ops.ErrOperandKind

	// ErrUnsupportedOperandKind means backward met a node whose operand kinds
	// do not fit its operator tag.
	ErrUnsupportedOperandKind = ops.ErrUnsupportedOperandKind
)
