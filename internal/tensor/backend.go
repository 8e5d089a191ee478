package tensor

// Backend defines the elementwise numeric operations the autodiff engine consumes.
// Backends handle the actual computation; arrays themselves are passive data.
//
// Binary operations accept operands of equal shape, or a 0-d operand on either
// side which is applied to every element of the other. Anything else fails with
// ErrShapeMismatch. No operation mutates its inputs.
//
// Implementations:
//   - CPU: Pure Go kernels built on gonum/floats
type Backend interface {
	// Element-wise binary operations
	Add(a, b *Array) (*Array, error)
	Sub(a, b *Array) (*Array, error)
	Mul(a, b *Array) (*Array, error)
	Div(a, b *Array) (*Array, error)
	Pow(base, exponent *Array) (*Array, error)

	// Element-wise unary operations
	Log(x *Array) *Array
	Neg(x *Array) *Array

	// Metadata
	Name() string
}
