// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/vecgrad/internal/tensor"
)

// Type aliases for public API

// Number is the set of Go element types an Array can be built from.
type Number = tensor.Number

// DataType represents the element kind of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Int64   DataType = tensor.Int64
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} is a 2×3 matrix; Shape{} is a 0-d scalar.
type Shape = tensor.Shape

// Array is an immutable n-dimensional numeric array.
type Array = tensor.Array

// Backend defines the elementwise operations a compute backend implements.
//
// Implementations:
//   - backend/cpu: Pure Go kernels built on gonum/floats
type Backend = tensor.Backend

// Errors reported by array construction and elementwise operations.
var (
	ErrConstruction  = tensor.ErrConstruction
	ErrTypeMismatch  = tensor.ErrTypeMismatch
	ErrShapeMismatch = tensor.ErrShapeMismatch
)

// New creates an Array from a copy of data.
func New(data []float64, shape Shape, dtype DataType) (*Array, error) {
	return tensor.New(data, shape, dtype)
}

// FromNested coerces Go scalars and nested slices into an Array.
//
// Example:
//
//	m, err := tensor.FromNested([][]float64{{1, 2}, {3, 4}})
func FromNested(v any) (*Array, error) {
	return tensor.FromNested(v)
}

// FromSlice creates an Array of the given shape from a Go slice.
func FromSlice[T Number](data []T, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a 0-d Array.
func Scalar[T Number](v T) *Array {
	return tensor.Scalar(v)
}

// Full creates an Array with every element set to value.
func Full(shape Shape, value float64, dtype DataType) (*Array, error) {
	return tensor.Full(shape, value, dtype)
}
