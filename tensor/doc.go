// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric arrays that vecgrad values are built from.
//
// # Overview
//
// An Array is an immutable, row-major n-dimensional array whose elements are
// either all integers (Int64) or all floating-point (Float64). Arrays are
// passive data: arithmetic lives behind the Backend interface, implemented by
// backend/cpu.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/vecgrad/backend/cpu"
//	    "github.com/born-ml/vecgrad/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromNested([]int{1, 2, 3})
//	    y, _ := backend.Mul(x, tensor.Scalar(2)) // [2 4 6]
//	}
//
// # Coercion
//
// FromNested accepts Go numeric scalars and regular nested slices of them.
// Integers stay Int64 unless a float appears anywhere, in which case the
// whole array becomes Float64:
//
//	tensor.FromNested([]any{1, 2.5})       // float64 [1. 2.5]
//	tensor.FromNested([][]int{{1}, {2, 3}}) // ErrConstruction: ragged
//	tensor.FromNested([]any{1, "two"})     // ErrTypeMismatch
//
// # Shapes
//
// Elementwise operations require equal shapes, except that a 0-d operand is
// applied to every element of the other. There is no general broadcasting.
package tensor
