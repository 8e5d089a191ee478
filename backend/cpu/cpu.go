// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for vecgrad arrays.
//
// Kernels for addition, subtraction, multiplication and division run on
// gonum's floats package; power and natural logarithm use the math package
// elementwise.
//
// Example:
//
//	import (
//	    "github.com/born-ml/vecgrad/autodiff"
//	    "github.com/born-ml/vecgrad/backend/cpu"
//	)
//
//	func main() {
//	    engine := autodiff.New(cpu.New())
//	    x, _ := engine.Value([]float64{1, 2, 3})
//	}
package cpu

import (
	internalcpu "github.com/born-ml/vecgrad/internal/backend/cpu"
	"github.com/born-ml/vecgrad/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
