// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"fmt"

	"github.com/born-ml/vecgrad/autodiff"
	"github.com/born-ml/vecgrad/backend/cpu"
)

func Example() {
	engine := autodiff.New(cpu.New())

	x, _ := engine.Value([]int{1, 2, 3}, autodiff.WithLabel("x"))
	y, _ := engine.Value([]int{4, 5, 6}, autodiff.WithLabel("y"))

	a := autodiff.Must(autodiff.Must(x.RMul(2)).Add(autodiff.Must(y.RMul(3))))
	c := autodiff.Must(a.Pow(2))
	f := autodiff.Must(c.Div(3))
	fmt.Println(a, c)

	if err := f.Backward(); err != nil {
		panic(err)
	}
	fmt.Printf("df/dx %.2f\n", x.Grad().Float64s())
	fmt.Printf("df/dy %.2f\n", y.Grad().Float64s())
	// Output:
	// [14 19 24] [196 361 576]
	// df/dx [18.67 25.33 32.00]
	// df/dy [28.00 38.00 48.00]
}

func ExampleWithPolicy() {
	engine := autodiff.New(cpu.New())
	x, _ := engine.Value(1.0)
	a := autodiff.Must(x.Mul(3))
	b := autodiff.Must(a.Add(a))

	_ = b.Backward(autodiff.WithPolicy(autodiff.Accumulate))
	fmt.Println("accumulate:", x.Grad())

	_ = b.Backward(autodiff.WithPolicy(autodiff.Overwrite))
	fmt.Println("overwrite:", x.Grad())
	// Output:
	// accumulate: 6
	// overwrite: 3
}
