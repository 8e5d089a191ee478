package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vecgrad/internal/tensor"
)

func TestArray_String(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"int vector", []int{14, 19, 24}, "[14 19 24]"},
		{"float vector", []float64{0.5, 2, -1.25}, "[0.5 2. -1.25]"},
		{"int scalar", 7, "7"},
		{"matrix", [][]int{{1, 2}, {3, 4}}, "[[1 2] [3 4]]"},
		{"nan", []float64{math.NaN()}, "[NaN]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := tensor.FromNested(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, arr.String())
		})
	}
}

func TestArray_Equal(t *testing.T) {
	a, _ := tensor.FromNested([]int{1, 2})
	b, _ := tensor.FromNested([]int{1, 2})
	c, _ := tensor.FromNested([]float64{1, 2})
	d, _ := tensor.FromNested([][]int{{1, 2}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "dtype differs")
	assert.False(t, a.Equal(d), "shape differs")
	assert.False(t, a.Equal(nil))
}

func TestArray_AsType(t *testing.T) {
	a, _ := tensor.FromNested([]float64{1.7, -2.2})

	i := a.AsType(tensor.Int64)
	assert.Equal(t, []int64{1, -2}, i.Int64s())
	assert.Same(t, a, a.AsType(tensor.Float64))
}

func TestArray_Int64sPanicsForFloat(t *testing.T) {
	a, _ := tensor.FromNested([]float64{1})
	assert.Panics(t, func() { a.Int64s() })
}

func TestArray_ItemPanicsForVector(t *testing.T) {
	a, _ := tensor.FromNested([]int{1, 2})
	assert.Panics(t, func() { a.Item() })
}

func TestArray_Float64sIsCopy(t *testing.T) {
	a, _ := tensor.FromNested([]float64{1, 2})
	out := a.Float64s()
	out[0] = 42
	assert.Equal(t, float64(1), a.At(0))
}

func TestDataType(t *testing.T) {
	assert.True(t, tensor.Int64.IsIntegral())
	assert.False(t, tensor.Int64.IsFloating())
	assert.True(t, tensor.Float64.IsFloating())
	assert.Equal(t, "int64", tensor.Int64.String())
	assert.Equal(t, "float64", tensor.Float64.String())
	assert.Equal(t, 8, tensor.Float64.Size())

	assert.Equal(t, tensor.Int64, tensor.Promote(tensor.Int64, tensor.Int64))
	assert.Equal(t, tensor.Float64, tensor.Promote(tensor.Int64, tensor.Float64))
}
