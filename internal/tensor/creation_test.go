package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vecgrad/internal/tensor"
)

func TestFromNested_IntegerVector(t *testing.T) {
	arr, err := tensor.FromNested([]int{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, tensor.Int64, arr.DType())
	assert.True(t, arr.Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []int64{1, 2, 3}, arr.Int64s())
}

func TestFromNested_Matrix(t *testing.T) {
	arr, err := tensor.FromNested([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	assert.Equal(t, tensor.Float64, arr.DType())
	assert.True(t, arr.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, float64(4), arr.At(1, 1))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, arr.Float64s())
}

func TestFromNested_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input any
		dtype tensor.DataType
		value float64
	}{
		{"int", 7, tensor.Int64, 7},
		{"int8", int8(-3), tensor.Int64, -3},
		{"uint16", uint16(9), tensor.Int64, 9},
		{"float32", float32(0.5), tensor.Float64, 0.5},
		{"float64", 2.25, tensor.Float64, 2.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := tensor.FromNested(tt.input)
			require.NoError(t, err)
			assert.True(t, arr.IsScalar())
			assert.Equal(t, tt.dtype, arr.DType())
			assert.Equal(t, tt.value, arr.Item())
		})
	}
}

func TestFromNested_PromotesMixedNumbersToFloat(t *testing.T) {
	arr, err := tensor.FromNested([]any{1, 2.5, int64(3)})
	require.NoError(t, err)

	assert.Equal(t, tensor.Float64, arr.DType())
	assert.Equal(t, []float64{1, 2.5, 3}, arr.Float64s())
}

func TestFromNested_GoArrayAndNestedArray(t *testing.T) {
	inner, err := tensor.FromNested([]int{1, 2})
	require.NoError(t, err)

	arr, err := tensor.FromNested([]any{inner, [2]int{3, 4}})
	require.NoError(t, err)
	assert.True(t, arr.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []int64{1, 2, 3, 4}, arr.Int64s())
}

func TestFromNested_ReturnsArrayUnchanged(t *testing.T) {
	arr := tensor.Scalar(3)
	got, err := tensor.FromNested(arr)
	require.NoError(t, err)
	assert.Same(t, arr, got)
}

func TestFromNested_Empty(t *testing.T) {
	arr, err := tensor.FromNested([]float64{})
	require.NoError(t, err)

	assert.Equal(t, tensor.Float64, arr.DType())
	assert.True(t, arr.Shape().Equal(tensor.Shape{0}))
	assert.Equal(t, 0, arr.NumElements())
	assert.Equal(t, "[]", arr.String())
}

func TestFromNested_ConstructionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"ragged", [][]int{{1, 2}, {3}}},
		{"scalar where sequence expected", []any{[]int{1}, 2}},
		{"sequence where scalar expected", []any{1, []int{2}}},
		{"map", map[string]int{"a": 1}},
		{"struct", struct{ X int }{1}},
		{"func", func() {}},
		{"nil in list", []any{1, nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := tensor.FromNested(tt.input)
			assert.Nil(t, arr)
			assert.ErrorIs(t, err, tensor.ErrConstruction)
		})
	}
}

func TestFromNested_TypeMismatchErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"string", "abc"},
		{"text in list", []any{1, 2, "three"}},
		{"bools", []bool{true, false}},
		{"complex", []complex128{1 + 2i}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arr, err := tensor.FromNested(tt.input)
			assert.Nil(t, arr)
			assert.ErrorIs(t, err, tensor.ErrTypeMismatch)
		})
	}
}

func TestFromSlice(t *testing.T) {
	arr, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, arr.DType())
	assert.Equal(t, float64(3), arr.At(1, 0))

	_, err = tensor.FromSlice([]int{1, 2, 3}, tensor.Shape{2, 2})
	assert.ErrorIs(t, err, tensor.ErrConstruction)
}

func TestNew_RejectsFractionalIntegers(t *testing.T) {
	_, err := tensor.New([]float64{1, 2.5}, tensor.Shape{2}, tensor.Int64)
	assert.ErrorIs(t, err, tensor.ErrTypeMismatch)
}

func TestNew_CopiesInput(t *testing.T) {
	data := []float64{1, 2, 3}
	arr, err := tensor.New(data, tensor.Shape{3}, tensor.Float64)
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, float64(1), arr.At(0))
}

func TestFull(t *testing.T) {
	arr, err := tensor.Full(tensor.Shape{2, 2}, 1.5, tensor.Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, arr.Float64s())
}
