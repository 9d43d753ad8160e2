package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewOf(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v := ViewOf(data, 2, 3)

	rows, cols := v.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 1.0, v.At(0, 0))
	assert.Equal(t, 6.0, v.At(1, 2))
}

func TestViewTranspose(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v := ViewOf(data, 2, 3).T()

	rows, cols := v.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2.0, v.At(1, 0))
	assert.Equal(t, 4.0, v.At(0, 1))

	// Double transpose restores the original orientation.
	vt := v.T()
	assert.Equal(t, 2, vt.Rows())
	assert.Equal(t, 2.0, vt.At(0, 1))
}

func TestStridedView(t *testing.T) {
	// A 2x2 window into a 2x4 block.
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	v := StridedView(data, 2, 2, 4)

	assert.Equal(t, 1.0, v.At(0, 0))
	assert.Equal(t, 2.0, v.At(0, 1))
	assert.Equal(t, 5.0, v.At(1, 0))
	assert.Equal(t, 6.0, v.At(1, 1))
}

func TestViewValidation(t *testing.T) {
	data := make([]float64, 6)

	tests := []struct {
		name string
		fn   func()
	}{
		{"zero rows", func() { ViewOf(data, 0, 3) }},
		{"negative cols", func() { ViewOf(data, 2, -1) }},
		{"stride shorter than row", func() { StridedView(data, 2, 3, 2) }},
		{"buffer too short", func() { ViewOf(data, 3, 3) }},
		{"index out of range", func() { ViewOf(data, 2, 3).At(2, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, tt.fn)
		})
	}
}

func TestVecView(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	v := VecViewOf(data)
	assert.Equal(t, 6, v.Len())
	assert.Equal(t, 4.0, v.AtVec(3))

	// Every other element.
	s := StridedVecView(data, 3, 2)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1.0, s.AtVec(0))
	assert.Equal(t, 3.0, s.AtVec(1))
	assert.Equal(t, 5.0, s.AtVec(2))
}

func TestVecViewValidation(t *testing.T) {
	data := make([]float64, 4)

	require.Panics(t, func() { StridedVecView(data, 0, 1) })
	require.Panics(t, func() { StridedVecView(data, 2, 0) })
	require.Panics(t, func() { StridedVecView(data, 3, 2) })
	require.Panics(t, func() { VecViewOf(data).AtVec(4) })
}
