package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossprod(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	c := Crossprod(a)
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 3, c.Cols())
	assertDense(t, []float64{17, 22, 27, 22, 29, 36, 27, 36, 45}, c)

	// The mirrored triangle is exactly symmetric, not merely close.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, c.At(i, j), c.At(j, i))
		}
	}
}

func TestCrossprodMatchesExplicitTranspose(t *testing.T) {
	a := mustDense(t, []float64{1, -2, 0, 3, 4, 5, -1, 2, 2, 0, 1, 1}, 4, 3)

	got := Crossprod(a)
	want := MTimes(a.T(), a)
	assertDense(t, want.Data(), got)
}

func TestCrossprodTwoOperands(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 3, 2)
	b := mustDense(t, []float64{1, 0, 0, 1, 1, 1}, 3, 2)

	got := Crossprod(a, b)
	want := MTimes(a.T(), b)
	assertDense(t, want.Data(), got)

	require.Panics(t, func() { Crossprod(a, b, b) })
}

func TestCrossprodTransposedView(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	// crossprod(aᵀ) == a @ aᵀ == tcrossprod(a).
	got := Crossprod(a.T())
	want := TCrossprod(a)
	assertDense(t, want.Data(), got)
}

func TestTCrossprod(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	c := TCrossprod(a)
	assertDense(t, []float64{14, 32, 32, 77}, c)

	b := mustDense(t, []float64{1, 0, 1, 0, 1, 1}, 2, 3)
	got := TCrossprod(a, b)
	want := MTimes(a, b.T())
	assertDense(t, want.Data(), got)
}

func TestTCrossprodVec(t *testing.T) {
	x := VecFromSlice([]float64{1, 2, 3})

	c := TCrossprodVec(x)
	assertDense(t, []float64{1, 2, 3, 2, 4, 6, 3, 6, 9}, c)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, c.At(i, j), c.At(j, i))
		}
	}
}

func TestQuadraticForm(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 10, 9, 8, 5, 6, 7}, 3, 3)
	w := VecFromSlice([]float64{1, 2, 4})

	assert.InDelta(t, 317, QuadraticForm(a, w), eps)
}

func TestQuadraticFormShape(t *testing.T) {
	rect := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	w := VecFromSlice([]float64{1, 2})
	require.Panics(t, func() { QuadraticForm(rect, w) })

	square := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)
	long := VecFromSlice([]float64{1, 2, 3})
	require.Panics(t, func() { QuadraticForm(square, long) })
}

func TestQuadraticFormMat(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 10, 9, 8, 5, 6, 7}, 3, 3)
	b := mustDense(t, []float64{1, 0, 0, 1, 1, 1}, 3, 2)

	got := QuadraticFormMat(a, b)

	ab := MTimes(a, b)
	want := MTimes(b.T(), ab)
	assertDense(t, want.Data(), got)
}

func TestQuadraticFormSym(t *testing.T) {
	s := mustDense(t, []float64{2, 1, 0, math.NaN(), 3, 1, math.NaN(), math.NaN(), 4}, 3, 3)
	full := mustDense(t, []float64{2, 1, 0, 1, 3, 1, 0, 1, 4}, 3, 3)
	b := mustDense(t, []float64{1, 0, 0, 1, 1, 1}, 3, 2)

	got := QuadraticFormSym(Symmetric(s, Upper), b)
	want := QuadraticFormMat(full, b)
	assertDense(t, want.Data(), got)
}

func TestQuadraticFormSymTransposedView(t *testing.T) {
	// A transposed b takes the symmetric-right path; the result must
	// match the staged two-multiply computation.
	s := mustDense(t, []float64{2, 1, 0, 1, 3, 1, 0, 1, 4}, 3, 3)
	stored := mustDense(t, []float64{1, 0, 1, 0, 1, 1}, 2, 3)

	got := QuadraticFormSym(Symmetric(s, Upper), stored.T())
	want := QuadraticFormMat(s, stored.T())
	assertDense(t, want.Data(), got)
}

func TestQuadraticFormSymVec(t *testing.T) {
	s := mustDense(t, []float64{2, 1, math.NaN(), 3}, 2, 2)
	x := VecFromSlice([]float64{1, 2})

	// [1,2] @ [[2,1],[1,3]] @ [1,2] = [4,7]·[1,2] = 18.
	assert.InDelta(t, 18, QuadraticFormSymVec(Symmetric(s, Upper), x), eps)
}
