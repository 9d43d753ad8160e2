package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// assertDense compares a result elementwise against a row-major slice.
func assertDense(t *testing.T, want []float64, d *Dense) {
	t.Helper()
	require.Equal(t, len(want), d.Rows()*d.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			assert.InDelta(t, want[i*d.Cols()+j], d.At(i, j), eps, "at [%d,%d]", i, j)
		}
	}
}

func TestMTimes(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustDense(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)

	c := MTimes(a, b)
	assert.Equal(t, 2, c.Rows())
	assert.Equal(t, 2, c.Cols())
	assertDense(t, []float64{58, 64, 139, 154}, c)
}

func TestMTimesIdentity(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	left := MTimes(Eye(2), a)
	assertDense(t, []float64{1, 2, 3, 4, 5, 6}, left)

	right := MTimes(a, Eye(3))
	assertDense(t, []float64{1, 2, 3, 4, 5, 6}, right)
}

func TestMTimesTransposedView(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	// aᵀ @ a through the transpose flag, no staged copy.
	c := MTimes(a.T(), a)
	assertDense(t, []float64{17, 22, 27, 22, 29, 36, 27, 36, 45}, c)
}

func TestMTimesStrided(t *testing.T) {
	// 2x2 window of a wider block times the identity.
	block := []float64{1, 2, -1, -1, 3, 4, -1, -1}
	v := StridedView(block, 2, 2, 4)

	c := MTimes(v, Eye(2))
	assertDense(t, []float64{1, 2, 3, 4}, c)
}

func TestMTimesShapeMismatch(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3}, 3, 1)
	require.Panics(t, func() { MTimes(a, b) })
}

func TestMTimesVec(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	x := VecFromSlice([]float64{1, 1, 1})

	y := MTimesVec(a, x)
	require.Equal(t, 2, y.Len())
	assert.InDelta(t, 6, y.AtVec(0), eps)
	assert.InDelta(t, 15, y.AtVec(1), eps)
}

func TestVecMTimes(t *testing.T) {
	a := mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	x := VecFromSlice([]float64{1, 1})

	y := VecMTimes(x, a)
	require.Equal(t, 3, y.Len())
	assert.InDelta(t, 5, y.AtVec(0), eps)
	assert.InDelta(t, 7, y.AtVec(1), eps)
	assert.InDelta(t, 9, y.AtVec(2), eps)
}

func TestDot(t *testing.T) {
	x := VecFromSlice([]float64{1, 2, 3})
	y := VecFromSlice([]float64{4, 5, 6})

	assert.InDelta(t, 32, Dot(x, y), eps)
	require.Panics(t, func() { Dot(x, VecFromSlice([]float64{1})) })
}

func TestMTimesSymmetric(t *testing.T) {
	// Only the upper triangle is populated; the lower holds NaN and
	// must never be read.
	s := mustDense(t, []float64{1, 2, math.NaN(), 3}, 2, 2)
	b := mustDense(t, []float64{1, 0, 0, 1}, 2, 2)

	c := MTimesSymmetric(Symmetric(s, Upper), b)
	assertDense(t, []float64{1, 2, 2, 3}, c)

	full := mustDense(t, []float64{1, 2, 2, 3}, 2, 2)
	b2 := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)
	got := MTimesSymmetric(Symmetric(s, Upper), b2)
	want := MTimes(full, b2)
	assertDense(t, want.Data(), got)
}

func TestMTimesSymmetricTransposedView(t *testing.T) {
	// The transpose of an upper-populated matrix carries its data in
	// the lower triangle; the tag follows the logical orientation.
	s := mustDense(t, []float64{1, 2, math.NaN(), 3}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	got := MTimesSymmetric(Symmetric(s.T(), Lower), b)
	want := MTimesSymmetric(Symmetric(s, Upper), b)
	assertDense(t, want.Data(), got)
}

func TestMTimesSymmetricRight(t *testing.T) {
	s := mustDense(t, []float64{1, 2, math.NaN(), 3}, 2, 2)
	a := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)
	full := mustDense(t, []float64{1, 2, 2, 3}, 2, 2)

	got := MTimesSymmetricRight(a, Symmetric(s, Upper))
	want := MTimes(a, full)
	assertDense(t, want.Data(), got)
}

func TestMTimesSymmetricVec(t *testing.T) {
	s := mustDense(t, []float64{1, 2, math.NaN(), 3}, 2, 2)
	x := VecFromSlice([]float64{1, -1})

	y := MTimesSymmetricVec(Symmetric(s, Upper), x)
	assert.InDelta(t, -1, y.AtVec(0), eps)
	assert.InDelta(t, -1, y.AtVec(1), eps)
}

func TestMTimesTriangular(t *testing.T) {
	// Lower triangle holds NaN; a triangular multiply must ignore it.
	tri := mustDense(t, []float64{2, 1, math.NaN(), 3}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	c := MTimesTriangular(Triangular(tri, Upper, false), b)
	assertDense(t, []float64{5, 8, 9, 12}, c)

	// The caller's operand is never mutated even though the kernel
	// works in place.
	assertDense(t, []float64{1, 2, 3, 4}, b)
}

func TestMTimesTriangularUnitDiagonal(t *testing.T) {
	tri := mustDense(t, []float64{2, 1, math.NaN(), 3}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	c := MTimesTriangular(Triangular(tri, Upper, true), b)
	assertDense(t, []float64{4, 6, 3, 4}, c)
}

func TestMTimesTriangularRight(t *testing.T) {
	tri := mustDense(t, []float64{2, 1, math.NaN(), 3}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	c := MTimesTriangularRight(b, Triangular(tri, Upper, false))
	assertDense(t, []float64{2, 7, 6, 15}, c)
}

func TestMTimesTriangularVec(t *testing.T) {
	tri := mustDense(t, []float64{2, 1, math.NaN(), 3}, 2, 2)
	x := VecFromSlice([]float64{1, 2})

	y := MTimesTriangularVec(Triangular(tri, Upper, false), x)
	assert.InDelta(t, 4, y.AtVec(0), eps)
	assert.InDelta(t, 6, y.AtVec(1), eps)

	// x itself is untouched.
	assert.Equal(t, 1.0, x.AtVec(0))
	assert.Equal(t, 2.0, x.AtVec(1))
}

func TestMTimesTriangularTransposedView(t *testing.T) {
	tri := mustDense(t, []float64{2, 1, math.NaN(), 3}, 2, 2)
	b := mustDense(t, []float64{1, 2, 3, 4}, 2, 2)

	// tᵀ is lower triangular: tᵀ @ b = [[2,4],[10,14]].
	c := MTimesTriangular(Triangular(tri.T(), Lower, false), b)
	assertDense(t, []float64{2, 4, 10, 14}, c)
}
