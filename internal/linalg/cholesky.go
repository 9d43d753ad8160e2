package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
)

// Cholesky computes the Cholesky factorization of symmetric
// positive-definite s into a freshly owned matrix: U with s = Uᵀ @ U
// for an Upper declared triangle, or L with s = L @ Lᵀ for Lower. Only
// the declared triangle of s is read, and the non-participating
// triangle of the result is explicitly zeroed. A non-positive-definite
// matrix returns ErrNotPositiveDefinite.
func Cholesky(s Sym) (*Dense, error) {
	sv := s.m.mview()
	n := sv.square("cholesky")
	out := Zeros(n, n)
	stageTriangleInto(out.buf.data, n, sv, s.tri)
	if err := factorInto(out, s.tri, n); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

// CholeskyInPlace factors d in place, overwriting it with the factor
// designated by tri and zeroing the other triangle. It requires an
// exclusive buffer: factoring a matrix another holder can observe is
// an ownership violation. On failure the buffer contents are
// unspecified.
func CholeskyInPlace(d *Dense, tri Triangle) error {
	if !tri.valid() {
		panic("cholesky: invalid triangle")
	}
	v := d.RW()
	n := v.square("cholesky")
	return factorInto(d, tri, n)
}

// factorInto runs the factorization kernel over d's storage and zeroes
// the non-participating triangle on success.
func factorInto(d *Dense, tri Triangle, n int) error {
	if !kern.Potrf(blas64.Symmetric{N: n, Stride: n, Data: d.buf.data, Uplo: tri.uplo()}) {
		return fmt.Errorf("cholesky: %w", ErrNotPositiveDefinite)
	}
	zeroTriangle(d.general(), tri.other())
	return nil
}
