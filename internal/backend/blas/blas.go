// Package blas implements the native numerical kernel over gonum's
// blas64 and lapack64 bindings.
//
// Every routine here follows the BLAS/LAPACK contract: operands are
// dense row-major blocks described by blas64 headers, at least one
// operand is usually overwritten in place, and factorization routines
// report failure through an ok flag instead of partially-valid output.
// Layout translation and staging copies are the caller's problem; this
// package only forwards to the kernels.
package blas

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Kernel is the gonum-backed kernel. It is stateless; the zero value
// and New() are equivalent.
type Kernel struct{}

// New creates a new gonum-backed kernel.
func New() *Kernel {
	return &Kernel{}
}

// Name returns the kernel name.
func (*Kernel) Name() string {
	return "gonum"
}

// Gemm computes C = alpha * op(A) * op(B) + beta * C.
func (*Kernel) Gemm(tA, tB blas.Transpose, alpha float64, a, b blas64.General, beta float64, c blas64.General) {
	blas64.Gemm(tA, tB, alpha, a, b, beta, c)
}

// Gemv computes y = alpha * op(A) * x + beta * y.
func (*Kernel) Gemv(tA blas.Transpose, alpha float64, a blas64.General, x blas64.Vector, beta float64, y blas64.Vector) {
	blas64.Gemv(tA, alpha, a, x, beta, y)
}

// Symm computes C = alpha * A * B + beta * C (side Left) or
// C = alpha * B * A + beta * C (side Right), where A is symmetric and
// only its Uplo triangle is read.
func (*Kernel) Symm(side blas.Side, alpha float64, a blas64.Symmetric, b blas64.General, beta float64, c blas64.General) {
	blas64.Symm(side, alpha, a, b, beta, c)
}

// Symv computes y = alpha * A * x + beta * y for symmetric A.
func (*Kernel) Symv(alpha float64, a blas64.Symmetric, x blas64.Vector, beta float64, y blas64.Vector) {
	blas64.Symv(alpha, a, x, beta, y)
}

// Trmm overwrites B with alpha * op(A) * B (side Left) or
// alpha * B * op(A) (side Right), where A is triangular.
func (*Kernel) Trmm(side blas.Side, tA blas.Transpose, alpha float64, a blas64.Triangular, b blas64.General) {
	blas64.Trmm(side, tA, alpha, a, b)
}

// Trmv overwrites x with op(A) * x for triangular A.
func (*Kernel) Trmv(tA blas.Transpose, a blas64.Triangular, x blas64.Vector) {
	blas64.Trmv(tA, a, x)
}

// Syrk computes C = alpha * A * Aᵀ + beta * C (or AᵀA under trans);
// only the Uplo triangle of C is written.
func (*Kernel) Syrk(t blas.Transpose, alpha float64, a blas64.General, beta float64, c blas64.Symmetric) {
	blas64.Syrk(t, alpha, a, beta, c)
}

// Syr performs the symmetric rank-1 update A += alpha * x * xᵀ;
// only the Uplo triangle of A is written.
func (*Kernel) Syr(alpha float64, x blas64.Vector, a blas64.Symmetric) {
	blas64.Syr(alpha, x, a)
}

// Dot computes the dot product of x and y.
func (*Kernel) Dot(x, y blas64.Vector) float64 {
	return blas64.Dot(x, y)
}

// Getrf computes the LU factorization of A with partial pivoting,
// overwriting A. It returns false when a pivot is exactly zero.
func (*Kernel) Getrf(a blas64.General, ipiv []int) bool {
	return lapack64.Getrf(a, ipiv)
}

// Getrs solves A X = B (or Aᵀ X = B) using an LU factorization from
// Getrf, overwriting B with the solution.
func (*Kernel) Getrs(tA blas.Transpose, a blas64.General, b blas64.General, ipiv []int) {
	lapack64.Getrs(tA, a, b, ipiv)
}

// Getri computes the inverse of A in place using an LU factorization
// from Getrf. Workspace is sized by a query call with lwork == -1.
func (*Kernel) Getri(a blas64.General, ipiv []int, work []float64, lwork int) bool {
	return lapack64.Getri(a, ipiv, work, lwork)
}

// Gels solves an over- or underdetermined system min ‖B - A X‖ by QR
// or LQ factorization, overwriting both operands. Workspace is sized
// by a query call with lwork == -1. It returns false when A is not of
// full rank.
func (*Kernel) Gels(tA blas.Transpose, a, b blas64.General, work []float64, lwork int) bool {
	return lapack64.Gels(tA, a, b, work, lwork)
}

// Potrf computes the Cholesky factorization of positive-definite A,
// overwriting the Uplo triangle. It returns false when a leading minor
// is not positive definite.
func (*Kernel) Potrf(a blas64.Symmetric) bool {
	_, ok := lapack64.Potrf(a)
	return ok
}

// Potrs solves A X = B given the Cholesky factor of A from Potrf,
// overwriting B with the solution. It has no failure channel: the
// factor is trusted as computed.
func (*Kernel) Potrs(t blas64.Triangular, b blas64.General) {
	lapack64.Potrs(t, b)
}
