// Copyright 2026 StatKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/statkit-ml/statkit/internal/linalg"
)

// Core operand types.

// Matrix is a rank-2 operand: a borrowed View or an owned *Dense.
type Matrix = linalg.Matrix

// Vec is a rank-1 operand: a borrowed VecView or an owned *Vector.
type Vec = linalg.Vec

// View is a borrowed, non-owning matrix description.
type View = linalg.View

// VecView is a borrowed, non-owning vector description.
type VecView = linalg.VecView

// Dense is an owned, reference-counted matrix.
type Dense = linalg.Dense

// Vector is an owned, reference-counted vector.
type Vector = linalg.Vector

// Triangle designates the populated half of a symmetric or triangular
// matrix representation.
type Triangle = linalg.Triangle

// Triangle constants.
const (
	Upper Triangle = linalg.Upper
	Lower Triangle = linalg.Lower
)

// Sym tags a square operand as symmetric with a declared triangle.
type Sym = linalg.Sym

// Tri tags a square operand as triangular with a declared triangle.
type Tri = linalg.Tri

// Kernel is the native numerical kernel interface; see backend/blas
// for the default implementation.
type Kernel = linalg.Kernel

// Numerical failure sentinels.
var (
	ErrSingular            = linalg.ErrSingular
	ErrNotPositiveDefinite = linalg.ErrNotPositiveDefinite
)

// Use replaces the kernel used by subsequent operations.
func Use(k Kernel) { linalg.Use(k) }

// Creation functions.

// Zeros creates a zero-filled owned matrix.
func Zeros(rows, cols int) *Dense { return linalg.Zeros(rows, cols) }

// Eye creates the n×n identity matrix.
func Eye(n int) *Dense { return linalg.Eye(n) }

// FromSlice creates an owned matrix from a row-major slice.
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	return linalg.FromSlice(data, rows, cols)
}

// ZerosVec creates a zero-filled owned vector.
func ZerosVec(n int) *Vector { return linalg.ZerosVec(n) }

// VecFromSlice creates an owned vector copying data.
func VecFromSlice(data []float64) *Vector { return linalg.VecFromSlice(data) }

// ViewOf borrows data as a contiguous row-major rows×cols matrix.
func ViewOf(data []float64, rows, cols int) View { return linalg.ViewOf(data, rows, cols) }

// StridedView borrows data as a rows×cols matrix with a row stride.
func StridedView(data []float64, rows, cols, stride int) View {
	return linalg.StridedView(data, rows, cols, stride)
}

// VecViewOf borrows data as a contiguous vector.
func VecViewOf(data []float64) VecView { return linalg.VecViewOf(data) }

// StridedVecView borrows data as an n-element vector with increment inc.
func StridedVecView(data []float64, n, inc int) VecView {
	return linalg.StridedVecView(data, n, inc)
}

// Symmetric declares m to be symmetric with only tri populated.
func Symmetric(m Matrix, tri Triangle) Sym { return linalg.Symmetric(m, tri) }

// Triangular declares m to be triangular in tri; unit marks an
// implicit all-ones diagonal.
func Triangular(m Matrix, tri Triangle, unit bool) Tri { return linalg.Triangular(m, tri, unit) }

// Multiply family.

// MTimes computes a @ b.
func MTimes(a, b Matrix) *Dense { return linalg.MTimes(a, b) }

// MTimesVec computes a @ x with x as a column.
func MTimesVec(a Matrix, x Vec) *Vector { return linalg.MTimesVec(a, x) }

// VecMTimes computes xᵀ @ a with x as a row.
func VecMTimes(x Vec, a Matrix) *Vector { return linalg.VecMTimes(x, a) }

// Dot computes the dot product of x and y.
func Dot(x, y Vec) float64 { return linalg.Dot(x, y) }

// MTimesSymmetric computes s @ b reading only s's declared triangle.
func MTimesSymmetric(s Sym, b Matrix) *Dense { return linalg.MTimesSymmetric(s, b) }

// MTimesSymmetricRight computes a @ s for symmetric s.
func MTimesSymmetricRight(a Matrix, s Sym) *Dense { return linalg.MTimesSymmetricRight(a, s) }

// MTimesSymmetricVec computes s @ x for symmetric s.
func MTimesSymmetricVec(s Sym, x Vec) *Vector { return linalg.MTimesSymmetricVec(s, x) }

// MTimesTriangular computes t @ b for triangular t.
func MTimesTriangular(t Tri, b Matrix) *Dense { return linalg.MTimesTriangular(t, b) }

// MTimesTriangularRight computes a @ t for triangular t.
func MTimesTriangularRight(a Matrix, t Tri) *Dense { return linalg.MTimesTriangularRight(a, t) }

// MTimesTriangularVec computes t @ x for triangular t.
func MTimesTriangularVec(t Tri, x Vec) *Vector { return linalg.MTimesTriangularVec(t, x) }

// Derived-product family.

// Crossprod computes aᵀ @ a, or aᵀ @ b when b is given. The
// single-operand result is exactly symmetric and fully populated.
func Crossprod(a Matrix, b ...Matrix) *Dense { return linalg.Crossprod(a, b...) }

// TCrossprod computes a @ aᵀ, or a @ bᵀ when b is given.
func TCrossprod(a Matrix, b ...Matrix) *Dense { return linalg.TCrossprod(a, b...) }

// TCrossprodVec computes the outer product x @ xᵀ.
func TCrossprodVec(x Vec) *Dense { return linalg.TCrossprodVec(x) }

// QuadraticForm computes xᵀ @ a @ x.
func QuadraticForm(a Matrix, x Vec) float64 { return linalg.QuadraticForm(a, x) }

// QuadraticFormMat computes bᵀ @ a @ b.
func QuadraticFormMat(a, b Matrix) *Dense { return linalg.QuadraticFormMat(a, b) }

// QuadraticFormSym computes bᵀ @ s @ b for symmetric s.
func QuadraticFormSym(s Sym, b Matrix) *Dense { return linalg.QuadraticFormSym(s, b) }

// QuadraticFormSymVec computes xᵀ @ s @ x for symmetric s.
func QuadraticFormSymVec(s Sym, x Vec) float64 { return linalg.QuadraticFormSymVec(s, x) }

// Solve/factor family.

// Solve returns x solving a @ x = b; rectangular systems are solved in
// the least-squares sense.
func Solve(a, b Matrix) (*Dense, error) { return linalg.Solve(a, b) }

// SolveVec is Solve for a vector right-hand side.
func SolveVec(a Matrix, b Vec) (*Vector, error) { return linalg.SolveVec(a, b) }

// SolveSymmetric solves s @ x = b for symmetric s.
func SolveSymmetric(s Sym, b Matrix) (*Dense, error) { return linalg.SolveSymmetric(s, b) }

// SolveSymmetricVec is SolveSymmetric for a vector right-hand side.
func SolveSymmetricVec(s Sym, b Vec) (*Vector, error) { return linalg.SolveSymmetricVec(s, b) }

// SolvePosDef solves s @ x = b for symmetric positive-definite s.
func SolvePosDef(s Sym, b Matrix) (*Dense, error) { return linalg.SolvePosDef(s, b) }

// SolvePosDefVec is SolvePosDef for a vector right-hand side.
func SolvePosDefVec(s Sym, b Vec) (*Vector, error) { return linalg.SolvePosDefVec(s, b) }

// SolveCholesky solves a @ x = b given a previously computed Cholesky
// factor of a. The factor is trusted as supplied.
func SolveCholesky(f Tri, b Matrix) *Dense { return linalg.SolveCholesky(f, b) }

// SolveCholeskyVec is SolveCholesky for a vector right-hand side.
func SolveCholeskyVec(f Tri, b Vec) *Vector { return linalg.SolveCholeskyVec(f, b) }

// Inverse returns the inverse of square a.
func Inverse(a Matrix) (*Dense, error) { return linalg.Inverse(a) }

// Cholesky computes the Cholesky factorization of symmetric
// positive-definite s into a fresh matrix.
func Cholesky(s Sym) (*Dense, error) { return linalg.Cholesky(s) }

// CholeskyInPlace factors d in place; d's buffer must be exclusive.
func CholeskyInPlace(d *Dense, tri Triangle) error { return linalg.CholeskyInPlace(d, tri) }
