package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Solve returns x solving a @ x = b. Square systems are solved by LU
// factorization with partial pivoting; rectangular systems fall back
// to a least-squares solution. Both a and b are staged into private
// copies before the mutating kernels run, so caller operands are never
// modified. A zero pivot or rank-deficient system returns ErrSingular.
func Solve(a, b Matrix) (*Dense, error) {
	av, bv := a.mview(), b.mview()
	if av.Rows() != bv.Rows() {
		panic(fmt.Sprintf("solve: shape mismatch [%d,%d] \\ [%d,%d]", av.Rows(), av.Cols(), bv.Rows(), bv.Cols()))
	}
	if av.Rows() == av.Cols() {
		return luSolve(stage(av), bv, "solve")
	}
	return lstsqSolve(av, bv)
}

// SolveVec is Solve for a vector right-hand side.
func SolveVec(a Matrix, b Vec) (*Vector, error) {
	x, err := Solve(a, b.vview().asColumn())
	if err != nil {
		return nil, err
	}
	return columnVector(x), nil
}

// luSolve factors af in place and overwrites a staged copy of bv with
// the solution. af must be a private square staged copy.
func luSolve(af blas64.General, bv View, op string) (*Dense, error) {
	ipiv := make([]int, af.Rows)
	if !kern.Getrf(af, ipiv) {
		return nil, fmt.Errorf("%s: %w", op, ErrSingular)
	}
	out, og := stageDense(bv)
	kern.Getrs(blas.NoTrans, af, og, ipiv)
	return out, nil
}

// lstsqSolve computes the least-squares solution of an m×n system.
// The right-hand side is staged into a max(m,n)-row block as the
// kernel requires, and the workspace is sized by a query call.
func lstsqSolve(av, bv View) (*Dense, error) {
	m, n := av.Dims()
	k := bv.Cols()
	rows := m
	if n > rows {
		rows = n
	}
	bg := blas64.General{Rows: rows, Cols: k, Stride: k, Data: make([]float64, rows*k)}
	stageInto(bg.Data, k, bv)
	af := stage(av)

	work := make([]float64, 1)
	kern.Gels(blas.NoTrans, af, bg, work, -1)
	lwork := int(work[0])
	if lwork < 1 {
		lwork = 1
	}
	work = make([]float64, lwork)
	if !kern.Gels(blas.NoTrans, af, bg, work, lwork) {
		return nil, fmt.Errorf("solve: least-squares system did not converge: %w", ErrSingular)
	}

	out := Zeros(n, k)
	stageInto(out.buf.data, k, ViewOf(bg.Data, n, k))
	return out, nil
}

// SolveSymmetric returns x solving s @ x = b for symmetric s, reading
// only the declared triangle of s. The symmetric matrix is
// reconstructed from that triangle into a private staged copy and
// factored there; the other half of s is never read.
func SolveSymmetric(s Sym, b Matrix) (*Dense, error) {
	sv := s.m.mview()
	n := sv.square("solve symmetric")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("solve symmetric: shape mismatch [%d,%d] \\ [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	return luSolve(stageSymmetric(sv, s.tri), bv, "solve symmetric")
}

// SolveSymmetricVec is SolveSymmetric for a vector right-hand side.
func SolveSymmetricVec(s Sym, b Vec) (*Vector, error) {
	x, err := SolveSymmetric(s, b.vview().asColumn())
	if err != nil {
		return nil, err
	}
	return columnVector(x), nil
}

// SolvePosDef returns x solving s @ x = b for symmetric
// positive-definite s by Cholesky factorization. The right-hand side
// is copied before the call because the kernel overwrites it. A
// non-positive-definite matrix returns ErrNotPositiveDefinite.
func SolvePosDef(s Sym, b Matrix) (*Dense, error) {
	sv := s.m.mview()
	n := sv.square("solve posdef")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("solve posdef: shape mismatch [%d,%d] \\ [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	af := stageTriangle(sv, s.tri)
	if !kern.Potrf(blas64.Symmetric{N: n, Stride: af.Stride, Data: af.Data, Uplo: s.tri.uplo()}) {
		return nil, fmt.Errorf("solve posdef: %w", ErrNotPositiveDefinite)
	}
	factor := blas64.Triangular{N: n, Stride: af.Stride, Data: af.Data, Uplo: s.tri.uplo(), Diag: blas.NonUnit}
	out, og := stageDense(bv)
	kern.Potrs(factor, og)
	return out, nil
}

// SolvePosDefVec is SolvePosDef for a vector right-hand side.
func SolvePosDefVec(s Sym, b Vec) (*Vector, error) {
	x, err := SolvePosDef(s, b.vview().asColumn())
	if err != nil {
		return nil, err
	}
	return columnVector(x), nil
}

// SolveCholesky returns x solving a @ x = b given a previously
// computed Cholesky factor of a, as produced by Cholesky. The factor
// is trusted as supplied: no positive-definiteness re-validation is
// performed and the kernel has no failure channel, so the caller
// guarantees a valid factor. A transposed factor view flips the
// triangle instead of copying.
func SolveCholesky(f Tri, b Matrix) *Dense {
	fv := f.m.mview()
	n := fv.square("solve cholesky")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("solve cholesky: shape mismatch [%d,%d] \\ [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	factor, _ := fv.triangular(f.tri, blas.NonUnit)
	out, og := stageDense(bv)
	kern.Potrs(factor, og)
	return out
}

// SolveCholeskyVec is SolveCholesky for a vector right-hand side.
func SolveCholeskyVec(f Tri, b Vec) *Vector {
	return columnVector(SolveCholesky(f, b.vview().asColumn()))
}

// Inverse returns the inverse of square a: LU factorization followed
// by an in-place invert on a private staged copy. A singular matrix
// returns ErrSingular.
func Inverse(a Matrix) (*Dense, error) {
	av := a.mview()
	n := av.square("inverse")
	out, og := stageDense(av)
	ipiv := make([]int, n)
	if !kern.Getrf(og, ipiv) {
		out.Release()
		return nil, fmt.Errorf("inverse: %w", ErrSingular)
	}
	work := make([]float64, 1)
	kern.Getri(og, ipiv, work, -1)
	lwork := int(work[0])
	if lwork < n {
		lwork = n
	}
	work = make([]float64, lwork)
	if !kern.Getri(og, ipiv, work, lwork) {
		out.Release()
		return nil, fmt.Errorf("inverse: %w", ErrSingular)
	}
	return out, nil
}
