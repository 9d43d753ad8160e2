package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	blaskernel "github.com/statkit-ml/statkit/internal/backend/blas"
)

// Kernel is the native numerical kernel every operation dispatches
// through. Implementations follow the BLAS/LAPACK contract: row-major
// dense blocks, in-place mutation of at least one operand for the
// triangular, factorization and solve routines, and an ok flag raised
// to false on a numerically meaningful failure (zero pivot,
// non-convergence, non-positive-definite minor).
//
// The operation families above this interface are solely responsible
// for translating view layouts into these conventions and for staging
// private copies so caller data is never mutated.
type Kernel interface {
	// Multiply kernels.
	Gemm(tA, tB blas.Transpose, alpha float64, a, b blas64.General, beta float64, c blas64.General)
	Gemv(tA blas.Transpose, alpha float64, a blas64.General, x blas64.Vector, beta float64, y blas64.Vector)
	Symm(side blas.Side, alpha float64, a blas64.Symmetric, b blas64.General, beta float64, c blas64.General)
	Symv(alpha float64, a blas64.Symmetric, x blas64.Vector, beta float64, y blas64.Vector)
	Trmm(side blas.Side, tA blas.Transpose, alpha float64, a blas64.Triangular, b blas64.General)
	Trmv(tA blas.Transpose, a blas64.Triangular, x blas64.Vector)

	// Rank-update and reduction kernels.
	Syrk(t blas.Transpose, alpha float64, a blas64.General, beta float64, c blas64.Symmetric)
	Syr(alpha float64, x blas64.Vector, a blas64.Symmetric)
	Dot(x, y blas64.Vector) float64

	// Factor/solve kernels.
	Getrf(a blas64.General, ipiv []int) bool
	Getrs(tA blas.Transpose, a blas64.General, b blas64.General, ipiv []int)
	Getri(a blas64.General, ipiv []int, work []float64, lwork int) bool
	Gels(tA blas.Transpose, a, b blas64.General, work []float64, lwork int) bool
	Potrf(a blas64.Symmetric) bool
	Potrs(t blas64.Triangular, b blas64.General)

	// Name returns the kernel name (e.g. "gonum").
	Name() string
}

// kern is the kernel all operations dispatch through. The gonum-backed
// kernel is the default.
var kern Kernel = blaskernel.New()

// Use replaces the kernel used by subsequent operations. It is not
// safe to call concurrently with in-flight operations.
func Use(k Kernel) {
	kern = k
}

// Kern returns the kernel currently in use.
func Kern() Kernel {
	return kern
}
