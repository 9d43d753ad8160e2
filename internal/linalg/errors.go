package linalg

import "errors"

// Numerical failures reported by the solve/factor family. They are
// never retried internally: a detected failure aborts the computation
// and no partially-computed result is returned.
var (
	// ErrSingular reports a zero pivot or a rank-deficient system the
	// kernel could not solve.
	ErrSingular = errors.New("matrix is singular to working precision")

	// ErrNotPositiveDefinite reports a leading minor that is not
	// positive definite during a Cholesky-based factorization.
	ErrNotPositiveDefinite = errors.New("matrix is not positive definite")
)
