package stats

import (
	"fmt"
	"math"

	"github.com/statkit-ml/statkit/internal/linalg"
	"github.com/statkit-ml/statkit/internal/parallel"
)

// MeanVector returns the column means of an n×p observation matrix
// (one observation per row).
func MeanVector(obs linalg.Matrix) *linalg.Vector {
	n, p := obs.Dims()
	mu := linalg.ZerosVec(p)
	for j := 0; j < p; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += obs.At(i, j)
		}
		mu.SetVec(j, sum/float64(n))
	}
	return mu
}

// Covariance returns the p×p sample covariance matrix of an n×p
// observation matrix: the cross-product of the column-centered data
// scaled by 1/(n-1). The result is exactly symmetric.
func Covariance(obs linalg.Matrix) *linalg.Dense {
	n, p := obs.Dims()
	if n < 2 {
		panic("stats: covariance needs at least two observations")
	}
	mu := MeanVector(obs)
	defer mu.Release()

	centered := linalg.Zeros(n, p)
	parallel.For(n, func(i int) {
		for j := 0; j < p; j++ {
			centered.Set(i, j, obs.At(i, j)-mu.AtVec(j))
		}
	}, parallel.DefaultConfig())
	defer centered.Release()

	sigma := linalg.Crossprod(centered)
	sigma.Scale(1 / float64(n-1))
	return sigma
}

// Mahalanobis returns the Mahalanobis distance of x from mu under the
// positive-definite covariance matrix sigma: sqrt((x-mu)ᵀ Σ⁻¹ (x-mu)),
// computed through a positive-definite solve rather than an explicit
// inverse.
func Mahalanobis(x, mu linalg.Vec, sigma linalg.Sym) (float64, error) {
	if x.Len() != mu.Len() {
		panic(fmt.Sprintf("stats: length mismatch %d vs %d", x.Len(), mu.Len()))
	}
	d := linalg.ZerosVec(x.Len())
	for i := 0; i < x.Len(); i++ {
		d.SetVec(i, x.AtVec(i)-mu.AtVec(i))
	}
	defer d.Release()

	y, err := linalg.SolvePosDefVec(sigma, d)
	if err != nil {
		return 0, fmt.Errorf("mahalanobis: %w", err)
	}
	defer y.Release()
	return math.Sqrt(linalg.Dot(d, y)), nil
}

// MahalanobisChol is Mahalanobis against a pre-factored Cholesky
// factor of the covariance matrix, for repeated distance computations
// against one distribution.
func MahalanobisChol(x, mu linalg.Vec, factor linalg.Tri) float64 {
	if x.Len() != mu.Len() {
		panic(fmt.Sprintf("stats: length mismatch %d vs %d", x.Len(), mu.Len()))
	}
	d := linalg.ZerosVec(x.Len())
	for i := 0; i < x.Len(); i++ {
		d.SetVec(i, x.AtVec(i)-mu.AtVec(i))
	}
	defer d.Release()

	y := linalg.SolveCholeskyVec(factor, d)
	defer y.Release()
	return math.Sqrt(linalg.Dot(d, y))
}
