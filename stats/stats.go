// Copyright 2026 StatKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats provides descriptive and multivariate statistics for
// the StatKit toolkit.
//
// Multivariate quantities reach the dense linear-algebra core only
// through its multiply, cross-product and solve entry points; no
// distribution-specific vocabulary leaks into the core.
//
// Example:
//
//	sigma := stats.Covariance(obs)
//	d, err := stats.Mahalanobis(x, mu, linalg.Symmetric(sigma, linalg.Upper))
package stats

import (
	"github.com/statkit-ml/statkit/internal/stats"
	"github.com/statkit-ml/statkit/linalg"
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) float64 { return stats.Mean(xs) }

// Variance returns the sample variance (n-1 denominator) of xs.
func Variance(xs []float64) float64 { return stats.Variance(xs) }

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) float64 { return stats.StdDev(xs) }

// Kurtosis returns the excess kurtosis of xs.
func Kurtosis(xs []float64) float64 { return stats.Kurtosis(xs) }

// ZScore standardizes x against the given mean and standard deviation.
func ZScore(x, mean, sd float64) float64 { return stats.ZScore(x, mean, sd) }

// ZScores standardizes every element of xs against the sample moments.
func ZScores(xs []float64) []float64 { return stats.ZScores(xs) }

// MeanVector returns the column means of an n×p observation matrix.
func MeanVector(obs linalg.Matrix) *linalg.Vector { return stats.MeanVector(obs) }

// Covariance returns the sample covariance matrix of an n×p
// observation matrix (one observation per row).
func Covariance(obs linalg.Matrix) *linalg.Dense { return stats.Covariance(obs) }

// Mahalanobis returns the Mahalanobis distance of x from mu under the
// positive-definite covariance matrix sigma.
func Mahalanobis(x, mu linalg.Vec, sigma linalg.Sym) (float64, error) {
	return stats.Mahalanobis(x, mu, sigma)
}

// MahalanobisChol is Mahalanobis against a pre-factored Cholesky
// factor of the covariance matrix.
func MahalanobisChol(x, mu linalg.Vec, factor linalg.Tri) float64 {
	return stats.MahalanobisChol(x, mu, factor)
}
