package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestMean(t *testing.T) {
	assert.InDelta(t, 5.0, Mean([]float64{2, 4, 6, 8}), eps)
	assert.InDelta(t, -1.5, Mean([]float64{-3, 0}), eps)

	require.Panics(t, func() { Mean(nil) })
}

func TestVariance(t *testing.T) {
	// Deviations ±1, ±1 around mean 3: ss = 4, n-1 = 3.
	assert.InDelta(t, 4.0/3.0, Variance([]float64{2, 2, 4, 4}), eps)
	assert.InDelta(t, 0.0, Variance([]float64{7, 7, 7}), eps)

	require.Panics(t, func() { Variance([]float64{1}) })
}

func TestStdDev(t *testing.T) {
	assert.InDelta(t, 2.0, StdDev([]float64{1, 5, 1, 5}), eps)
}

func TestKurtosis(t *testing.T) {
	// A two-point symmetric sample has the minimum excess kurtosis -2.
	assert.InDelta(t, -2.0, Kurtosis([]float64{-1, -1, 1, 1}), eps)

	require.Panics(t, func() { Kurtosis([]float64{1}) })
}

func TestZScores(t *testing.T) {
	zs := ZScores([]float64{1, 5, 1, 5})
	assert.InDelta(t, -1, zs[0], eps)
	assert.InDelta(t, 1, zs[1], eps)
	assert.InDelta(t, -1, zs[2], eps)
	assert.InDelta(t, 1, zs[3], eps)

	assert.InDelta(t, 1.5, ZScore(13, 10, 2), eps)
}
