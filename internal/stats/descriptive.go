// Package stats provides descriptive and multivariate statistics on
// top of the dense linear-algebra core.
package stats

import "math"

// Mean returns the arithmetic mean of xs. Panics on an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		panic("stats: mean of empty sample")
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the sample variance (n-1 denominator) of xs.
// Panics on a sample of fewer than two observations.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		panic("stats: variance needs at least two observations")
	}
	m := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return ss / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Kurtosis returns the excess kurtosis of xs (0 for a normal
// population): m4/m2² - 3 over the population moments.
func Kurtosis(xs []float64) float64 {
	if len(xs) < 2 {
		panic("stats: kurtosis needs at least two observations")
	}
	m := Mean(xs)
	var m2, m4 float64
	for _, x := range xs {
		d := x - m
		d2 := d * d
		m2 += d2
		m4 += d2 * d2
	}
	n := float64(len(xs))
	m2 /= n
	m4 /= n
	return m4/(m2*m2) - 3
}

// ZScore standardizes x against the given mean and standard deviation.
func ZScore(x, mean, sd float64) float64 {
	return (x - mean) / sd
}

// ZScores standardizes every element of xs against the sample mean and
// standard deviation.
func ZScores(xs []float64) []float64 {
	m := Mean(xs)
	sd := StdDev(xs)
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = ZScore(x, m, sd)
	}
	return out
}
