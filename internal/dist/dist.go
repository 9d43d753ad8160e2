// Package dist provides closed-form probability distributions.
// All distributions are stateless value types.
package dist

import (
	"fmt"
	"math"
)

// Uniform is the continuous uniform distribution on [Min, Max].
type Uniform struct {
	Min, Max float64
}

// NewUniform creates a uniform distribution; panics unless Min < Max.
func NewUniform(min, max float64) Uniform {
	if min >= max {
		panic(fmt.Sprintf("dist: invalid uniform bounds [%g, %g]", min, max))
	}
	return Uniform{Min: min, Max: max}
}

// PDF returns the probability density at x.
func (u Uniform) PDF(x float64) float64 {
	if x < u.Min || x > u.Max {
		return 0
	}
	return 1 / (u.Max - u.Min)
}

// LogPDF returns the log probability density at x.
func (u Uniform) LogPDF(x float64) float64 {
	if x < u.Min || x > u.Max {
		return math.Inf(-1)
	}
	return -math.Log(u.Max - u.Min)
}

// CDF returns the cumulative probability at x.
func (u Uniform) CDF(x float64) float64 {
	switch {
	case x < u.Min:
		return 0
	case x > u.Max:
		return 1
	default:
		return (x - u.Min) / (u.Max - u.Min)
	}
}

// Quantile returns the inverse CDF at p; panics unless 0 <= p <= 1.
func (u Uniform) Quantile(p float64) float64 {
	checkProb(p)
	return u.Min + p*(u.Max-u.Min)
}

// Cauchy is the Cauchy distribution with location X0 and scale Gamma.
type Cauchy struct {
	X0, Gamma float64
}

// NewCauchy creates a Cauchy distribution; panics unless gamma > 0.
func NewCauchy(x0, gamma float64) Cauchy {
	if gamma <= 0 {
		panic(fmt.Sprintf("dist: invalid cauchy scale %g", gamma))
	}
	return Cauchy{X0: x0, Gamma: gamma}
}

// PDF returns the probability density at x.
func (c Cauchy) PDF(x float64) float64 {
	z := (x - c.X0) / c.Gamma
	return 1 / (math.Pi * c.Gamma * (1 + z*z))
}

// LogPDF returns the log probability density at x.
func (c Cauchy) LogPDF(x float64) float64 {
	z := (x - c.X0) / c.Gamma
	return -math.Log(math.Pi) - math.Log(c.Gamma) - math.Log1p(z*z)
}

// CDF returns the cumulative probability at x.
func (c Cauchy) CDF(x float64) float64 {
	return math.Atan((x-c.X0)/c.Gamma)/math.Pi + 0.5
}

// Quantile returns the inverse CDF at p; panics unless 0 <= p <= 1.
func (c Cauchy) Quantile(p float64) float64 {
	checkProb(p)
	return c.X0 + c.Gamma*math.Tan(math.Pi*(p-0.5))
}

func checkProb(p float64) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		panic(fmt.Sprintf("dist: probability %g out of [0, 1]", p))
	}
}
