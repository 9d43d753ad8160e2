// Copyright 2026 StatKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dist provides closed-form probability distributions for the
// StatKit toolkit.
package dist

import "github.com/statkit-ml/statkit/internal/dist"

// Uniform is the continuous uniform distribution on [Min, Max].
type Uniform = dist.Uniform

// Cauchy is the Cauchy distribution with location X0 and scale Gamma.
type Cauchy = dist.Cauchy

// NewUniform creates a uniform distribution on [min, max].
func NewUniform(min, max float64) Uniform { return dist.NewUniform(min, max) }

// NewCauchy creates a Cauchy distribution with location x0 and scale
// gamma.
func NewCauchy(x0, gamma float64) Cauchy { return dist.NewCauchy(x0, gamma) }
