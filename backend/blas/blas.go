// Copyright 2026 StatKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas exposes the gonum-backed native kernel.
//
// It is the default kernel; importing it explicitly is only needed to
// restore the default after linalg.Use, or to wrap it.
package blas

import (
	internalblas "github.com/statkit-ml/statkit/internal/backend/blas"
	"github.com/statkit-ml/statkit/linalg"
)

// Kernel is the gonum-backed kernel implementation.
type Kernel = internalblas.Kernel

// Compile-time check that Kernel implements linalg.Kernel.
var _ linalg.Kernel = (*Kernel)(nil)

// New creates a new gonum-backed kernel.
//
// Example:
//
//	linalg.Use(blas.New())
func New() *Kernel {
	return internalblas.New()
}
