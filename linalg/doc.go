// Copyright 2026 StatKit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides dense linear algebra for the StatKit
// statistics toolkit.
//
// # Overview
//
// The package sits between statistical code and a native numerical
// kernel (BLAS/LAPACK-equivalent, gonum-backed by default). It accepts
// operands in any storage variant and performs only the copies the
// kernel's contract strictly requires:
//   - View / VecView: borrowed, non-owning descriptions of a matrix or
//     vector, possibly strided or transposed.
//   - Dense / Vector: owned, reference-counted buffers returned by
//     every allocating operation.
//
// Any mix of borrowed and owned operands can be passed wherever a
// Matrix or Vec is expected; operations normalize them to read-only
// borrowed views before dispatch and never mutate caller data.
//
// # Basic Usage
//
//	a, _ := linalg.FromSlice([]float64{2, 1, 1, 3}, 2, 2)
//	b := linalg.VecFromSlice([]float64{1, -1})
//
//	x, err := linalg.SolveVec(a, b) // [0.8, -0.6]
//	if err != nil {
//	    // singular system
//	}
//
//	c := linalg.MTimes(a, a.T()) // a @ aᵀ, no transpose copy
//
// # Symmetric and triangular operands
//
// Matrices with only one populated triangle are tagged explicitly, so
// the untouched half is never read:
//
//	s := linalg.Symmetric(a, linalg.Upper)
//	y := linalg.MTimesSymmetric(s, b2)
//
//	u, err := linalg.Cholesky(s) // s = uᵀ @ u, lower triangle zeroed
//
// # Failure modes
//
// Shape mismatches are programming errors and panic before any kernel
// is invoked. Numerically meaningful failures (singular system,
// non-positive-definite matrix) are returned as errors wrapping
// ErrSingular or ErrNotPositiveDefinite and are never silently
// defaulted.
//
// # Concurrency
//
// All operations are synchronous and hold no state across calls.
// Concurrent calls sharing a buffer through read-only views are safe;
// the caller must serialize in-place mutation (CholeskyInPlace)
// against concurrent reads of the same buffer.
package linalg
