package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/statkit-ml/statkit/internal/parallel"
)

// par splits large staging copies across CPUs; small operands stay on
// the calling goroutine.
var par = parallel.DefaultConfig()

// This file translates views into kernel operand headers. Two regimes:
//
//   - Kernels with an explicit transpose flag (Gemm, Gemv, Trmm, ...)
//     get a zero-copy header over the stored block plus the flag;
//     strides are reinterpreted instead of copied.
//   - Kernels without the flag, and every kernel that mutates its
//     operand, get a private staged copy in the canonical contiguous
//     row-major layout. Staging buffers live for one call only.
//
// Symmetric and triangular headers never need staging for the tagged
// operand: transposing a matrix read through a declared triangle is
// the same matrix read through the opposite triangle.

// general returns a zero-copy kernel header for the stored block of v
// and the transpose flag resolving its logical orientation.
func (v View) general() (blas64.General, blas.Transpose) {
	g := blas64.General{Rows: v.rows, Cols: v.cols, Stride: v.stride, Data: v.data}
	if v.trans {
		return g, blas.Trans
	}
	return g, blas.NoTrans
}

// plainGeneral returns a header for v usable by kernels that have no
// transpose flag for this operand. Transposed views are staged into a
// private contiguous copy; plain and strided views are zero-copy.
func (v View) plainGeneral() blas64.General {
	if v.trans {
		return stage(v)
	}
	g, _ := v.general()
	return g
}

// symmetric returns a header reading only the declared triangle of v.
// A transposed view flips the triangle instead of copying.
func (v View) symmetric(tri Triangle) blas64.Symmetric {
	uplo := tri.uplo()
	if v.trans {
		uplo = tri.other().uplo()
	}
	return blas64.Symmetric{N: v.rows, Stride: v.stride, Data: v.data, Uplo: uplo}
}

// triangular returns a header reading only the declared triangle of v
// plus the transpose flag. As with symmetric, transposition is a
// triangle flip, not a copy.
func (v View) triangular(tri Triangle, diag blas.Diag) (blas64.Triangular, blas.Transpose) {
	uplo := tri.uplo()
	t := blas.NoTrans
	if v.trans {
		uplo = tri.other().uplo()
		t = blas.Trans
	}
	return blas64.Triangular{N: v.rows, Stride: v.stride, Data: v.data, Uplo: uplo, Diag: diag}, t
}

// flip inverts a transpose flag.
func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}
	return blas.NoTrans
}

// blasVec returns the kernel header for a vector view.
func (v VecView) blasVec() blas64.Vector {
	return blas64.Vector{N: v.n, Inc: v.inc, Data: v.data}
}

// stage copies v into a freshly allocated contiguous row-major block,
// resolving any stride or transposition. The copy is private to the
// enclosing call.
func stage(v View) blas64.General {
	rows, cols := v.Dims()
	g := blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: make([]float64, rows*cols)}
	stageInto(g.Data, cols, v)
	return g
}

// stageInto copies v into dst with the given row stride, resolving any
// source stride or transposition.
func stageInto(dst []float64, stride int, v View) {
	if !v.trans {
		parallel.For(v.rows, func(i int) {
			copy(dst[i*stride:i*stride+v.cols], v.data[i*v.stride:i*v.stride+v.cols])
		}, par)
		return
	}
	// Gather a transposed block, one destination row per iteration.
	parallel.For(v.cols, func(i int) {
		for j := 0; j < v.rows; j++ {
			dst[i*stride+j] = v.data[j*v.stride+i]
		}
	}, par)
}

// stageDense copies v into a freshly owned matrix of the same logical
// shape and returns it with its kernel header. Used when a mutating
// kernel writes its result over an operand: the copy becomes the
// result buffer and the caller's data stays intact.
func stageDense(v View) (*Dense, blas64.General) {
	rows, cols := v.Dims()
	d := Zeros(rows, cols)
	stageInto(d.buf.data, cols, v)
	return d, d.general()
}

// stageTriangle copies only the declared triangle of square view v
// (diagonal included) into a fresh contiguous block; the other half is
// left zero and must not be read by the kernel.
func stageTriangle(v View, tri Triangle) blas64.General {
	n := v.Rows()
	g := blas64.General{Rows: n, Cols: n, Stride: n, Data: make([]float64, n*n)}
	stageTriangleInto(g.Data, n, v, tri)
	return g
}

// stageTriangleInto copies the declared triangle of square view v into
// dst with the given row stride, leaving the other half untouched.
func stageTriangleInto(dst []float64, stride int, v View, tri Triangle) {
	n := v.Rows()
	if tri == Upper {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				dst[i*stride+j] = v.At(i, j)
			}
		}
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				dst[i*stride+j] = v.At(i, j)
			}
		}
	}
}

// stageSymmetric builds a fully populated matrix from the declared
// triangle of v, mirroring it across the diagonal. The other half of v
// is never read.
func stageSymmetric(v View, tri Triangle) blas64.General {
	g := stageTriangle(v, tri)
	mirrorTriangle(g, tri)
	return g
}

// general returns the kernel header over the owned buffer. The caller
// must hold the only reference when the kernel mutates it; freshly
// allocated results always do.
func (d *Dense) general() blas64.General {
	return blas64.General{Rows: d.rows, Cols: d.cols, Stride: d.cols, Data: d.buf.data}
}

// mirrorTriangle copies the from triangle of a square block onto the
// other half, producing an exactly symmetric matrix.
func mirrorTriangle(g blas64.General, from Triangle) {
	n := g.Rows
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if from == Upper {
				g.Data[i*g.Stride+j] = g.Data[j*g.Stride+i]
			} else {
				g.Data[j*g.Stride+i] = g.Data[i*g.Stride+j]
			}
		}
	}
}

// zeroTriangle zeroes the strict tri half of a square block, leaving
// the diagonal untouched.
func zeroTriangle(g blas64.General, tri Triangle) {
	n := g.Rows
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if tri == Lower {
				g.Data[i*g.Stride+j] = 0
			} else {
				g.Data[j*g.Stride+i] = 0
			}
		}
	}
}
