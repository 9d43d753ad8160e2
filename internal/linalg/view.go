// Package linalg provides the dense linear-algebra core: borrowed
// matrix/vector views, reference-counted owned buffers, and the
// multiply, derived-product and solve/factor operation families
// dispatched through a pluggable native kernel.
package linalg

import "fmt"

// Matrix is a rank-2 operand: either a borrowed View or an owned
// *Dense. Operations normalize any Matrix to a read-only View at the
// call boundary, so their bodies are written once against views.
type Matrix interface {
	Dims() (rows, cols int)
	At(i, j int) float64

	mview() View
}

// Vec is a rank-1 operand: either a borrowed VecView or an owned
// *Vector.
type Vec interface {
	Len() int
	AtVec(i int) float64

	vview() VecView
}

// View is a borrowed, non-owning description of a matrix: logical
// shape, row stride and an optional transposition of the stored block.
// A View never owns memory; the referenced buffer must outlive it.
// Operations treat caller-supplied views as read-only.
type View struct {
	rows, cols int
	stride     int
	trans      bool
	data       []float64
}

// ViewOf borrows data as a contiguous row-major rows×cols matrix.
func ViewOf(data []float64, rows, cols int) View {
	return StridedView(data, rows, cols, cols)
}

// StridedView borrows data as a rows×cols matrix whose rows are stride
// elements apart. stride must be at least cols.
func StridedView(data []float64, rows, cols, stride int) View {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid shape [%d,%d]", rows, cols))
	}
	if stride < cols {
		panic(fmt.Sprintf("linalg: stride %d shorter than row length %d", stride, cols))
	}
	if need := (rows-1)*stride + cols; len(data) < need {
		panic(fmt.Sprintf("linalg: buffer of %d elements too short for shape [%d,%d] stride %d", len(data), rows, cols, stride))
	}
	return View{rows: rows, cols: cols, stride: stride, data: data}
}

// Rows returns the logical row count.
func (v View) Rows() int {
	if v.trans {
		return v.cols
	}
	return v.rows
}

// Cols returns the logical column count.
func (v View) Cols() int {
	if v.trans {
		return v.rows
	}
	return v.cols
}

// Dims returns the logical dimensions.
func (v View) Dims() (rows, cols int) {
	return v.Rows(), v.Cols()
}

// At returns the element at logical position (i, j).
func (v View) At(i, j int) float64 {
	if v.trans {
		i, j = j, i
	}
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		panic(fmt.Sprintf("linalg: index [%d,%d] out of range", i, j))
	}
	return v.data[i*v.stride+j]
}

// T returns the transposed view. No data is copied or moved; the
// transposition is resolved at dispatch time, by a kernel transpose
// flag where one exists and by a staging copy where it does not.
func (v View) T() View {
	v.trans = !v.trans
	return v
}

func (v View) mview() View { return v }

// square panics unless the view is square, and returns its order.
func (v View) square(op string) int {
	if v.Rows() != v.Cols() {
		panic(fmt.Sprintf("%s: matrix is [%d,%d], want square", op, v.Rows(), v.Cols()))
	}
	return v.Rows()
}

// VecView is a borrowed, non-owning description of a vector with an
// element increment.
type VecView struct {
	n, inc int
	data   []float64
}

// VecViewOf borrows data as a contiguous vector.
func VecViewOf(data []float64) VecView {
	return StridedVecView(data, len(data), 1)
}

// StridedVecView borrows data as an n-element vector whose elements
// are inc apart.
func StridedVecView(data []float64, n, inc int) VecView {
	if n <= 0 {
		panic(fmt.Sprintf("linalg: invalid vector length %d", n))
	}
	if inc <= 0 {
		panic(fmt.Sprintf("linalg: invalid vector increment %d", inc))
	}
	if need := (n-1)*inc + 1; len(data) < need {
		panic(fmt.Sprintf("linalg: buffer of %d elements too short for vector length %d inc %d", len(data), n, inc))
	}
	return VecView{n: n, inc: inc, data: data}
}

// Len returns the vector length.
func (v VecView) Len() int {
	return v.n
}

// AtVec returns the i-th element.
func (v VecView) AtVec(i int) float64 {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("linalg: index %d out of range", i))
	}
	return v.data[i*v.inc]
}

func (v VecView) vview() VecView { return v }

// asColumn reinterprets the vector as an n×1 matrix view sharing the
// same memory. The vector increment becomes the row stride.
func (v VecView) asColumn() View {
	return View{rows: v.n, cols: 1, stride: v.inc, data: v.data}
}
