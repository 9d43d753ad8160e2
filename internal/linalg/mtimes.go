package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
)

// MTimes computes the matrix product a @ b into a freshly owned
// matrix of shape (a.Rows, b.Cols). Transposed and strided operands
// are passed to the kernel by stride reinterpretation, never by an
// allocated transpose.
func MTimes(a, b Matrix) *Dense {
	av, bv := a.mview(), b.mview()
	if av.Cols() != bv.Rows() {
		panic(fmt.Sprintf("mtimes: shape mismatch [%d,%d] @ [%d,%d]", av.Rows(), av.Cols(), bv.Rows(), bv.Cols()))
	}
	out := Zeros(av.Rows(), bv.Cols())
	ag, ta := av.general()
	bg, tb := bv.general()
	kern.Gemm(ta, tb, 1, ag, bg, 0, out.general())
	return out
}

// MTimesVec computes the matrix-vector product a @ x, treating x as a
// column, into a freshly owned vector of length a.Rows.
func MTimesVec(a Matrix, x Vec) *Vector {
	av, xv := a.mview(), x.vview()
	if av.Cols() != xv.n {
		panic(fmt.Sprintf("mtimes: shape mismatch [%d,%d] @ [%d]", av.Rows(), av.Cols(), xv.n))
	}
	y := ZerosVec(av.Rows())
	ag, ta := av.general()
	kern.Gemv(ta, 1, ag, xv.blasVec(), 0, y.RO().blasVec())
	return y
}

// VecMTimes computes the vector-matrix product xᵀ @ a, treating x as a
// row, into a freshly owned vector of length a.Cols. It is computed as
// aᵀ @ x through the kernel's transpose flag; a is never transposed in
// memory.
func VecMTimes(x Vec, a Matrix) *Vector {
	xv, av := x.vview(), a.mview()
	if xv.n != av.Rows() {
		panic(fmt.Sprintf("mtimes: shape mismatch [%d] @ [%d,%d]", xv.n, av.Rows(), av.Cols()))
	}
	y := ZerosVec(av.Cols())
	ag, ta := av.general()
	kern.Gemv(flip(ta), 1, ag, xv.blasVec(), 0, y.RO().blasVec())
	return y
}

// Dot computes the dot product of x and y.
func Dot(x, y Vec) float64 {
	xv, yv := x.vview(), y.vview()
	if xv.n != yv.n {
		panic(fmt.Sprintf("dot: length mismatch %d vs %d", xv.n, yv.n))
	}
	return kern.Dot(xv.blasVec(), yv.blasVec())
}

// MTimesSymmetric computes s @ b where s is symmetric and only its
// declared triangle is read. The result equals MTimes with the fully
// populated symmetric matrix.
func MTimesSymmetric(s Sym, b Matrix) *Dense {
	sv := s.m.mview()
	n := sv.square("mtimes symmetric")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("mtimes symmetric: shape mismatch [%d,%d] @ [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	out := Zeros(n, bv.Cols())
	// Symm has no transpose flag for b, so a transposed b is staged.
	kern.Symm(blas.Left, 1, sv.symmetric(s.tri), bv.plainGeneral(), 0, out.general())
	return out
}

// MTimesSymmetricRight computes a @ s for symmetric s, mirroring
// MTimesSymmetric for a symmetric second operand.
func MTimesSymmetricRight(a Matrix, s Sym) *Dense {
	av := a.mview()
	sv := s.m.mview()
	n := sv.square("mtimes symmetric")
	if av.Cols() != n {
		panic(fmt.Sprintf("mtimes symmetric: shape mismatch [%d,%d] @ [%d,%d]", av.Rows(), av.Cols(), n, n))
	}
	out := Zeros(av.Rows(), n)
	kern.Symm(blas.Right, 1, sv.symmetric(s.tri), av.plainGeneral(), 0, out.general())
	return out
}

// MTimesSymmetricVec computes s @ x for symmetric s.
func MTimesSymmetricVec(s Sym, x Vec) *Vector {
	sv := s.m.mview()
	n := sv.square("mtimes symmetric")
	xv := x.vview()
	if n != xv.n {
		panic(fmt.Sprintf("mtimes symmetric: shape mismatch [%d,%d] @ [%d]", n, n, xv.n))
	}
	y := ZerosVec(n)
	kern.Symv(1, sv.symmetric(s.tri), xv.blasVec(), 0, y.RO().blasVec())
	return y
}

// MTimesTriangular computes t @ b where t is triangular. The kernel
// overwrites its second operand in place, so b is first copied into
// the result buffer and the kernel runs on that copy; caller data is
// never mutated.
func MTimesTriangular(t Tri, b Matrix) *Dense {
	tv := t.m.mview()
	n := tv.square("mtimes triangular")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("mtimes triangular: shape mismatch [%d,%d] @ [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	out, og := stageDense(bv)
	tg, tt := tv.triangular(t.tri, t.diag())
	kern.Trmm(blas.Left, tt, 1, tg, og)
	return out
}

// MTimesTriangularRight computes a @ t for triangular t, mirroring
// MTimesTriangular for a triangular second operand.
func MTimesTriangularRight(a Matrix, t Tri) *Dense {
	av := a.mview()
	tv := t.m.mview()
	n := tv.square("mtimes triangular")
	if av.Cols() != n {
		panic(fmt.Sprintf("mtimes triangular: shape mismatch [%d,%d] @ [%d,%d]", av.Rows(), av.Cols(), n, n))
	}
	out, og := stageDense(av)
	tg, tt := tv.triangular(t.tri, t.diag())
	kern.Trmm(blas.Right, tt, 1, tg, og)
	return out
}

// MTimesTriangularVec computes t @ x for triangular t, running the
// in-place kernel on a private copy of x.
func MTimesTriangularVec(t Tri, x Vec) *Vector {
	tv := t.m.mview()
	n := tv.square("mtimes triangular")
	xv := x.vview()
	if n != xv.n {
		panic(fmt.Sprintf("mtimes triangular: shape mismatch [%d,%d] @ [%d]", n, n, xv.n))
	}
	y := ZerosVec(n)
	for i := 0; i < n; i++ {
		y.buf.data[i] = xv.AtVec(i)
	}
	tg, tt := tv.triangular(t.tri, t.diag())
	kern.Trmv(tt, tg, y.RO().blasVec())
	return y
}
