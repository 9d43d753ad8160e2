package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Crossprod computes aᵀ @ a, or aᵀ @ b when a second operand is given.
// The single-operand form runs a rank-k update that fills only one
// triangle of the necessarily symmetric result, then mirrors it so the
// returned matrix is fully populated and exactly symmetric.
func Crossprod(a Matrix, b ...Matrix) *Dense {
	switch len(b) {
	case 0:
	case 1:
		av, bv := a.mview(), b[0].mview()
		if av.Rows() != bv.Rows() {
			panic(fmt.Sprintf("crossprod: shape mismatch [%d,%d]ᵀ @ [%d,%d]", av.Rows(), av.Cols(), bv.Rows(), bv.Cols()))
		}
		out := Zeros(av.Cols(), bv.Cols())
		ag, ta := av.general()
		bg, tb := bv.general()
		kern.Gemm(flip(ta), tb, 1, ag, bg, 0, out.general())
		return out
	default:
		panic("crossprod: at most two operands")
	}

	av := a.mview()
	n := av.Cols()
	out := Zeros(n, n)
	ag, ta := av.general()
	sym := blas64.Symmetric{N: n, Stride: n, Data: out.buf.data, Uplo: blas.Upper}
	kern.Syrk(flip(ta), 1, ag, 0, sym)
	mirrorTriangle(out.general(), Upper)
	return out
}

// TCrossprod computes a @ aᵀ, or a @ bᵀ when a second operand is
// given. It mirrors Crossprod for the transposed-second-operand
// products.
func TCrossprod(a Matrix, b ...Matrix) *Dense {
	switch len(b) {
	case 0:
	case 1:
		av, bv := a.mview(), b[0].mview()
		if av.Cols() != bv.Cols() {
			panic(fmt.Sprintf("tcrossprod: shape mismatch [%d,%d] @ [%d,%d]ᵀ", av.Rows(), av.Cols(), bv.Rows(), bv.Cols()))
		}
		out := Zeros(av.Rows(), bv.Rows())
		ag, ta := av.general()
		bg, tb := bv.general()
		kern.Gemm(ta, flip(tb), 1, ag, bg, 0, out.general())
		return out
	default:
		panic("tcrossprod: at most two operands")
	}

	av := a.mview()
	n := av.Rows()
	out := Zeros(n, n)
	ag, ta := av.general()
	sym := blas64.Symmetric{N: n, Stride: n, Data: out.buf.data, Uplo: blas.Upper}
	kern.Syrk(ta, 1, ag, 0, sym)
	mirrorTriangle(out.general(), Upper)
	return out
}

// TCrossprodVec computes the outer product x @ xᵀ through a symmetric
// rank-1 update, mirrored to a fully populated matrix.
func TCrossprodVec(x Vec) *Dense {
	xv := x.vview()
	out := Zeros(xv.n, xv.n)
	sym := blas64.Symmetric{N: xv.n, Stride: xv.n, Data: out.buf.data, Uplo: blas.Upper}
	kern.Syr(1, xv.blasVec(), sym)
	mirrorTriangle(out.general(), Upper)
	return out
}

// QuadraticForm computes the scalar xᵀ @ a @ x for square a.
func QuadraticForm(a Matrix, x Vec) float64 {
	av := a.mview()
	n := av.square("quadratic form")
	xv := x.vview()
	if n != xv.n {
		panic(fmt.Sprintf("quadratic form: shape mismatch [%d,%d] against [%d]", n, n, xv.n))
	}
	y := MTimesVec(av, xv)
	defer y.Release()
	return kern.Dot(xv.blasVec(), y.RO().blasVec())
}

// QuadraticFormMat computes bᵀ @ a @ b for square a and conforming b,
// as two chained multiplies.
func QuadraticFormMat(a, b Matrix) *Dense {
	av := a.mview()
	n := av.square("quadratic form")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("quadratic form: shape mismatch [%d,%d] against [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	ab := MTimes(av, bv)
	defer ab.Release()
	return Crossprod(bv, ab.RO())
}

// QuadraticFormSym computes bᵀ @ s @ b for symmetric s. When b is a
// transposed view the symmetric-right multiply path is used on the
// stored block instead of staging a transpose copy of b; both paths
// compute the same product.
func QuadraticFormSym(s Sym, b Matrix) *Dense {
	sv := s.m.mview()
	n := sv.square("quadratic form")
	bv := b.mview()
	if n != bv.Rows() {
		panic(fmt.Sprintf("quadratic form: shape mismatch [%d,%d] against [%d,%d]", n, n, bv.Rows(), bv.Cols()))
	}
	if bv.trans {
		// b = storedᵀ, so bᵀ s b = stored @ s @ storedᵀ: the stored
		// block multiplies the symmetric operand from the left with no
		// staging at all.
		sb := MTimesSymmetricRight(bv.T(), s)
		defer sb.Release()
		return MTimes(sb.RO(), bv)
	}
	sb := MTimesSymmetric(s, bv)
	defer sb.Release()
	return Crossprod(bv, sb.RO())
}

// QuadraticFormSymVec computes the scalar xᵀ @ s @ x for symmetric s.
func QuadraticFormSymVec(s Sym, x Vec) float64 {
	y := MTimesSymmetricVec(s, x)
	defer y.Release()
	return kern.Dot(x.vview().blasVec(), y.RO().blasVec())
}
