package linalg

import "gonum.org/v1/gonum/blas"

// Triangle designates the populated half of a symmetric or triangular
// matrix representation. Operations taking a Triangle read only that
// half of the operand; the other half's contents are ignored.
type Triangle int

// Supported triangles.
const (
	Upper Triangle = iota
	Lower
)

// String returns a human-readable triangle name.
func (t Triangle) String() string {
	switch t {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// other returns the opposite triangle.
func (t Triangle) other() Triangle {
	if t == Upper {
		return Lower
	}
	return Upper
}

// uplo translates the triangle to the kernel convention.
func (t Triangle) uplo() blas.Uplo {
	if t == Upper {
		return blas.Upper
	}
	return blas.Lower
}

// valid reports whether t is a declared triangle constant.
func (t Triangle) valid() bool {
	return t == Upper || t == Lower
}

// Sym tags a square operand as symmetric with a declared triangle.
// Only the declared triangle is ever read; the other half may hold
// anything, including garbage.
type Sym struct {
	m   Matrix
	tri Triangle
}

// Symmetric declares m to be symmetric with only tri populated.
func Symmetric(m Matrix, tri Triangle) Sym {
	if !tri.valid() {
		panic("linalg: invalid triangle")
	}
	return Sym{m: m, tri: tri}
}

// Triangle returns the declared triangle.
func (s Sym) Triangle() Triangle {
	return s.tri
}

// Tri tags a square operand as triangular with a declared triangle and
// an optional implicit unit diagonal.
type Tri struct {
	m    Matrix
	tri  Triangle
	unit bool
}

// Triangular declares m to be triangular in tri. When unit is true the
// diagonal is taken to be all ones and is not read.
func Triangular(m Matrix, tri Triangle, unit bool) Tri {
	if !tri.valid() {
		panic("linalg: invalid triangle")
	}
	return Tri{m: m, tri: tri, unit: unit}
}

// Triangle returns the declared triangle.
func (t Tri) Triangle() Triangle {
	return t.tri
}

// UnitDiagonal reports whether the diagonal is implicitly all ones.
func (t Tri) UnitDiagonal() bool {
	return t.unit
}

func (t Tri) diag() blas.Diag {
	if t.unit {
		return blas.Unit
	}
	return blas.NonUnit
}
