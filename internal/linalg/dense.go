package linalg

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// buffer is a reference-counted block of float64 storage shared by all
// holders and destroyed when the last reference is released.
type buffer struct {
	data []float64
	refs atomic.Int32
	mu   sync.Mutex // For safe deallocation
}

// newBuffer creates a new reference-counted buffer with refs = 1.
func newBuffer(n int) *buffer {
	b := &buffer{data: make([]float64, n)}
	b.refs.Store(1)
	return b
}

// addRef increments the reference count (for Clone operations).
func (b *buffer) addRef() {
	b.refs.Add(1)
}

// release decrements the reference count and deallocates at 0.
func (b *buffer) release() {
	if b.refs.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if this buffer has only one holder, which is
// the exclusivity condition for write borrows and in-place operations.
func (b *buffer) isUnique() bool {
	return b.refs.Load() == 1
}

// Dense is an owned rows×cols matrix backed by a reference-counted,
// contiguous row-major buffer. Every allocating operation returns a
// fresh Dense; Clone shares the buffer and Release drops a reference.
type Dense struct {
	buf        *buffer
	rows, cols int
}

// Zeros creates a zero-filled owned matrix.
func Zeros(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid shape [%d,%d]", rows, cols))
	}
	return &Dense{buf: newBuffer(rows * cols), rows: rows, cols: cols}
}

// Eye creates the n×n identity matrix.
func Eye(n int) *Dense {
	d := Zeros(n, n)
	for i := 0; i < n; i++ {
		d.buf.data[i*n+i] = 1
	}
	return d
}

// FromSlice creates an owned matrix from a row-major slice. The data
// is copied.
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid shape [%d,%d]", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match shape [%d,%d]", len(data), rows, cols)
	}
	d := Zeros(rows, cols)
	copy(d.buf.data, data)
	return d, nil
}

// Rows returns the row count.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count.
func (d *Dense) Cols() int { return d.cols }

// Dims returns the dimensions.
func (d *Dense) Dims() (rows, cols int) { return d.rows, d.cols }

// At returns the element at (i, j).
func (d *Dense) At(i, j int) float64 {
	return d.RO().At(i, j)
}

// Set writes the element at (i, j). The buffer must not be shared;
// writing through a shared buffer is an ownership violation.
func (d *Dense) Set(i, j int, v float64) {
	w := d.RW()
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("linalg: index [%d,%d] out of range", i, j))
	}
	w.data[i*d.cols+j] = v
}

// Data returns the backing row-major slice.
// WARNING: direct access to shared memory. Use with caution.
func (d *Dense) Data() []float64 {
	return d.buf.data
}

// RO acquires a shared read-only borrow of the matrix. The borrow is
// valid only while the caller holds a reference to d; operations take
// it for exactly the duration of one call.
func (d *Dense) RO() View {
	return View{rows: d.rows, cols: d.cols, stride: d.cols, data: d.buf.data}
}

// RW acquires an exclusive writable borrow. It panics when the buffer
// is shared: in-place mutation of a buffer visible through other
// references is an ownership violation, caught here rather than
// corrupting another holder's data.
func (d *Dense) RW() View {
	if !d.buf.isUnique() {
		panic("linalg: write borrow of a shared buffer")
	}
	return d.RO()
}

// T returns a transposed borrowed view of the matrix.
func (d *Dense) T() View {
	return d.RO().T()
}

// Clone creates a new handle sharing the same buffer (increments the
// reference count). Use Release to drop it.
func (d *Dense) Clone() *Dense {
	d.buf.addRef()
	return &Dense{buf: d.buf, rows: d.rows, cols: d.cols}
}

// Release drops this handle's reference; the buffer is deallocated
// when the last reference is released.
func (d *Dense) Release() {
	d.buf.release()
}

// IsUnique returns true if this handle holds the only reference.
func (d *Dense) IsUnique() bool {
	return d.buf.isUnique()
}

// Scale multiplies every element by alpha in place. Requires an
// exclusive buffer.
func (d *Dense) Scale(alpha float64) {
	w := d.RW()
	for i := range w.data {
		w.data[i] *= alpha
	}
}

func (d *Dense) mview() View { return d.RO() }

// Vector is an owned length-n vector backed by a reference-counted
// contiguous buffer.
type Vector struct {
	buf *buffer
	n   int
}

// ZerosVec creates a zero-filled owned vector.
func ZerosVec(n int) *Vector {
	if n <= 0 {
		panic(fmt.Sprintf("linalg: invalid vector length %d", n))
	}
	return &Vector{buf: newBuffer(n), n: n}
}

// VecFromSlice creates an owned vector copying data.
func VecFromSlice(data []float64) *Vector {
	v := ZerosVec(len(data))
	copy(v.buf.data, data)
	return v
}

// Len returns the vector length.
func (v *Vector) Len() int { return v.n }

// AtVec returns the i-th element.
func (v *Vector) AtVec(i int) float64 {
	return v.RO().AtVec(i)
}

// SetVec writes the i-th element. The buffer must not be shared.
func (v *Vector) SetVec(i int, x float64) {
	w := v.RW()
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("linalg: index %d out of range", i))
	}
	w.data[i] = x
}

// Data returns the backing slice.
// WARNING: direct access to shared memory. Use with caution.
func (v *Vector) Data() []float64 {
	return v.buf.data
}

// RO acquires a shared read-only borrow of the vector.
func (v *Vector) RO() VecView {
	return VecView{n: v.n, inc: 1, data: v.buf.data}
}

// RW acquires an exclusive writable borrow; panics when shared.
func (v *Vector) RW() VecView {
	if !v.buf.isUnique() {
		panic("linalg: write borrow of a shared buffer")
	}
	return v.RO()
}

// Clone creates a new handle sharing the same buffer.
func (v *Vector) Clone() *Vector {
	v.buf.addRef()
	return &Vector{buf: v.buf, n: v.n}
}

// Release drops this handle's reference.
func (v *Vector) Release() {
	v.buf.release()
}

// IsUnique returns true if this handle holds the only reference.
func (v *Vector) IsUnique() bool {
	return v.buf.isUnique()
}

func (v *Vector) vview() VecView { return v.RO() }

// columnVector reinterprets a single-column Dense as a Vector sharing
// the same buffer and reference count.
func columnVector(d *Dense) *Vector {
	if d.cols != 1 {
		panic(fmt.Sprintf("linalg: cannot take column vector of [%d,%d] matrix", d.rows, d.cols))
	}
	return &Vector{buf: d.buf, n: d.rows}
}
