// SPDX-License-Identifier: MIT

// Package array: the Array container.
// Array stores elements in a flat row-major slice like a dense matrix,
// plus a fixed dimensionality. A 1D vector of length n is kept as rows=1,
// cols=n so every kernel can walk the same flat buffer.
package array

import (
	"math"
	"strconv"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opFromRows  = "FromRows"
	opNewMatrix = "NewMatrix"
	opAt        = "At"
	opItem      = "Item"
	opRow       = "Row"
	opSlice     = "Slice"
	opWindow    = "Window"
)

// Array is an immutable 1D vector or 2D rectangular matrix of float64 values.
type Array struct {
	ndim int       // 1 or 2, fixed at construction
	rows int       // 1 for vectors
	cols int       // vector length for vectors
	data []float64 // len == rows*cols, row-major
}

// newArray wraps data without copying. Internal constructors only.
func newArray(ndim, rows, cols int, data []float64) *Array {
	return &Array{ndim: ndim, rows: rows, cols: cols, data: data}
}

// newVector wraps data as a 1D array without copying.
func newVector(data []float64) *Array {
	return newArray(1, 1, len(data), data)
}

// like returns a new array with the receiver's shape over data.
func (a *Array) like(data []float64) *Array {
	return newArray(a.ndim, a.rows, a.cols, data)
}

// NewVector returns a 1D array holding a copy of data.
// Complexity: O(n).
func NewVector(data []float64) *Array {
	buf := make([]float64, len(data))
	copy(buf, data)

	return newVector(buf)
}

// FromRows builds a 2D array from nested rows.
// Stage 1 (Validate): every row must have the length of the first one.
// Stage 2 (Execute): copy rows into a flat row-major buffer.
// Zero rows yield an empty vector of shape (0,).
// Returns ErrShape for jagged input.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return newVector([]float64{}), nil
	}

	// Validate rectangular layout
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf(opFromRows, ErrShape)
		}
	}

	// Copy into flat storage
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return newArray(2, len(rows), c, data), nil
}

// NewMatrix builds a rows×cols array from row-major data, copying it.
// A nil data slice allocates zeros. Negative dimensions or a data length
// other than rows*cols yield ErrShape.
// Complexity: O(r*c).
func NewMatrix(rows, cols int, data []float64) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, arrayErrorf(opNewMatrix, ErrShape)
	}
	buf := make([]float64, rows*cols)
	if data != nil {
		if len(data) != rows*cols {
			return nil, arrayErrorf(opNewMatrix, ErrShape)
		}
		copy(buf, data)
	}

	return newArray(2, rows, cols, buf), nil
}

// Shape returns (n,) for vectors and (rows, cols) for matrices.
func (a *Array) Shape() Shape {
	if a.ndim == 1 {
		return Shape{a.cols}
	}

	return Shape{a.rows, a.cols}
}

// NDim returns 1 for vectors and 2 for matrices.
func (a *Array) NDim() int { return a.ndim }

// Len returns the length of the first axis: elements of a vector, rows of a matrix.
func (a *Array) Len() int {
	if a.ndim == 1 {
		return a.cols
	}

	return a.rows
}

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// At returns the element at row i, column j of a matrix.
// Negative indices count from the end.
// Returns ErrShape for vectors and ErrOutOfRange for invalid indices.
// Complexity: O(1).
func (a *Array) At(i, j int) (float64, error) {
	if err := validateMatrix(a); err != nil {
		return 0, arrayErrorf(opAt, err)
	}
	r, ok := normalizeIndex(i, a.rows)
	if !ok {
		return 0, arrayErrorf(opAt, ErrOutOfRange)
	}
	c, ok := normalizeIndex(j, a.cols)
	if !ok {
		return 0, arrayErrorf(opAt, ErrOutOfRange)
	}

	return a.data[r*a.cols+c], nil
}

// Item returns element i of a vector. Negative indices count from the end.
func (a *Array) Item(i int) (float64, error) {
	if err := validateVector(a); err != nil {
		return 0, arrayErrorf(opItem, err)
	}
	k, ok := normalizeIndex(i, a.cols)
	if !ok {
		return 0, arrayErrorf(opItem, ErrOutOfRange)
	}

	return a.data[k], nil
}

// Row returns a copy of row i of a matrix as a vector.
// Negative indices count from the end.
func (a *Array) Row(i int) (*Array, error) {
	if err := validateMatrix(a); err != nil {
		return nil, arrayErrorf(opRow, err)
	}
	r, ok := normalizeIndex(i, a.rows)
	if !ok {
		return nil, arrayErrorf(opRow, ErrOutOfRange)
	}

	return NewVector(a.data[r*a.cols : (r+1)*a.cols]), nil
}

// Slice selects a range along the first axis: elements of a vector or rows
// of a matrix. The result keeps the receiver's dimensionality.
func (a *Array) Slice(s Span) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opSlice, err)
	}
	if a.ndim == 1 {
		lo, hi := s.resolve(a.cols)
		return NewVector(a.data[lo:hi]), nil
	}

	return a.window(s, All())
}

// Window selects the sub-block rows×cols of a matrix, i.e. A[r0:r1, c0:c1].
// Returns ErrShape for vectors.
// Complexity: O(output size).
func (a *Array) Window(rows, cols Span) (*Array, error) {
	if err := validateMatrix(a); err != nil {
		return nil, arrayErrorf(opWindow, err)
	}

	return a.window(rows, cols)
}

func (a *Array) window(rows, cols Span) (*Array, error) {
	r0, r1 := rows.resolve(a.rows)
	c0, c1 := cols.resolve(a.cols)
	w := c1 - c0
	data := make([]float64, 0, (r1-r0)*w)
	for i := r0; i < r1; i++ {
		base := i * a.cols
		data = append(data, a.data[base+c0:base+c1]...)
	}

	return newArray(2, r1-r0, w, data), nil
}

// Flatten returns a row-major copy of every element.
// Complexity: O(n).
func (a *Array) Flatten() []float64 {
	if a == nil {
		return nil
	}
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// ToRows returns the elements as nested rows. A vector is returned as a
// single row.
func (a *Array) ToRows() [][]float64 {
	if a == nil {
		return nil
	}
	out := make([][]float64, a.rows)
	for i := range out {
		out[i] = append([]float64(nil), a.data[i*a.cols:(i+1)*a.cols]...)
	}

	return out
}

// String renders the array in bracketed rows, e.g. "[[50 60]\n [100 90]]".
func (a *Array) String() string {
	if a == nil {
		return "<nil>"
	}
	if a.ndim == 1 {
		return formatRow(a.data)
	}

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < a.rows; i++ {
		if i > 0 {
			b.WriteString("\n ")
		}
		b.WriteString(formatRow(a.data[i*a.cols : (i+1)*a.cols]))
	}
	b.WriteByte(']')

	return b.String()
}

func formatRow(vals []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for j, v := range vals {
		if j > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatValue(v))
	}
	b.WriteByte(']')

	return b.String()
}

// FormatValue prints integral values without a fraction and everything else
// in the shortest representation that round-trips.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// normalizeIndex applies negative-from-end indexing and checks bounds.
func normalizeIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}

	return i, true
}
