// SPDX-License-Identifier: MIT

package array

import "strings"

// Operation name constants for unified error wrapping.
const (
	opNewMask = "NewMask"
	opMaskAt  = "Mask.At"
	opSelect  = "Select"
)

// Mask is a boolean array with the same layout as the Array it was derived
// from.
type Mask struct {
	ndim, rows, cols int
	bits             []bool
}

// NewMask builds a mask of the given 1D or 2D shape over row-major bits,
// copying them. Returns ErrShape when shape is not 1D/2D or does not match
// len(bits).
func NewMask(shape Shape, bits []bool) (*Mask, error) {
	var rows, cols int
	switch shape.NDim() {
	case 1:
		rows, cols = 1, shape[0]
	case 2:
		rows, cols = shape[0], shape[1]
	default:
		return nil, arrayErrorf(opNewMask, ErrShape)
	}
	if rows < 0 || cols < 0 || rows*cols != len(bits) {
		return nil, arrayErrorf(opNewMask, ErrShape)
	}

	return &Mask{ndim: shape.NDim(), rows: rows, cols: cols, bits: append([]bool(nil), bits...)}, nil
}

// Shape returns the mask's extent.
func (m *Mask) Shape() Shape {
	if m.ndim == 1 {
		return Shape{m.cols}
	}

	return Shape{m.rows, m.cols}
}

// At reports the mask bit at row i, column j (use i = 0 for 1D masks).
func (m *Mask) At(i, j int) (bool, error) {
	if m == nil {
		return false, arrayErrorf(opMaskAt, ErrNilArray)
	}
	r, ok := normalizeIndex(i, m.rows)
	if !ok {
		return false, arrayErrorf(opMaskAt, ErrOutOfRange)
	}
	c, ok := normalizeIndex(j, m.cols)
	if !ok {
		return false, arrayErrorf(opMaskAt, ErrOutOfRange)
	}

	return m.bits[r*m.cols+c], nil
}

// Count returns the number of true entries.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}

	return n
}

// Bits returns a row-major copy of the mask.
func (m *Mask) Bits() []bool {
	if m == nil {
		return nil
	}

	return append([]bool(nil), m.bits...)
}

// String renders the mask like an Array, with True/False entries.
func (m *Mask) String() string {
	if m == nil {
		return "<nil>"
	}
	row := func(i int) string {
		parts := make([]string, m.cols)
		for j := range parts {
			if m.bits[i*m.cols+j] {
				parts[j] = "True"
			} else {
				parts[j] = "False"
			}
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	if m.ndim == 1 {
		return row(0)
	}
	rows := make([]string, m.rows)
	for i := range rows {
		rows[i] = row(i)
	}

	return "[" + strings.Join(rows, "\n ") + "]"
}

// Greater returns the mask of elements strictly greater than threshold.
func (a *Array) Greater(threshold float64) *Mask {
	if a == nil {
		return nil
	}
	bits := make([]bool, len(a.data))
	for k, v := range a.data {
		bits[k] = v > threshold
	}

	return &Mask{ndim: a.ndim, rows: a.rows, cols: a.cols, bits: bits}
}

// Select returns, as a vector, the elements whose mask bit is true, in
// row-major order. The mask must have the array's shape.
func (a *Array) Select(m *Mask) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opSelect, err)
	}
	if m == nil {
		return nil, arrayErrorf(opSelect, ErrNilArray)
	}
	if !a.Shape().Equal(m.Shape()) {
		return nil, arrayErrorf(opSelect, ErrShape)
	}

	out := make([]float64, 0, m.Count())
	for k, b := range m.bits {
		if b {
			out = append(out, a.data[k])
		}
	}

	return newVector(out), nil
}
