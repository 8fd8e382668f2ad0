// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Axis reductions: Mean along axis 0, Max/Min along axis 1.
//   - Whole-array reductions: Sum, MeanAll, MaxAll, MinAll, Argmax.
//   - Row-major coordinate conversion (Unravel).
//
// Axis policy:
//   - Axis numbering follows the usual convention: axis 0 collapses rows
//     (one result per column), axis 1 collapses columns (one result per row).
//   - Only the axes listed above are implemented; anything else, including
//     negative axes, is ErrUnsupportedAxis.

package array

// Operation name constants for unified error wrapping.
const (
	opMean    = "Mean"
	opMax     = "Max"
	opMin     = "Min"
	opMeanAll = "MeanAll"
	opMaxAll  = "MaxAll"
	opMinAll  = "MinAll"
	opArgmax  = "Argmax"
	opUnravel = "Unravel"
)

// Axes accepted by the axis reductions.
const (
	MeanAxis    = 0 // Mean collapses rows
	ExtremeAxis = 1 // Max/Min collapse columns
)

// Mean returns the per-column averages of a matrix (axis 0) as a vector of
// length cols.
// Stage 1 (Validate): non-nil, axis 0, 2D, at least one row.
// Stage 2 (Execute): accumulate column sums in i→j order.
// Stage 3 (Finalize): divide by the row count.
// Complexity: O(r*c).
func (a *Array) Mean(axis int) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(opMean, err)
	}
	if axis != MeanAxis {
		return nil, arrayErrorf(opMean, ErrUnsupportedAxis)
	}
	if a.ndim != 2 {
		return nil, arrayErrorf(opMean, ErrShape)
	}
	if a.rows == 0 {
		return nil, arrayErrorf(opMean, ErrEmptyInput)
	}

	r, c := a.rows, a.cols
	means := make([]float64, c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			means[j] += a.data[base+j]
		}
	}
	n := float64(r)
	for j := range means {
		means[j] /= n
	}

	return newVector(means), nil
}

// Max returns the per-row maximum of a matrix (axis 1). With WithKeepDims
// the result is an (n,1) column, otherwise an (n,) vector.
func (a *Array) Max(axis int, opts ...ReduceOption) (*Array, error) {
	return a.rowExtreme(opMax, axis, func(x, best float64) bool { return x > best }, opts)
}

// Min returns the per-row minimum of a matrix (axis 1). With WithKeepDims
// the result is an (n,1) column, otherwise an (n,) vector.
func (a *Array) Min(axis int, opts ...ReduceOption) (*Array, error) {
	return a.rowExtreme(opMin, axis, func(x, best float64) bool { return x < best }, opts)
}

// rowExtreme scans every row and keeps the first element for which better
// never reports true against it.
func (a *Array) rowExtreme(op string, axis int, better func(x, best float64) bool, opts []ReduceOption) (*Array, error) {
	if err := validateNotNil(a); err != nil {
		return nil, arrayErrorf(op, err)
	}
	if axis != ExtremeAxis {
		return nil, arrayErrorf(op, ErrUnsupportedAxis)
	}
	if a.ndim != 2 {
		return nil, arrayErrorf(op, ErrShape)
	}
	if a.rows == 0 || a.cols == 0 {
		return nil, arrayErrorf(op, ErrEmptyInput)
	}

	o := gatherReduceOptions(opts...)
	r, c := a.rows, a.cols
	res := make([]float64, r)
	for i := 0; i < r; i++ {
		row := a.data[i*c : (i+1)*c]
		best := row[0]
		for _, v := range row[1:] {
			if better(v, best) {
				best = v
			}
		}
		res[i] = best
	}

	if o.keepDims {
		return newArray(2, r, 1, res), nil
	}

	return newVector(res), nil
}

// Sum returns the sum of every element. The sum of an empty array is 0.
// Complexity: O(n).
func (a *Array) Sum() float64 {
	if a == nil {
		return 0
	}
	var s float64
	for _, v := range a.data {
		s += v
	}

	return s
}

// MeanAll returns the arithmetic mean of every element.
func (a *Array) MeanAll() (float64, error) {
	if err := validateNonEmpty(a); err != nil {
		return 0, arrayErrorf(opMeanAll, err)
	}

	return a.Sum() / float64(len(a.data)), nil
}

// MaxAll returns the largest element.
func (a *Array) MaxAll() (float64, error) {
	if err := validateNonEmpty(a); err != nil {
		return 0, arrayErrorf(opMaxAll, err)
	}

	return a.data[a.argmax()], nil
}

// MinAll returns the smallest element.
func (a *Array) MinAll() (float64, error) {
	if err := validateNonEmpty(a); err != nil {
		return 0, arrayErrorf(opMinAll, err)
	}
	best := a.data[0]
	for _, v := range a.data[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// Argmax returns the flat row-major index of the first maximum element.
// Combine with Unravel to obtain (row, col).
func (a *Array) Argmax() (int, error) {
	if err := validateNonEmpty(a); err != nil {
		return 0, arrayErrorf(opArgmax, err)
	}

	return a.argmax(), nil
}

func (a *Array) argmax() int {
	idx := 0
	for k, v := range a.data {
		if v > a.data[idx] {
			idx = k
		}
	}

	return idx
}

// Unravel converts a flat row-major index into (row, col) for a 2D shape:
// (index / cols, index % cols).
// Returns ErrShape for non-2D shapes, ErrEmptyInput when the shape holds no
// elements and ErrOutOfRange when index is outside [0, rows*cols).
func Unravel(index int, shape Shape) (row, col int, err error) {
	if shape.NDim() != 2 {
		return 0, 0, arrayErrorf(opUnravel, ErrShape)
	}
	rows, cols := shape[0], shape[1]
	if rows <= 0 || cols <= 0 {
		return 0, 0, arrayErrorf(opUnravel, ErrEmptyInput)
	}
	if index < 0 || index >= rows*cols {
		return 0, 0, arrayErrorf(opUnravel, ErrOutOfRange)
	}

	return index / cols, index % cols, nil
}
