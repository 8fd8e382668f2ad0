// SPDX-License-Identifier: MIT
// Package: backend
//
// Purpose:
//   - Run the array operations on gonum: mat.Dense for elementwise and
//     broadcast arithmetic, floats for reductions and spans, stat for means,
//     floats/scalar for rounding.
//
// Design:
//   - Broadcasting is resolved once with array.ResolveBroadcast; the rhs is
//     then expanded into a full mat.Dense so a single gonum kernel applies.
//   - Vectors travel as 1×n matrices and come back as vectors.
//   - gonum rejects zero-sized matrices, so empty operands are answered
//     without entering mat.
//   - Validation order and sentinels mirror the array package exactly.

package backend

import (
	"github.com/katalvlaran/ndlite/array"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

type native struct {
	gen *array.Generator
	log *zap.Logger
}

func newNative(o options) *native {
	return &native{gen: o.gen, log: o.logger.Named("native")}
}

func (n *native) Name() Kind { return KindNative }

func nativeErrorf(op string, err error) error { return backendErrorf(KindNative, op, err) }

// dims returns the matrix extent of a; vectors are 1×n.
func dims(a *array.Array) (r, c int) {
	s := a.Shape()
	if s.NDim() == 1 {
		return 1, s[0]
	}

	return s[0], s[1]
}

// toDense copies a into a new mat.Dense. a must be non-empty.
func toDense(a *array.Array) *mat.Dense {
	r, c := dims(a)

	return mat.NewDense(r, c, a.Flatten())
}

// fromDense copies m back into an array of the requested dimensionality.
func fromDense(m *mat.Dense, ndim int) (*array.Array, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		data = append(data, m.RawRowView(i)...)
	}
	if ndim == 1 {
		return array.NewVector(data), nil
	}

	return array.NewMatrix(r, c, data)
}

// emptyLike returns a zero-sized array with a's shape.
func emptyLike(a *array.Array) (*array.Array, error) {
	if a.NDim() == 1 {
		return array.NewVector(nil), nil
	}
	r, c := dims(a)

	return array.NewMatrix(r, c, nil)
}

// expand materialises rhs at lhs's extent according to kind.
func expand(kind array.BroadcastKind, lhs, rhs *array.Array) *mat.Dense {
	if kind == array.BroadcastMatrix {
		return toDense(rhs)
	}

	r, c := dims(lhs)
	vals := rhs.Flatten()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		if kind == array.BroadcastRow {
			out.SetRow(i, vals)
			continue
		}
		row := out.RawRowView(i) // BroadcastColumn: one value per row
		for j := range row {
			row[j] = vals[i]
		}
	}

	return out
}

// binary resolves broadcasting and applies kernel to dense operands.
func (n *native) binary(op string, lhs, rhs *array.Array, kernel func(dst, x, y *mat.Dense)) (*array.Array, error) {
	kind, err := array.ResolveBroadcast(lhs, rhs)
	if err != nil {
		return nil, nativeErrorf(op, err)
	}
	if lhs.Size() == 0 {
		return emptyLike(lhs)
	}
	n.log.Debug("broadcast", zap.String("op", op), zap.Stringer("kind", kind))

	var dst mat.Dense
	kernel(&dst, toDense(lhs), expand(kind, lhs, rhs))

	return fromDense(&dst, lhs.NDim())
}

func (n *native) Add(lhs, rhs *array.Array) (*array.Array, error) {
	return n.binary("Add", lhs, rhs, func(dst, x, y *mat.Dense) { dst.Add(x, y) })
}

func (n *native) Sub(lhs, rhs *array.Array) (*array.Array, error) {
	return n.binary("Sub", lhs, rhs, func(dst, x, y *mat.Dense) { dst.Sub(x, y) })
}

func (n *native) Mul(lhs, rhs *array.Array) (*array.Array, error) {
	return n.binary("Mul", lhs, rhs, func(dst, x, y *mat.Dense) { dst.MulElem(x, y) })
}

// Div applies the zero-denominator policy element by element; mat.DivElem
// would produce Inf/NaN.
func (n *native) Div(lhs, rhs *array.Array) (*array.Array, error) {
	return n.binary("Div", lhs, rhs, func(dst, x, y *mat.Dense) {
		dst.Apply(func(i, j int, v float64) float64 { return array.SafeDiv(v, y.At(i, j)) }, x)
	})
}

// unary maps fn over a through mat.Dense.Apply.
func (n *native) unary(op string, a *array.Array, fn func(v float64) float64) (*array.Array, error) {
	if a == nil {
		return nil, nativeErrorf(op, array.ErrNilArray)
	}
	if a.Size() == 0 {
		return emptyLike(a)
	}

	var dst mat.Dense
	dst.Apply(func(_, _ int, v float64) float64 { return fn(v) }, toDense(a))

	return fromDense(&dst, a.NDim())
}

func (n *native) Scale(a *array.Array, k float64) (*array.Array, error) {
	if a == nil {
		return nil, nativeErrorf("Scale", array.ErrNilArray)
	}
	if a.Size() == 0 {
		return emptyLike(a)
	}

	var dst mat.Dense
	dst.Scale(k, toDense(a))

	return fromDense(&dst, a.NDim())
}

func (n *native) Shift(a *array.Array, k float64) (*array.Array, error) {
	return n.unary("Shift", a, func(v float64) float64 { return v + k })
}

func (n *native) Round(a *array.Array, decimals int) (*array.Array, error) {
	return n.unary("Round", a, func(v float64) float64 { return scalar.RoundEven(v, decimals) })
}

func (n *native) Clip(a *array.Array, max float64) (*array.Array, error) {
	return n.unary("Clip", a, func(v float64) float64 {
		if v > max {
			return max
		}
		return v
	})
}

// Mean averages each column with stat.Mean.
func (n *native) Mean(a *array.Array, axis int) (*array.Array, error) {
	const op = "Mean"
	switch {
	case a == nil:
		return nil, nativeErrorf(op, array.ErrNilArray)
	case axis != array.MeanAxis:
		return nil, nativeErrorf(op, array.ErrUnsupportedAxis)
	case a.NDim() != 2:
		return nil, nativeErrorf(op, array.ErrShape)
	}
	r, c := dims(a)
	if r == 0 {
		return nil, nativeErrorf(op, array.ErrEmptyInput)
	}
	if c == 0 {
		return array.NewVector(nil), nil
	}

	m := toDense(a)
	means := make([]float64, c)
	col := make([]float64, r)
	for j := range means {
		means[j] = stat.Mean(mat.Col(col, j, m), nil)
	}

	return array.NewVector(means), nil
}

func (n *native) Max(a *array.Array, axis int, opts ...array.ReduceOption) (*array.Array, error) {
	return n.rowExtreme("Max", a, axis, floats.Max, opts)
}

func (n *native) Min(a *array.Array, axis int, opts ...array.ReduceOption) (*array.Array, error) {
	return n.rowExtreme("Min", a, axis, floats.Min, opts)
}

func (n *native) rowExtreme(op string, a *array.Array, axis int, pick func([]float64) float64, opts []array.ReduceOption) (*array.Array, error) {
	switch {
	case a == nil:
		return nil, nativeErrorf(op, array.ErrNilArray)
	case axis != array.ExtremeAxis:
		return nil, nativeErrorf(op, array.ErrUnsupportedAxis)
	case a.NDim() != 2:
		return nil, nativeErrorf(op, array.ErrShape)
	case a.Size() == 0:
		return nil, nativeErrorf(op, array.ErrEmptyInput)
	}

	m := toDense(a)
	r, _ := m.Dims()
	res := make([]float64, r)
	for i := range res {
		res[i] = pick(m.RawRowView(i))
	}
	if array.KeepDims(opts...) {
		return array.NewMatrix(r, 1, res)
	}

	return array.NewVector(res), nil
}

func (n *native) Sum(a *array.Array) (float64, error) {
	if a == nil {
		return 0, nativeErrorf("Sum", array.ErrNilArray)
	}

	return floats.Sum(a.Flatten()), nil
}

// flatNonEmpty returns the elements of a, failing for nil or empty arrays.
func flatNonEmpty(op string, a *array.Array) ([]float64, error) {
	if a == nil {
		return nil, nativeErrorf(op, array.ErrNilArray)
	}
	if a.Size() == 0 {
		return nil, nativeErrorf(op, array.ErrEmptyInput)
	}

	return a.Flatten(), nil
}

func (n *native) MeanAll(a *array.Array) (float64, error) {
	flat, err := flatNonEmpty("MeanAll", a)
	if err != nil {
		return 0, err
	}

	return stat.Mean(flat, nil), nil
}

func (n *native) MaxAll(a *array.Array) (float64, error) {
	flat, err := flatNonEmpty("MaxAll", a)
	if err != nil {
		return 0, err
	}

	return floats.Max(flat), nil
}

func (n *native) MinAll(a *array.Array) (float64, error) {
	flat, err := flatNonEmpty("MinAll", a)
	if err != nil {
		return 0, err
	}

	return floats.Min(flat), nil
}

func (n *native) Argmax(a *array.Array) (int, error) {
	flat, err := flatNonEmpty("Argmax", a)
	if err != nil {
		return 0, err
	}

	return floats.MaxIdx(flat), nil
}

func (n *native) Unravel(index int, shape array.Shape) (int, int, error) {
	return array.Unravel(index, shape)
}

// Greater finds the matching positions with floats.Find and turns them
// into a mask.
func (n *native) Greater(a *array.Array, threshold float64) (*array.Mask, error) {
	if a == nil {
		return nil, nativeErrorf("Greater", array.ErrNilArray)
	}
	flat := a.Flatten()
	bits := make([]bool, len(flat))
	inds, err := floats.Find(nil, func(v float64) bool { return v > threshold }, flat, -1)
	if err != nil {
		return nil, nativeErrorf("Greater", err)
	}
	for _, k := range inds {
		bits[k] = true
	}

	return array.NewMask(a.Shape(), bits)
}

// Select has no gonum counterpart; masks are an array-level structure.
func (n *native) Select(a *array.Array, m *array.Mask) (*array.Array, error) {
	return a.Select(m)
}

func (n *native) RandInt(low, high, rows, cols int) (*array.Array, error) {
	return n.gen.IntMatrix(low, high, rows, cols)
}

// Arange fills the range with floats.Span, which is exact for unit steps.
func (n *native) Arange(start, stop int) (*array.Array, error) {
	switch size := stop - start; {
	case size <= 0:
		return array.NewVector(nil), nil
	case size == 1:
		return array.NewVector([]float64{float64(start)}), nil
	default:
		return array.NewVector(floats.Span(make([]float64, size), float64(start), float64(stop-1))), nil
	}
}
