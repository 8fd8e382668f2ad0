// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/ndlite/array"

// fallback forwards every operation to the array package.
type fallback struct {
	gen *array.Generator
}

func newFallback(o options) *fallback {
	return &fallback{gen: o.gen}
}

func (f *fallback) Name() Kind { return KindFallback }

func (f *fallback) Add(lhs, rhs *array.Array) (*array.Array, error) { return lhs.Add(rhs) }
func (f *fallback) Sub(lhs, rhs *array.Array) (*array.Array, error) { return lhs.Sub(rhs) }
func (f *fallback) Mul(lhs, rhs *array.Array) (*array.Array, error) { return lhs.Mul(rhs) }
func (f *fallback) Div(lhs, rhs *array.Array) (*array.Array, error) { return lhs.Div(rhs) }

func (f *fallback) Scale(a *array.Array, k float64) (*array.Array, error) {
	if a == nil {
		return nil, backendErrorf(KindFallback, "Scale", array.ErrNilArray)
	}

	return a.Scale(k), nil
}

func (f *fallback) Shift(a *array.Array, k float64) (*array.Array, error) {
	if a == nil {
		return nil, backendErrorf(KindFallback, "Shift", array.ErrNilArray)
	}

	return a.Shift(k), nil
}

func (f *fallback) Mean(a *array.Array, axis int) (*array.Array, error) { return a.Mean(axis) }

func (f *fallback) Max(a *array.Array, axis int, opts ...array.ReduceOption) (*array.Array, error) {
	return a.Max(axis, opts...)
}

func (f *fallback) Min(a *array.Array, axis int, opts ...array.ReduceOption) (*array.Array, error) {
	return a.Min(axis, opts...)
}

func (f *fallback) Sum(a *array.Array) (float64, error) {
	if a == nil {
		return 0, backendErrorf(KindFallback, "Sum", array.ErrNilArray)
	}

	return a.Sum(), nil
}

func (f *fallback) MeanAll(a *array.Array) (float64, error) { return a.MeanAll() }
func (f *fallback) MaxAll(a *array.Array) (float64, error)  { return a.MaxAll() }
func (f *fallback) MinAll(a *array.Array) (float64, error)  { return a.MinAll() }
func (f *fallback) Argmax(a *array.Array) (int, error)      { return a.Argmax() }

func (f *fallback) Unravel(index int, shape array.Shape) (int, int, error) {
	return array.Unravel(index, shape)
}

func (f *fallback) Round(a *array.Array, decimals int) (*array.Array, error) {
	if a == nil {
		return nil, backendErrorf(KindFallback, "Round", array.ErrNilArray)
	}

	return a.Round(decimals), nil
}

func (f *fallback) Clip(a *array.Array, max float64) (*array.Array, error) {
	if a == nil {
		return nil, backendErrorf(KindFallback, "Clip", array.ErrNilArray)
	}

	return a.Clip(max), nil
}

func (f *fallback) Greater(a *array.Array, threshold float64) (*array.Mask, error) {
	if a == nil {
		return nil, backendErrorf(KindFallback, "Greater", array.ErrNilArray)
	}

	return a.Greater(threshold), nil
}

func (f *fallback) Select(a *array.Array, m *array.Mask) (*array.Array, error) {
	return a.Select(m)
}

func (f *fallback) RandInt(low, high, rows, cols int) (*array.Array, error) {
	return f.gen.IntMatrix(low, high, rows, cols)
}

func (f *fallback) Arange(start, stop int) (*array.Array, error) {
	return array.Arange(start, stop), nil
}
