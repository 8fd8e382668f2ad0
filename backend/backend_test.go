// SPDX-License-Identifier: MIT

package backend_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/ndlite/array"
	"github.com/katalvlaran/ndlite/backend"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// forEachBackend runs fn once per backend kind as a subtest.
func forEachBackend(t *testing.T, fn func(t *testing.T, b backend.NumericBackend)) {
	t.Helper()
	for _, kind := range backend.Kinds() {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			b, err := backend.New(kind, backend.WithLogger(zaptest.NewLogger(t)))
			require.NoError(t, err)
			require.Equal(t, kind, b.Name())
			fn(t, b)
		})
	}
}

func mustRows(t *testing.T, rows [][]float64) *array.Array {
	t.Helper()
	a, err := array.FromRows(rows)
	require.NoError(t, err)

	return a
}

func TestParseKind(t *testing.T) {
	k, err := backend.ParseKind(" Native ")
	require.NoError(t, err)
	require.Equal(t, backend.KindNative, k)

	k, err = backend.ParseKind("")
	require.NoError(t, err)
	require.Equal(t, backend.DefaultKind, k)

	_, err = backend.ParseKind("numpy")
	require.ErrorIs(t, err, backend.ErrUnknownBackend)
}

func TestNew_Unknown(t *testing.T) {
	_, err := backend.New(backend.Kind("gpu"))
	require.ErrorIs(t, err, backend.ErrUnknownBackend)
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { backend.WithLogger(nil) })
	require.Panics(t, func() { backend.WithGenerator(nil) })
}

func TestNormalizeScenario(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend.NumericBackend) {
		a := mustRows(t, [][]float64{{50, 60}, {100, 90}})

		mx, err := b.Max(a, 1)
		require.NoError(t, err)
		require.Equal(t, []float64{60, 100}, mx.Flatten())
		require.Equal(t, array.Shape{2}, mx.Shape())

		lo, err := b.Min(a, 1, array.WithKeepDims())
		require.NoError(t, err)
		require.Equal(t, [][]float64{{50}, {90}}, lo.ToRows())
		hi, err := b.Max(a, 1, array.WithKeepDims())
		require.NoError(t, err)

		num, err := b.Sub(a, lo)
		require.NoError(t, err)
		den, err := b.Sub(hi, lo)
		require.NoError(t, err)
		norm, err := b.Div(num, den)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{0, 1}, {1, 0}}, norm.ToRows())

		idx, err := b.Argmax(norm)
		require.NoError(t, err)
		r, c, err := b.Unravel(idx, norm.Shape())
		require.NoError(t, err)
		require.Equal(t, [2]int{0, 1}, [2]int{r, c})
	})
}

func TestBroadcastAndSafeDivide(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend.NumericBackend) {
		a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

		curved, err := b.Add(a, array.NewVector([]float64{5, 3, 7}))
		require.NoError(t, err)
		require.Equal(t, [][]float64{{6, 5, 10}, {9, 8, 13}}, curved.ToRows())

		col, err := array.NewMatrix(2, 1, []float64{0, 2})
		require.NoError(t, err)
		q, err := b.Div(a, col)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{0, 0, 0}, {2, 2.5, 3}}, q.ToRows())

		p, err := b.Mul(a, a)
		require.NoError(t, err)
		require.Equal(t, []float64{1, 4, 9, 16, 25, 36}, p.Flatten())

		_, err = b.Sub(a, array.NewVector([]float64{1, 2}))
		require.ErrorIs(t, err, array.ErrShape)
		_, err = b.Add(nil, a)
		require.ErrorIs(t, err, array.ErrNilArray)
	})
}

func TestReductionsAndErrors(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend.NumericBackend) {
		a := mustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}})

		m, err := b.Mean(a, 0)
		require.NoError(t, err)
		require.Equal(t, []float64{5.5, 11, 16.5}, m.Flatten())

		_, err = b.Mean(a, 1)
		require.ErrorIs(t, err, array.ErrUnsupportedAxis)
		_, err = b.Max(a, 0)
		require.ErrorIs(t, err, array.ErrUnsupportedAxis)
		_, err = b.Min(array.NewVector([]float64{1}), 1)
		require.ErrorIs(t, err, array.ErrShape)

		empty, err := array.NewMatrix(0, 2, nil)
		require.NoError(t, err)
		_, err = b.Mean(empty, 0)
		require.ErrorIs(t, err, array.ErrEmptyInput)
		_, err = b.MaxAll(array.NewVector(nil))
		require.ErrorIs(t, err, array.ErrEmptyInput)
		_, err = b.Argmax(array.NewVector(nil))
		require.ErrorIs(t, err, array.ErrEmptyInput)

		s, err := b.Sum(array.NewVector(nil))
		require.NoError(t, err)
		require.Equal(t, 0.0, s)
	})
}

func TestTemperatureOps(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend.NumericBackend) {
		c := array.NewVector([]float64{22, 25, 28, 24, 26})
		scaled, err := b.Scale(c, 1.8)
		require.NoError(t, err)
		f, err := b.Shift(scaled, 32)
		require.NoError(t, err)
		require.Equal(t, 1, f.NDim())
		require.InDeltaSlice(t, []float64{71.6, 77, 82.4, 75.2, 78.8}, f.Flatten(), 1e-9)

		avg, err := b.MeanAll(f)
		require.NoError(t, err)
		rounded, err := b.Round(array.NewVector([]float64{avg}), 1)
		require.NoError(t, err)
		require.Equal(t, []float64{77}, rounded.Flatten())

		hi, err := b.MaxAll(c)
		require.NoError(t, err)
		lo, err := b.MinAll(c)
		require.NoError(t, err)
		require.Equal(t, 6.0, hi-lo)
	})
}

func TestArangeSum(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend.NumericBackend) {
		r, err := b.Arange(1, 50001)
		require.NoError(t, err)
		require.Equal(t, 50000, r.Size())
		s, err := b.Sum(r)
		require.NoError(t, err)
		require.Equal(t, 1250025000.0, s)

		one, err := b.Arange(3, 4)
		require.NoError(t, err)
		require.Equal(t, []float64{3}, one.Flatten())
		none, err := b.Arange(4, 3)
		require.NoError(t, err)
		require.Equal(t, 0, none.Size())
	})
}

func TestMaskClipRound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, b backend.NumericBackend) {
		a := mustRows(t, [][]float64{{95, 104}, {91.26, 60}})

		clipped, err := b.Clip(a, 100)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{95, 100}, {91.26, 60}}, clipped.ToRows())

		m, err := b.Greater(clipped, 91.26)
		require.NoError(t, err)
		require.Equal(t, []bool{true, true, false, false}, m.Bits())

		sel, err := b.Select(clipped, m)
		require.NoError(t, err)
		require.Equal(t, []float64{95, 100}, sel.Flatten())

		r, err := b.Round(clipped, 1)
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{95, 100, 91.3, 60}, r.Flatten(), 1e-12)
		require.Equal(t, array.Shape{2, 2}, r.Shape())
	})
}

func TestBackendsAgree(t *testing.T) {
	nat, err := backend.New(backend.KindNative, backend.WithSeed(42))
	require.NoError(t, err)
	fb, err := backend.New(backend.KindFallback, backend.WithSeed(42))
	require.NoError(t, err)

	x, err := nat.RandInt(50, 101, 5, 4)
	require.NoError(t, err)
	y, err := fb.RandInt(50, 101, 5, 4)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(x.ToRows(), y.ToRows()))

	curve := array.NewVector([]float64{5, 3, 7, 2})
	cx, err := nat.Add(x, curve)
	require.NoError(t, err)
	cy, err := fb.Add(y, curve)
	require.NoError(t, err)

	mx, err := nat.Mean(cx, 0)
	require.NoError(t, err)
	my, err := fb.Mean(cy, 0)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(mx.Flatten(), my.Flatten(), cmpopts.EquateApprox(0, 1e-12)))
}
