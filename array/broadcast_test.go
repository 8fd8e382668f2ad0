// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndlite/array"
	"github.com/stretchr/testify/require"
)

func TestResolveBroadcast_Kinds(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tests := []struct {
		name string
		rhs  *array.Array
		want array.BroadcastKind
		err  error
	}{
		{"same shape", MustRows(t, [][]float64{{1, 1, 1}, {1, 1, 1}}), array.BroadcastMatrix, nil},
		{"column", Column(t, 1, 2), array.BroadcastColumn, nil},
		{"row vector", array.NewVector([]float64{1, 2, 3}), array.BroadcastRow, nil},
		{"wrong vector length", array.NewVector([]float64{1, 2}), 0, array.ErrShape},
		{"wrong column length", Column(t, 1, 2, 3), 0, array.ErrShape},
		{"wrong matrix", MustRows(t, [][]float64{{1, 2}, {3, 4}}), 0, array.ErrShape},
		{"nil", nil, 0, array.ErrNilArray},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := array.ResolveBroadcast(a, tc.rhs)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want.String(), got.String())
		})
	}
}

func TestResolveBroadcast_VectorLHS(t *testing.T) {
	v := array.NewVector([]float64{1, 2})
	k, err := array.ResolveBroadcast(v, array.NewVector([]float64{3, 4}))
	require.NoError(t, err)
	require.Equal(t, array.BroadcastMatrix, k)

	_, err = array.ResolveBroadcast(v, Column(t, 1, 2))
	require.ErrorIs(t, err, array.ErrShape)
}

func TestAdd_RowBroadcast_Curve(t *testing.T) {
	scores := MustRows(t, [][]float64{{60, 70, 80, 90}, {95, 96, 97, 98}})
	curve := array.NewVector([]float64{5, 3, 7, 2})

	curved, err := scores.Add(curve)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{65, 73, 87, 92}, {100, 99, 104, 100}}, curved.ToRows())
}

func TestSub_ColumnBroadcast_Property(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {10, 20, 30}, {-1, 0, 1}})
	c := Column(t, 1, 10, -5)

	got, err := a.Sub(c)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		ci := MustAt(t, c, i, 0)
		for j := 0; j < 3; j++ {
			require.Equal(t, MustAt(t, a, i, j)-ci, MustAt(t, got, i, j))
		}
	}
}

func TestSub_Matrix(t *testing.T) {
	a := MustRows(t, [][]float64{{5, 4}, {3, 2}, {1, 0}})
	b := MustRows(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})
	d, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 3}, {2, 1}, {0, -1}}, d.ToRows())
}

func TestDiv_ZeroDenominatorYieldsZero(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})

	byCol, err := a.Div(Column(t, 0, 2))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {1.5, 2}}, byCol.ToRows())

	byRow, err := a.Div(array.NewVector([]float64{0, 4}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0.5}, {0, 1}}, byRow.ToRows())

	byMat, err := a.Div(MustRows(t, [][]float64{{1, 0}, {0, 1}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 4}}, byMat.ToRows())

	for _, v := range byCol.Flatten() {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

func TestMul_And_Scalars(t *testing.T) {
	v := array.NewVector([]float64{1, 2, 3})
	w, err := v.Mul(array.NewVector([]float64{4, 5, 6}))
	require.NoError(t, err)
	require.Equal(t, []float64{4, 10, 18}, w.Flatten())

	c := array.NewVector([]float64{22, 25, 28, 24, 26})
	f := c.Scale(1.8).Shift(32)
	require.InDeltaSlice(t, []float64{71.6, 77, 82.4, 75.2, 78.8}, f.Flatten(), 1e-9)
	require.Equal(t, c.Shape(), f.Shape())

	_, err = v.Mul(array.NewVector([]float64{1}))
	require.ErrorIs(t, err, array.ErrShape)
}

func TestArithmetic_DoesNotMutate(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	before := a.Flatten()
	_, err := a.Add(array.NewVector([]float64{1, 1}))
	require.NoError(t, err)
	_ = a.Scale(10)
	require.Equal(t, before, a.Flatten())
}

func TestSafeDiv(t *testing.T) {
	require.Equal(t, 0.0, array.SafeDiv(5, 0))
	require.Equal(t, 2.5, array.SafeDiv(5, 2))
}
