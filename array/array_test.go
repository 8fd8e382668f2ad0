// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/katalvlaran/ndlite/array"
	"github.com/stretchr/testify/require"
)

func TestFromRows_Shape(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, array.Shape{2, 3}, a.Shape())
	require.Equal(t, 2, a.NDim())
	require.Equal(t, 2, a.Len())
	require.Equal(t, 6, a.Size())
	require.Equal(t, "(2, 3)", a.Shape().String())
}

func TestFromRows_EmptyIsVector(t *testing.T) {
	a, err := array.FromRows(nil)
	require.NoError(t, err)
	require.Equal(t, array.Shape{0}, a.Shape())
	require.Equal(t, "(0,)", a.Shape().String())
	require.Equal(t, 1, a.NDim())
}

func TestFromRows_Jagged(t *testing.T) {
	_, err := array.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, array.ErrShape)
}

func TestFromRows_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}}
	a := MustRows(t, rows)
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestNewVector_Shape(t *testing.T) {
	v := array.NewVector([]float64{85, 90, 78, 92, 88, 76, 95, 82, 89, 91, 87, 84})
	require.Equal(t, array.Shape{12}, v.Shape())
	require.Equal(t, "(12,)", v.Shape().String())
	require.Equal(t, 12, v.Size())
	require.Equal(t, 12, v.Len())
}

func TestNewMatrix_Validation(t *testing.T) {
	_, err := array.NewMatrix(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, array.ErrShape)

	_, err = array.NewMatrix(-1, 2, nil)
	require.ErrorIs(t, err, array.ErrShape)

	z, err := array.NewMatrix(2, 3, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, z.Sum())
	require.Equal(t, array.Shape{2, 3}, z.Shape())
}

func TestAt_TupleIndex(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2.0, MustAt(t, a, 0, 1))
	require.Equal(t, 6.0, MustAt(t, a, -1, -1))

	_, err := a.At(2, 0)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = a.At(0, 3)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	_, err = array.NewVector([]float64{1}).At(0, 0)
	require.ErrorIs(t, err, array.ErrShape)

	var nilArr *array.Array
	_, err = nilArr.At(0, 0)
	require.ErrorIs(t, err, array.ErrNilArray)
}

func TestItem_And_Row(t *testing.T) {
	v := array.NewVector([]float64{10, 20, 30})
	x, err := v.Item(-1)
	require.NoError(t, err)
	require.Equal(t, 30.0, x)
	_, err = v.Item(3)
	require.ErrorIs(t, err, array.ErrOutOfRange)

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	r, err := a.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, r.Flatten())
	require.Equal(t, 1, r.NDim())

	_, err = a.Item(0)
	require.ErrorIs(t, err, array.ErrShape)
	_, err = v.Row(0)
	require.ErrorIs(t, err, array.ErrShape)
}

func TestSlice_FirstAxis(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}})

	last2, err := a.Slice(array.From(-2))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 8}, {9, 10}}, last2.ToRows())

	none, err := a.Slice(array.Between(4, 1))
	require.NoError(t, err)
	require.Equal(t, array.Shape{0, 2}, none.Shape())

	v := array.NewVector([]float64{1, 2, 3, 4})
	mid, err := v.Slice(array.Between(1, -1))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, mid.Flatten())

	clamped, err := v.Slice(array.To(100))
	require.NoError(t, err)
	require.Equal(t, 4, clamped.Size())
}

func TestWindow_TwoAxes(t *testing.T) {
	a := MustRows(t, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	w, err := a.Window(array.To(3), array.Between(1, 3))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 3}, {6, 7}, {10, 11}}, w.ToRows())

	all, err := a.Window(array.All(), array.All())
	require.NoError(t, err)
	require.Equal(t, a.Flatten(), all.Flatten())

	_, err = array.NewVector([]float64{1}).Window(array.All(), array.All())
	require.ErrorIs(t, err, array.ErrShape)
}

func TestFlatten_RowMajorCopy(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	flat := a.Flatten()
	require.Equal(t, []float64{1, 2, 3, 4}, flat)
	flat[0] = 42
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestString_Format(t *testing.T) {
	a := MustRows(t, scoresFixture)
	require.Equal(t, "[[50 60]\n [100 90]]", a.String())
	require.Equal(t, "[71.6 77]", array.NewVector([]float64{71.6, 77}).String())
	require.Equal(t, "1250025000", array.FormatValue(1250025000))
	require.Equal(t, "[1:3]", "["+array.Between(1, 3).String()+"]")
	require.Equal(t, ":", array.All().String())
}
