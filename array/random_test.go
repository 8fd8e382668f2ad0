// SPDX-License-Identifier: MIT

package array_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndlite/array"
	"github.com/stretchr/testify/require"
)

func TestIntMatrix_ReproducibleForSeed(t *testing.T) {
	a, err := array.NewGenerator(42).IntMatrix(50, 101, 5, 4)
	require.NoError(t, err)
	b, err := array.NewGenerator(42).IntMatrix(50, 101, 5, 4)
	require.NoError(t, err)

	require.Equal(t, array.Shape{5, 4}, a.Shape())
	require.Equal(t, a.Flatten(), b.Flatten())
}

func TestIntMatrix_RangeIsHalfOpen(t *testing.T) {
	g := array.NewGenerator(7)
	m, err := g.IntMatrix(50, 101, 40, 25)
	require.NoError(t, err)
	for _, v := range m.Flatten() {
		require.GreaterOrEqual(t, v, 50.0)
		require.Less(t, v, 101.0)
		require.Equal(t, float64(int(v)), v)
	}

	one, err := g.IntMatrix(3, 4, 2, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3, 3}, one.Flatten())
}

func TestIntMatrix_DifferentSeedsDiffer(t *testing.T) {
	a, _ := array.NewGenerator(1).IntMatrix(0, 1_000_000, 4, 4)
	b, _ := array.NewGenerator(2).IntMatrix(0, 1_000_000, 4, 4)
	require.NotEqual(t, a.Flatten(), b.Flatten())
}

func TestGenerator_BadBounds(t *testing.T) {
	g := array.NewGenerator(1)
	_, err := g.IntMatrix(10, 10, 2, 2)
	require.ErrorIs(t, err, array.ErrBadBounds)
	_, err = g.IntMatrix(0, 10, -1, 2)
	require.ErrorIs(t, err, array.ErrBadBounds)
	_, err = g.Int(5, 1)
	require.ErrorIs(t, err, array.ErrBadBounds)

	v, err := g.Int(5, 6)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

func TestNewGeneratorFrom_SharedStream(t *testing.T) {
	a, _ := array.NewGeneratorFrom(rand.New(rand.NewSource(9))).IntMatrix(0, 100, 2, 3)
	b, _ := array.NewGenerator(9).IntMatrix(0, 100, 2, 3)
	require.Equal(t, a.Flatten(), b.Flatten())

	require.Panics(t, func() { array.NewGeneratorFrom(nil) })
}
