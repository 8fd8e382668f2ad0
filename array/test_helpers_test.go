// SPDX-License-Identifier: MIT
// Package array_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the array tests.

package array_test

import (
	"testing"

	"github.com/katalvlaran/ndlite/array"
	"github.com/stretchr/testify/require"
)

// scoresFixture is the 2×2 matrix used throughout the normalisation scenario.
var scoresFixture = [][]float64{
	{50, 60},
	{100, 90},
}

// MustRows builds a 2D array from nested rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *array.Array {
	t.Helper()
	a, err := array.FromRows(rows)
	require.NoError(t, err)

	return a
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, a *array.Array, i, j int) float64 {
	t.Helper()
	v, err := a.At(i, j)
	require.NoError(t, err)

	return v
}

// Column builds an (n,1) column from values.
func Column(t testing.TB, vals ...float64) *array.Array {
	t.Helper()
	c, err := array.NewMatrix(len(vals), 1, vals)
	require.NoError(t, err)

	return c
}
