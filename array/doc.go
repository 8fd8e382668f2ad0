// SPDX-License-Identifier: MIT

// Package array is a minimal, shape-aware numeric container for 1D vectors
// and 2D matrices.
//
// The array package provides:
//
//   - Construction from flat (NewVector), nested (FromRows) or raw row-major
//     (NewMatrix) data, with jagged input rejected as ErrShape.
//   - Broadcasting arithmetic (Add, Sub, Mul, Div) resolved once per call into
//     a BroadcastKind: full matrix, (n,1) column, or per-column row vector.
//     Division by a zero element yields 0 at that position.
//   - Reductions: Mean along axis 0, Max/Min along axis 1 (optionally keeping
//     the reduced axis), and whole-array Sum/MeanAll/MaxAll/MinAll/Argmax.
//   - Elementwise transforms (Round, Clip, Scale, Shift), boolean masks
//     (Greater, Select), first-axis and two-axis slicing, and row-major
//     coordinate conversion (Unravel).
//   - A seeded Generator for reproducible random integer matrices.
//
// Every operation returns a fresh Array; no public method mutates its
// receiver. Storage is a flat row-major []float64, the same layout
// gonum's mat.Dense uses, which keeps conversion to an optimised backend
// a single copy.
package array
