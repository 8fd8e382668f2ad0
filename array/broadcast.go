// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Resolve the broadcast rule of a binary operator ONCE at call entry
//     into a BroadcastKind, then run a single tight loop per kind.
//   - Keep all loops deterministic (i→j over the flat row-major buffer).
//
// Resolution order (first match wins):
//   1. rhs is an (n,1) column and lhs has n rows      → BroadcastColumn
//   2. rhs is a vector of length lhs.cols             → BroadcastRow
//   3. rhs has exactly lhs's shape                    → BroadcastMatrix
//   Anything else is ErrShape. A vector lhs only accepts a vector rhs of the
//   same length (BroadcastMatrix).

package array

// BroadcastKind tags how the right-hand operand of a binary operator is
// spread over the left-hand operand.
type BroadcastKind uint8

const (
	// BroadcastMatrix pairs elements at matching positions (identical shapes).
	BroadcastMatrix BroadcastKind = iota + 1

	// BroadcastColumn spreads rhs[i][0] across every column of row i.
	BroadcastColumn

	// BroadcastRow spreads rhs[j] down every row of column j.
	BroadcastRow
)

// String returns a short name for logs and test output.
func (k BroadcastKind) String() string {
	switch k {
	case BroadcastMatrix:
		return "matrix"
	case BroadcastColumn:
		return "column"
	case BroadcastRow:
		return "row"
	default:
		return "unknown"
	}
}

// ResolveBroadcast decides which broadcast rule applies to lhs ∘ rhs.
// Returns ErrNilArray for nil operands and ErrShape when no rule applies.
// Complexity: O(1).
func ResolveBroadcast(lhs, rhs *Array) (BroadcastKind, error) {
	if err := validateNotNil(lhs); err != nil {
		return 0, err
	}
	if err := validateNotNil(rhs); err != nil {
		return 0, err
	}

	// Vector lhs: only same-length elementwise.
	if lhs.ndim == 1 {
		if rhs.ndim == 1 && rhs.cols == lhs.cols {
			return BroadcastMatrix, nil
		}
		return 0, ErrShape
	}

	switch {
	case rhs.ndim == 2 && rhs.cols == 1 && rhs.rows == lhs.rows:
		return BroadcastColumn, nil
	case rhs.ndim == 1 && rhs.cols == lhs.cols:
		return BroadcastRow, nil
	case rhs.ndim == 2 && rhs.rows == lhs.rows && rhs.cols == lhs.cols:
		return BroadcastMatrix, nil
	default:
		return 0, ErrShape
	}
}

// ewBinary computes out = lhs ∘ rhs under the resolved broadcast rule.
// The result always has lhs's shape.
// Time: O(r*c). Space: O(r*c).
func ewBinary(op string, lhs, rhs *Array, fn func(a, b float64) float64) (*Array, error) {
	kind, err := ResolveBroadcast(lhs, rhs)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}

	out := make([]float64, len(lhs.data))
	r, c := lhs.rows, lhs.cols

	switch kind {
	case BroadcastMatrix:
		for k := range out {
			out[k] = fn(lhs.data[k], rhs.data[k])
		}
	case BroadcastColumn:
		for i := 0; i < r; i++ {
			base := i * c
			b := rhs.data[i] // rhs is (r,1): one value per row
			for j := 0; j < c; j++ {
				out[base+j] = fn(lhs.data[base+j], b)
			}
		}
	case BroadcastRow:
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out[base+j] = fn(lhs.data[base+j], rhs.data[j])
			}
		}
	}

	return lhs.like(out), nil
}

// ewUnary maps fn over every element, preserving shape.
func ewUnary(a *Array, fn func(v float64) float64) *Array {
	out := make([]float64, len(a.data))
	for k, v := range a.data {
		out[k] = fn(v)
	}

	return a.like(out)
}
