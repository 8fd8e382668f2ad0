// SPDX-License-Identifier: MIT

// Package array: value types shared by the container and its operations.
// This file holds ONLY small descriptive types (Shape, Span); the container
// itself lives in array.go and the broadcast tag in broadcast.go.
package array

import (
	"strconv"
	"strings"
)

// Shape describes the extent of an Array: (n,) for 1D, (rows, cols) for 2D.
// An empty vector has shape (0,).
type Shape []int

// NDim returns the number of dimensions (1 or 2).
func (s Shape) NDim() int { return len(s) }

// Equal reports whether s and o describe the same extent.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Size returns the number of elements addressed by the shape.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// String renders the shape the way tuples print: "(12,)" or "(5, 4)".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	if len(s) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')

	return b.String()
}

// Span is a half-open [start, stop) range along one axis, with step 1.
// Negative bounds count from the end of the axis; out-of-range bounds are
// clamped, so a Span never fails to resolve.
//
// Build spans with All, From, To and Between.
type Span struct {
	start, stop       int
	hasStart, hasStop bool
}

// All selects the whole axis (":").
func All() Span { return Span{} }

// From selects [i, end) ("i:").
func From(i int) Span { return Span{start: i, hasStart: true} }

// To selects [0, j) (":j").
func To(j int) Span { return Span{stop: j, hasStop: true} }

// Between selects [i, j) ("i:j").
func Between(i, j int) Span { return Span{start: i, stop: j, hasStart: true, hasStop: true} }

// resolve maps the span onto an axis of length n and returns concrete
// bounds 0 <= lo <= hi <= n.
func (s Span) resolve(n int) (lo, hi int) {
	lo, hi = 0, n
	if s.hasStart {
		lo = clampBound(s.start, n)
	}
	if s.hasStop {
		hi = clampBound(s.stop, n)
	}
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// clampBound applies negative-from-end indexing and clamps into [0, n].
func clampBound(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}

	return i
}

// String renders the span in slice notation, e.g. "1:3", ":2", "-2:".
func (s Span) String() string {
	var b strings.Builder
	if s.hasStart {
		b.WriteString(strconv.Itoa(s.start))
	}
	b.WriteByte(':')
	if s.hasStop {
		b.WriteString(strconv.Itoa(s.stop))
	}

	return b.String()
}
