// SPDX-License-Identifier: MIT

// Package backend selects the numeric engine behind the demonstrations.
//
// NumericBackend is a capability interface with two implementations:
//
//   - KindNative runs the arithmetic on gonum (mat, floats, stat).
//   - KindFallback uses the dependency-free array package directly.
//
// The kind is chosen once at start-up from configuration (see New); there
// is no probing at call time. Both implementations resolve broadcasting with
// array.ResolveBroadcast and share array's sentinel errors, so callers can
// switch kinds without changing error handling.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ndlite/array"
	"go.uber.org/zap"
)

// Kind names a NumericBackend implementation.
type Kind string

const (
	// KindNative is the gonum-backed implementation.
	KindNative Kind = "native"

	// KindFallback is the pure array implementation.
	KindFallback Kind = "fallback"
)

// DefaultKind is used when configuration does not name a backend.
const DefaultKind = KindNative

// ErrUnknownBackend is returned for a Kind that has no implementation.
var ErrUnknownBackend = errors.New("backend: unknown backend kind")

// NumericBackend is the set of array operations the demonstrations need.
// Every method is pure: inputs are never mutated and results are fresh
// arrays. Errors wrap the array package sentinels (array.ErrShape,
// array.ErrUnsupportedAxis, array.ErrEmptyInput, …).
type NumericBackend interface {
	// Name reports which implementation this is.
	Name() Kind

	Add(lhs, rhs *array.Array) (*array.Array, error)
	Sub(lhs, rhs *array.Array) (*array.Array, error)
	Mul(lhs, rhs *array.Array) (*array.Array, error)
	// Div divides with broadcasting; a zero denominator yields 0.
	Div(lhs, rhs *array.Array) (*array.Array, error)

	Scale(a *array.Array, k float64) (*array.Array, error)
	Shift(a *array.Array, k float64) (*array.Array, error)

	Mean(a *array.Array, axis int) (*array.Array, error)
	Max(a *array.Array, axis int, opts ...array.ReduceOption) (*array.Array, error)
	Min(a *array.Array, axis int, opts ...array.ReduceOption) (*array.Array, error)

	Sum(a *array.Array) (float64, error)
	MeanAll(a *array.Array) (float64, error)
	MaxAll(a *array.Array) (float64, error)
	MinAll(a *array.Array) (float64, error)
	Argmax(a *array.Array) (int, error)
	Unravel(index int, shape array.Shape) (row, col int, err error)

	Round(a *array.Array, decimals int) (*array.Array, error)
	Clip(a *array.Array, max float64) (*array.Array, error)
	Greater(a *array.Array, threshold float64) (*array.Mask, error)
	Select(a *array.Array, m *array.Mask) (*array.Array, error)

	// RandInt draws a rows×cols matrix of integers in [low, high) from the
	// backend's seeded generator.
	RandInt(low, high, rows, cols int) (*array.Array, error)
	Arange(start, stop int) (*array.Array, error)
}

// Kinds lists every available implementation.
func Kinds() []Kind { return []Kind{KindNative, KindFallback} }

// ParseKind maps a configuration string onto a Kind (case-insensitive).
// The empty string selects DefaultKind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return DefaultKind, nil
	case KindNative, KindFallback:
		return k, nil
	default:
		return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownBackend)
	}
}

// New builds the backend of the given kind.
func New(kind Kind, opts ...Option) (NumericBackend, error) {
	o := gatherOptions(opts...)

	var b NumericBackend
	switch kind {
	case KindNative:
		b = newNative(o)
	case KindFallback:
		b = newFallback(o)
	default:
		return nil, fmt.Errorf("New(%q): %w", kind, ErrUnknownBackend)
	}
	o.logger.Debug("numeric backend selected", zap.String("kind", string(kind)))

	return b, nil
}

// backendErrorf wraps an underlying error with the backend and operation.
func backendErrorf(kind Kind, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", kind, op, err)
}
