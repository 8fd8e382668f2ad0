// SPDX-License-Identifier: MIT

// Package ndlite is a small in-memory n-dimensional array library for
// vectors and matrices of float64, with numpy-style broadcasting and a
// pluggable numeric backend.
//
// Layout:
//
//	array/      - the Array container: construction, indexing, slicing,
//	              broadcasting arithmetic, axis reductions, masks, rounding,
//	              clipping and a seeded integer generator
//	backend/    - NumericBackend: "native" (gonum) or "fallback" (array),
//	              selected once from configuration
//	config/     - defaults and YAML loading
//	demo/       - the scores and temperature walk-throughs
//	cmd/ndlite/ - the command-line entry point
//
// Quick start:
//
//	b, _ := backend.New(backend.KindNative, backend.WithSeed(42))
//	scores, _ := b.RandInt(50, 101, 5, 4)
//	curved, _ := b.Add(scores, array.NewVector([]float64{5, 3, 7, 2}))
//	curved, _ = b.Clip(curved, 100)
//	fmt.Println(curved)
//
// All errors are sentinel values wrapped with the failing operation;
// match them with errors.Is.
package ndlite
