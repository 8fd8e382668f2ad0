// SPDX-License-Identifier: MIT

package array

import "math/rand" // seeded source for reproducible fixtures

// Operation name constants for unified error wrapping.
const (
	opInt       = "Generator.Int"
	opIntMatrix = "Generator.IntMatrix"
)

// Generator draws uniformly distributed integers from a seeded source.
// The same seed always produces the same sequence. A Generator is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFrom wraps an existing *rand.Rand so several consumers can
// share one stream. Panics on nil.
func NewGeneratorFrom(r *rand.Rand) *Generator {
	if r == nil {
		panic("array: NewGeneratorFrom(nil)")
	}

	return &Generator{rng: r}
}

// Int returns one integer in [low, high).
// Returns ErrBadBounds when low >= high.
func (g *Generator) Int(low, high int) (int, error) {
	if low >= high {
		return 0, arrayErrorf(opInt, ErrBadBounds)
	}

	return low + g.rng.Intn(high-low), nil
}

// IntMatrix returns a rows×cols matrix of independent integers in
// [low, high), drawn in row-major order.
// Returns ErrBadBounds when low >= high or either dimension is negative.
// Complexity: O(rows*cols).
func (g *Generator) IntMatrix(low, high, rows, cols int) (*Array, error) {
	if low >= high || rows < 0 || cols < 0 {
		return nil, arrayErrorf(opIntMatrix, ErrBadBounds)
	}
	span := high - low
	data := make([]float64, rows*cols)
	for k := range data {
		data[k] = float64(low + g.rng.Intn(span))
	}

	return newArray(2, rows, cols, data), nil
}

// Arange returns the vector start, start+1, …, stop-1. An empty range
// (stop <= start) yields an empty vector.
func Arange(start, stop int) *Array {
	if stop <= start {
		return newVector([]float64{})
	}
	data := make([]float64, stop-start)
	for k := range data {
		data[k] = float64(start + k)
	}

	return newVector(data)
}
