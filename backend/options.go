// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/katalvlaran/ndlite/array"
	"go.uber.org/zap"
)

// DefaultSeed seeds the random generator when no WithSeed/WithGenerator is given.
const DefaultSeed int64 = 42

// Option configures a backend.
type Option func(*options)

type options struct {
	gen    *array.Generator
	logger *zap.Logger
}

// WithSeed seeds a fresh generator for RandInt.
func WithSeed(seed int64) Option {
	return func(o *options) { o.gen = array.NewGenerator(seed) }
}

// WithGenerator shares an existing generator. Panics on nil.
func WithGenerator(g *array.Generator) Option {
	if g == nil {
		panic("backend: WithGenerator(nil)")
	}

	return func(o *options) { o.gen = g }
}

// WithLogger attaches a logger. Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("backend: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.gen == nil {
		o.gen = array.NewGenerator(DefaultSeed)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}
