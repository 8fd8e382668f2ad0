// SPDX-License-Identifier: MIT

// Package demo runs the two ndlite demonstrations on a NumericBackend:
//
//   - Scores: a random students×subjects score matrix walked through
//     indexing, slicing, column means, a per-subject curve with a cap,
//     per-row min-max normalisation and threshold masking.
//   - Temperature: Celsius→Fahrenheit conversion, summary statistics of a
//     score list, and a backend-vs-loop summation timing.
//
// Output is human-readable text; every computed value is also returned in a
// report so callers (and tests) need not parse the text.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/ndlite/backend"
	"go.uber.org/zap"
)

// Runner binds a backend to an output stream.
type Runner struct {
	b   backend.NumericBackend
	out io.Writer
	log *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger attaches a logger. Panics on nil; the default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("demo: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = l }
}

// NewRunner returns a Runner writing to out. A nil out discards output.
func NewRunner(b backend.NumericBackend, out io.Writer, opts ...Option) *Runner {
	if out == nil {
		out = io.Discard
	}
	r := &Runner{b: b, out: out, log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.log = r.log.With(zap.String("backend", string(b.Name())))

	return r
}

// checkContext reports cancellation between stages.
func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// printer remembers the first write error so the demos can print freely
// and check once at the end.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
