// SPDX-License-Identifier: MIT

// Package array: functional options for reductions.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes a result shape and is tested.
package array

// DefaultKeepDims controls whether Max/Min keep the reduced axis.
// false ⇒ per-row results come back as a (n,) vector.
const DefaultKeepDims = false

// ReduceOption configures a reduction.
type ReduceOption func(*reduceOptions)

type reduceOptions struct {
	keepDims bool // DefaultKeepDims
}

// WithKeepDims keeps the reduced axis as length 1, so Max/Min along axis 1
// return an (n,1) column that broadcasts row-wise in Sub/Div.
func WithKeepDims() ReduceOption {
	return func(o *reduceOptions) { o.keepDims = true }
}

// gatherReduceOptions applies opts over the defaults, in order.
func gatherReduceOptions(opts ...ReduceOption) reduceOptions {
	o := reduceOptions{keepDims: DefaultKeepDims}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// KeepDims reports whether opts request keeping the reduced axis. Other
// backends use it to honour the same options as Array.Max/Min.
func KeepDims(opts ...ReduceOption) bool {
	return gatherReduceOptions(opts...).keepDims
}
