// SPDX-License-Identifier: MIT

// Package variance: functional configuration for the selector.
package variance

import (
	"errors"
	"fmt"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultThreshold keeps every column with nonzero variance.
	DefaultThreshold = 0.0

	// DefaultEpsilon is the tolerance added to the threshold comparison.
	DefaultEpsilon = 1e-12

	// DefaultSampleVariance selects the ddof=0 population estimator, matching
	// the reference selector; WithSampleVariance flips to ddof=1.
	DefaultSampleVariance = false
)

// Sentinel errors for selector configuration and execution.
var (
	// ErrEmptyInput is returned when Fit sees a 0×N or N×0 matrix.
	ErrEmptyInput = errors.New("variance: empty input matrix")

	// ErrNotFitted is returned when Transform runs before Fit.
	ErrNotFitted = errors.New("variance: selector is not fitted")

	// ErrDimensionMismatch is returned when Transform's width differs from Fit's.
	ErrDimensionMismatch = errors.New("variance: column count mismatch")

	// ErrAllFiltered is returned when no column clears the threshold.
	ErrAllFiltered = errors.New("variance: all columns filtered out")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("variance: invalid option supplied")
)

// Option configures a Selector via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation on the first Fit call.
type Option func(*options)

type options struct {
	threshold float64
	eps       float64
	sample    bool
	err       error
}

// WithThreshold sets the variance cutoff; columns must strictly exceed it
// to survive. Must be finite and non-negative.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			o.err = fmt.Errorf("%w: threshold %v", ErrOptionViolation, t)
			return
		}
		o.threshold = t
	}
}

// WithEpsilon sets the comparison tolerance. Must be finite and non-negative.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, eps)
			return
		}
		o.eps = eps
	}
}

// WithSampleVariance switches to the unbiased ddof=1 estimator. Requires at
// least two rows at Fit time.
func WithSampleVariance() Option {
	return func(o *options) { o.sample = true }
}

func gatherOptions(opts ...Option) options {
	o := options{
		threshold: DefaultThreshold,
		eps:       DefaultEpsilon,
		sample:    DefaultSampleVariance,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
