// SPDX-License-Identifier: MIT

// Package gbdt: functional configuration for the classifier.
package gbdt

import (
	"errors"
	"fmt"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultTrees is the number of boosting rounds.
	DefaultTrees = 100

	// DefaultLearningRate is the shrinkage applied to every tree.
	DefaultLearningRate = 0.1

	// DefaultMaxDepth bounds each regression tree.
	DefaultMaxDepth = 3

	// DefaultMinLeaf is the minimum sample count per leaf.
	DefaultMinLeaf = 1
)

// Sentinel errors for classifier configuration and execution.
var (
	// ErrEmptyInput is returned when Fit sees a 0×N or N×0 matrix.
	ErrEmptyInput = errors.New("gbdt: empty input matrix")

	// ErrBadLabels is returned for labels outside {0, 1} or a length mismatch.
	ErrBadLabels = errors.New("gbdt: labels must be 0 or 1, one per row")

	// ErrNotFitted is returned when prediction runs before Fit.
	ErrNotFitted = errors.New("gbdt: classifier is not fitted")

	// ErrDimensionMismatch is returned when prediction's width differs from Fit's.
	ErrDimensionMismatch = errors.New("gbdt: column count mismatch")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("gbdt: invalid option supplied")
)

// Option configures a Classifier via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation on the first Fit call.
type Option func(*options)

type options struct {
	trees    int
	rate     float64
	maxDepth int
	minLeaf  int
	err      error
}

// WithTrees sets the number of boosting rounds. Must be positive.
func WithTrees(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: trees %d", ErrOptionViolation, n)
			return
		}
		o.trees = n
	}
}

// WithLearningRate sets the shrinkage factor. Must be in (0, 1].
func WithLearningRate(lr float64) Option {
	return func(o *options) {
		if math.IsNaN(lr) || lr <= 0 || lr > 1 {
			o.err = fmt.Errorf("%w: learning rate %v", ErrOptionViolation, lr)
			return
		}
		o.rate = lr
	}
}

// WithMaxDepth bounds each tree's depth. Must be positive; depth 1 grows
// stumps.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithMinLeaf sets the minimum sample count per leaf. Must be positive.
func WithMinLeaf(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: min leaf %d", ErrOptionViolation, n)
			return
		}
		o.minLeaf = n
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		trees:    DefaultTrees,
		rate:     DefaultLearningRate,
		maxDepth: DefaultMaxDepth,
		minLeaf:  DefaultMinLeaf,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
