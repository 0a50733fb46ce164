// SPDX-License-Identifier: MIT

// Package variance: the selector implementation.
package variance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Selector drops low-variance columns from a matrix.
//
// A zero-value Selector is not usable; build one with NewSelector. The
// selector is safe for concurrent Transform calls after Fit has returned.
type Selector struct {
	opts options

	fitted    bool
	nFeatures int       // width seen at Fit
	variances []float64 // per-column variance, len == nFeatures
	keep      []int     // indices of surviving columns, ascending
}

// NewSelector builds a selector with the given options.
func NewSelector(opts ...Option) *Selector {
	return &Selector{opts: gatherOptions(opts...)}
}

// Fit computes per-column variances of X and decides the keep mask.
//
// Implementation:
//  1. Validate options and shape (r>0, c>0; r>=2 under WithSampleVariance).
//  2. One deterministic i→j pass accumulating sum and sum of squares.
//  3. variance[j] = E[x²] − E[x]² (population) or scaled by r/(r−1) (sample),
//     clamped at 0 against negative rounding residue.
//  4. keep = { j : variance[j] > threshold + eps }.
//
// Complexity: Time O(r·c), Space O(c).
func (s *Selector) Fit(X mat.Matrix) error {
	if s.opts.err != nil {
		return s.opts.err
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyInput
	}
	if s.opts.sample && r < 2 {
		return fmt.Errorf("%w: sample variance needs at least 2 rows, got %d", ErrDimensionMismatch, r)
	}

	sum := make([]float64, c)
	sumsq := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			sum[j] += v
			sumsq[j] += v * v
		}
	}

	variances := make([]float64, c)
	invR := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		mean := sum[j] * invR
		v := sumsq[j]*invR - mean*mean
		if v < 0 {
			v = 0 // rounding residue on constant columns
		}
		if s.opts.sample {
			v *= float64(r) / float64(r-1)
		}
		variances[j] = v
	}

	keep := make([]int, 0, c)
	cutoff := s.opts.threshold + s.opts.eps
	for j := 0; j < c; j++ {
		if variances[j] > cutoff {
			keep = append(keep, j)
		}
	}
	if len(keep) == 0 {
		return fmt.Errorf("%w: threshold %v", ErrAllFiltered, s.opts.threshold)
	}

	s.fitted = true
	s.nFeatures = c
	s.variances = variances
	s.keep = keep

	return nil
}

// Transform projects X onto the columns kept by Fit, preserving row count
// and column order.
func (s *Selector) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != s.nFeatures {
		return nil, fmt.Errorf("%w: fitted on %d columns, got %d", ErrDimensionMismatch, s.nFeatures, c)
	}

	out := mat.NewDense(r, len(s.keep), nil)
	for i := 0; i < r; i++ {
		for jj, j := range s.keep {
			out.Set(i, jj, X.At(i, j))
		}
	}

	return out, nil
}

// FitTransform fits on X and immediately projects it.
func (s *Selector) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}

	return s.Transform(X)
}

// Variances returns the per-column variances computed by Fit.
func (s *Selector) Variances() ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), s.variances...), nil
}

// SupportMask returns, per original column, whether it survived the
// threshold.
func (s *Selector) SupportMask() ([]bool, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}

	mask := make([]bool, s.nFeatures)
	for _, j := range s.keep {
		mask[j] = true
	}

	return mask, nil
}

// Kept returns the surviving column indices in ascending order.
func (s *Selector) Kept() ([]int, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}

	return append([]int(nil), s.keep...), nil
}
