// SPDX-License-Identifier: MIT

// Package preprocess: z-scoring and the Stage contract.
package preprocess

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors shared by the preprocess stages.
var (
	// ErrEmptyInput is returned when fitting on a 0×N or N×0 matrix.
	ErrEmptyInput = errors.New("preprocess: empty input matrix")

	// ErrNotFitted is returned when Transform runs before Fit.
	ErrNotFitted = errors.New("preprocess: stage is not fitted")

	// ErrDimensionMismatch is returned on width or label-length mismatches.
	ErrDimensionMismatch = errors.New("preprocess: dimension mismatch")

	// ErrNilStage is returned when a pipeline is assembled around a nil stage.
	ErrNilStage = errors.New("preprocess: nil stage")

	// ErrBadRatio is returned for a test ratio outside (0, 1).
	ErrBadRatio = errors.New("preprocess: test ratio must be in (0, 1)")
)

// Stage is the fit/transform contract of one preprocessing step.
// variance.Selector satisfies it, as does StandardScaler.
type Stage interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (*mat.Dense, error)
}

// StandardScaler z-scores every column: subtract the column mean, divide by
// the population standard deviation. Columns with zero deviation are
// centered but not scaled, so constant features become zero columns rather
// than NaN columns.
type StandardScaler struct {
	fitted bool
	means  []float64
	stds   []float64
}

// NewStandardScaler builds an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes per-column means and population standard deviations in one
// deterministic i→j pass.
//
// Complexity: Time O(r·c), Space O(c).
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyInput
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

	means := make([]float64, c)
	stds := make([]float64, c)
	invR := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		means[j] = sum[j] * invR
		variance := sumsq[j]*invR - means[j]*means[j]
		if variance < 0 {
			variance = 0 // rounding residue on constant columns
		}
		stds[j] = math.Sqrt(variance)
	}

	s.fitted = true
	s.means = means
	s.stds = stds

	return nil
}

// Transform z-scores X with the fitted moments.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}
	r, c := X.Dims()
	if c != len(s.means) {
		return nil, fmt.Errorf("%w: fitted on %d columns, got %d", ErrDimensionMismatch, len(s.means), c)
	}

	out := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		scale := 1.0
		if s.stds[j] > 0 {
			scale = 1.0 / s.stds[j]
		}
		for i := 0; i < r; i++ {
			out.Set(i, j, (X.At(i, j)-s.means[j])*scale)
		}
	}

	return out, nil
}

// FitTransform fits on X and immediately z-scores it.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}

	return s.Transform(X)
}

// Means returns the fitted per-column means.
func (s *StandardScaler) Means() ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), s.means...), nil
}

// Stds returns the fitted per-column population standard deviations.
func (s *StandardScaler) Stds() ([]float64, error) {
	if !s.fitted {
		return nil, ErrNotFitted
	}

	return append([]float64(nil), s.stds...), nil
}
