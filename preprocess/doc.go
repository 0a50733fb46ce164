// SPDX-License-Identifier: MIT

// Package preprocess provides the pipeline plumbing around the selectors and
// models: column z-scoring, stage chaining, and a deterministic train/test
// split.
//
// What
//
//   - Stage: the Fit/Transform contract every preprocessing step satisfies
//     (variance.Selector does, and so does StandardScaler).
//   - StandardScaler: per-column z-scoring; constant columns are centered
//     but left unscaled, never divided by zero.
//   - Pipeline: applies stages in order, fitting each on its predecessor's
//     output; fit once, transform any same-width matrix afterwards.
//   - TrainTestSplit: seeded shuffled split of a matrix and its labels.
//
// Invariants
//
//   - Transform preserves row count at every stage.
//   - Pipeline transform equals the composition of its stages' transforms.
//   - The same seed always yields the same split.
//
// Errors
//
//   - ErrEmptyInput        — fitting on a 0×N or N×0 matrix.
//   - ErrNotFitted         — transforming before fitting.
//   - ErrDimensionMismatch — width differs from the fitted width, or label
//     length differs from the row count.
//   - ErrNilStage          — assembling a pipeline around a nil stage.
//   - ErrBadRatio          — a test ratio outside (0, 1).
//
// Usage
//
//	pipe, err := preprocess.NewPipeline(
//	    preprocess.NewStandardScaler(),
//	    variance.NewSelector(variance.WithThreshold(0.01)),
//	)
//	if err != nil { ... }
//	Xr, err := pipe.FitTransform(X)
package preprocess
