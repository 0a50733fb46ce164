// SPDX-License-Identifier: MIT

// Package gbdt implements a binary gradient-boosted decision tree classifier
// with logistic loss.
//
// What
//
//	The model starts from the prior log-odds of the training labels and adds
//	shrunken depth-limited regression trees, each fitted to the current
//	negative gradient of the logistic loss. Leaf values take a single Newton
//	step (gradient sum over hessian sum), the standard second-order update.
//
// Determinism
//
//	Fit is fully deterministic: no subsampling, no feature sampling, no
//	random tie-breaking. Split search scans features in ascending index
//	order and thresholds in ascending value order; only a strictly better
//	gain replaces the incumbent, so ties keep the earliest candidate.
//	The same X, y and options always produce the same model.
//
// Complexity
//
//	Fit: Time O(trees · depth · rows · cols · log rows), Space O(rows).
//	Predict: Time O(rows · trees · depth).
//
// Errors
//
//   - ErrEmptyInput        — Fit with a 0×N or N×0 matrix.
//   - ErrBadLabels         — labels outside {0, 1}, or a length mismatch.
//   - ErrNotFitted         — predicting before fitting.
//   - ErrDimensionMismatch — predicting on a different column count.
//   - ErrOptionViolation   — invalid option value.
//
// Edge cases
//
//	A single-class y fits the prior alone: no trees are grown and every
//	prediction returns the (clamped) class frequency.
//
// Usage
//
//	clf := gbdt.NewClassifier(
//	    gbdt.WithTrees(200),
//	    gbdt.WithLearningRate(0.05),
//	    gbdt.WithMaxDepth(3),
//	)
//	if err := clf.Fit(Xtrain, ytrain); err != nil { ... }
//	acc, err := clf.Score(Xtest, ytest)
package gbdt
