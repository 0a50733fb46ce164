// SPDX-License-Identifier: MIT

// Package gbdt: the boosted classifier built on the regression tree.
package gbdt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// priorClamp bounds the class frequency before taking log-odds, so a
// single-class fit yields a finite prior.
const priorClamp = 1e-12

// Classifier is a binary gradient-boosted tree ensemble with logistic loss.
// The zero value is not usable; construct with NewClassifier and call Fit
// before predicting.
type Classifier struct {
	opts   options
	fitted bool

	nFeatures int
	prior     float64 // initial log-odds
	trees     []*treeNode
}

// NewClassifier builds an unfitted classifier. Invalid options surface as
// ErrOptionViolation on Fit.
func NewClassifier(opts ...Option) *Classifier {
	return &Classifier{opts: gatherOptions(opts...)}
}

// Fit trains the ensemble on X and the 0/1 labels y.
//
// When y holds a single class, Fit stores the clamped prior log-odds and
// grows no trees.
func (c *Classifier) Fit(X mat.Matrix, y []int) error {
	if c.opts.err != nil {
		return c.opts.err
	}
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return ErrEmptyInput
	}
	if len(y) != rows {
		return fmt.Errorf("%w: %d rows, %d labels", ErrBadLabels, rows, len(y))
	}

	var positives int
	for i, label := range y {
		switch label {
		case 0:
		case 1:
			positives++
		default:
			return fmt.Errorf("%w: y[%d] = %d", ErrBadLabels, i, label)
		}
	}

	p := float64(positives) / float64(rows)
	if p < priorClamp {
		p = priorClamp
	}
	if p > 1-priorClamp {
		p = 1 - priorClamp
	}

	c.nFeatures = cols
	c.prior = math.Log(p / (1 - p))
	c.trees = nil
	c.fitted = true

	if positives == 0 || positives == rows {
		return nil // single class: prior only
	}

	// Boosting state: the raw score of every training row.
	score := make([]float64, rows)
	for i := range score {
		score[i] = c.prior
	}

	grad := make([]float64, rows)
	hess := make([]float64, rows)
	idx := make([]int, rows)
	for i := range idx {
		idx[i] = i
	}

	for round := 0; round < c.opts.trees; round++ {
		for i := 0; i < rows; i++ {
			pi := sigmoid(score[i])
			grad[i] = float64(y[i]) - pi // negative gradient of logistic loss
			hess[i] = pi * (1 - pi)
		}

		tree := growTree(X, grad, hess, idx, c.opts.maxDepth, c.opts.minLeaf)
		c.trees = append(c.trees, tree)

		for i := 0; i < rows; i++ {
			score[i] += c.opts.rate * tree.eval(X, i)
		}
	}

	return nil
}

// PredictProba returns the probability of class 1 for every row of X.
func (c *Classifier) PredictProba(X mat.Matrix) ([]float64, error) {
	if !c.fitted {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != c.nFeatures {
		return nil, fmt.Errorf("%w: fitted on %d columns, got %d", ErrDimensionMismatch, c.nFeatures, cols)
	}

	probs := make([]float64, rows)
	for i := 0; i < rows; i++ {
		score := c.prior
		for _, tree := range c.trees {
			score += c.opts.rate * tree.eval(X, i)
		}
		probs[i] = sigmoid(score)
	}

	return probs, nil
}

// Predict returns the 0/1 label for every row of X, thresholding the class-1
// probability at 0.5.
func (c *Classifier) Predict(X mat.Matrix) ([]int, error) {
	probs, err := c.PredictProba(X)
	if err != nil {
		return nil, err
	}

	labels := make([]int, len(probs))
	for i, p := range probs {
		if p >= 0.5 {
			labels[i] = 1
		}
	}

	return labels, nil
}

// Score returns the accuracy of Predict against the 0/1 labels y.
func (c *Classifier) Score(X mat.Matrix, y []int) (float64, error) {
	rows, _ := X.Dims()
	if rows == 0 {
		return 0, ErrEmptyInput
	}
	if len(y) != rows {
		return 0, fmt.Errorf("%w: %d rows, %d labels", ErrBadLabels, rows, len(y))
	}

	pred, err := c.Predict(X)
	if err != nil {
		return 0, err
	}

	var hits int
	for i, label := range pred {
		if label == y[i] {
			hits++
		}
	}

	return float64(hits) / float64(rows), nil
}

// NumTrees reports how many trees the fitted ensemble holds.
func (c *Classifier) NumTrees() (int, error) {
	if !c.fitted {
		return 0, ErrNotFitted
	}

	return len(c.trees), nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
