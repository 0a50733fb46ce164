// SPDX-License-Identifier: MIT

// Package preprocess: stage chaining and the train/test split.
package preprocess

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Pipeline applies stages in order. Fit fits each stage on the transformed
// output of its predecessor; Transform composes the fitted stages.
type Pipeline struct {
	stages []Stage
	fitted bool
}

// NewPipeline assembles a pipeline. Stages run in argument order.
func NewPipeline(stages ...Stage) (*Pipeline, error) {
	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("%w: stage %d", ErrNilStage, i)
		}
	}

	return &Pipeline{stages: stages}, nil
}

// Fit fits every stage in order, feeding each the previous stage's output.
func (p *Pipeline) Fit(X mat.Matrix) error {
	cur := X
	for i, st := range p.stages {
		if err := st.Fit(cur); err != nil {
			return fmt.Errorf("preprocess: pipeline stage %d: %w", i, err)
		}
		next, err := st.Transform(cur)
		if err != nil {
			return fmt.Errorf("preprocess: pipeline stage %d: %w", i, err)
		}
		cur = next
	}
	p.fitted = true

	return nil
}

// Transform runs X through every fitted stage in order.
func (p *Pipeline) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}

	cur := X
	var out *mat.Dense
	for i, st := range p.stages {
		next, err := st.Transform(cur)
		if err != nil {
			return nil, fmt.Errorf("preprocess: pipeline stage %d: %w", i, err)
		}
		cur, out = next, next
	}
	if out == nil {
		// Zero-stage pipeline: pass the input through as a dense copy.
		out = mat.DenseCopyOf(X)
	}

	return out, nil
}

// FitTransform fits the pipeline on X and returns the final stage's output.
func (p *Pipeline) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}

	return p.Transform(X)
}

// TrainTestSplit shuffles row indices with the given seed and splits X and y
// into train and test partitions. The test partition receives
// round(rows·testRatio) rows, at least 1 and at most rows−1.
//
// The same seed always produces the same split.
func TrainTestSplit(X mat.Matrix, y []float64, testRatio float64, seed int64) (Xtrain, Xtest *mat.Dense, ytrain, ytest []float64, err error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, nil, nil, nil, ErrEmptyInput
	}
	if len(y) != r {
		return nil, nil, nil, nil, fmt.Errorf("%w: %d rows, %d labels", ErrDimensionMismatch, r, len(y))
	}
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("%w: %v", ErrBadRatio, testRatio)
	}
	if r < 2 {
		return nil, nil, nil, nil, fmt.Errorf("%w: need at least 2 rows to split", ErrEmptyInput)
	}

	nTest := int(float64(r)*testRatio + 0.5)
	if nTest < 1 {
		nTest = 1
	}
	if nTest > r-1 {
		nTest = r - 1
	}

	idx := rand.New(rand.NewSource(seed)).Perm(r)
	testIdx, trainIdx := idx[:nTest], idx[nTest:]

	takeRows := func(rows []int) (*mat.Dense, []float64) {
		m := mat.NewDense(len(rows), c, nil)
		labels := make([]float64, len(rows))
		for out, in := range rows {
			for j := 0; j < c; j++ {
				m.Set(out, j, X.At(in, j))
			}
			labels[out] = y[in]
		}
		return m, labels
	}

	Xtest, ytest = takeRows(testIdx)
	Xtrain, ytrain = takeRows(trainIdx)

	return Xtrain, Xtest, ytrain, ytest, nil
}
