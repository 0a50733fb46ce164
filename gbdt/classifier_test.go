// SPDX-License-Identifier: MIT

package gbdt_test

import (
	"testing"

	"github.com/larovann/winnow/gbdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// thresholdData builds a 1-D training set where the label flips at x = 4.5.
func thresholdData() (*mat.Dense, []int) {
	X := mat.NewDense(10, 1, nil)
	y := make([]int, 10)
	for i := 0; i < 10; i++ {
		X.Set(i, 0, float64(i))
		if i >= 5 {
			y[i] = 1
		}
	}

	return X, y
}

// TestClassifier_FitsSeparableData checks that an easily separable set is
// classified perfectly and that probabilities order with the feature.
func TestClassifier_FitsSeparableData(t *testing.T) {
	X, y := thresholdData()

	clf := gbdt.NewClassifier(gbdt.WithTrees(30), gbdt.WithLearningRate(0.3))
	require.NoError(t, clf.Fit(X, y))

	acc, err := clf.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)

	probs, err := clf.PredictProba(X)
	require.NoError(t, err)
	assert.Less(t, probs[0], 0.5, "leftmost point sits in class 0")
	assert.Greater(t, probs[9], 0.5, "rightmost point sits in class 1")
	assert.Less(t, probs[0], probs[9])
}

// TestClassifier_Deterministic verifies that two fits with the same inputs
// produce identical probabilities.
func TestClassifier_Deterministic(t *testing.T) {
	X, y := thresholdData()

	a := gbdt.NewClassifier(gbdt.WithTrees(20))
	b := gbdt.NewClassifier(gbdt.WithTrees(20))
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	pa, err := a.PredictProba(X)
	require.NoError(t, err)
	pb, err := b.PredictProba(X)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

// TestClassifier_SingleClass pins the degenerate-label policy: prior only,
// zero trees.
func TestClassifier_SingleClass(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	y := []int{1, 1, 1}

	clf := gbdt.NewClassifier()
	require.NoError(t, clf.Fit(X, y))

	n, err := clf.NumTrees()
	require.NoError(t, err)
	assert.Zero(t, n)

	pred, err := clf.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, pred)

	probs, err := clf.PredictProba(X)
	require.NoError(t, err)
	for _, p := range probs {
		assert.Greater(t, p, 0.999)
	}
}

// TestClassifier_MinLeaf checks that a large leaf floor collapses every tree
// to its root leaf, leaving the prior untouched.
func TestClassifier_MinLeaf(t *testing.T) {
	X, y := thresholdData()

	clf := gbdt.NewClassifier(gbdt.WithTrees(5), gbdt.WithMinLeaf(10))
	require.NoError(t, clf.Fit(X, y))

	probs, err := clf.PredictProba(X)
	require.NoError(t, err)
	for _, p := range probs {
		assert.InDelta(t, 0.5, p, 1e-9, "balanced prior with no usable splits")
	}
}

// TestClassifier_Errors covers labels, dimensions, fit state, and options.
func TestClassifier_Errors(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	clf := gbdt.NewClassifier()
	_, err := clf.PredictProba(X)
	assert.ErrorIs(t, err, gbdt.ErrNotFitted)

	assert.ErrorIs(t, clf.Fit(X, []int{0, 2}), gbdt.ErrBadLabels)
	assert.ErrorIs(t, clf.Fit(X, []int{0}), gbdt.ErrBadLabels)

	require.NoError(t, clf.Fit(X, []int{0, 1}))
	_, err = clf.PredictProba(mat.NewDense(1, 3, nil))
	assert.ErrorIs(t, err, gbdt.ErrDimensionMismatch)

	bad := gbdt.NewClassifier(gbdt.WithLearningRate(0))
	assert.ErrorIs(t, bad.Fit(X, []int{0, 1}), gbdt.ErrOptionViolation)
	bad = gbdt.NewClassifier(gbdt.WithTrees(-1))
	assert.ErrorIs(t, bad.Fit(X, []int{0, 1}), gbdt.ErrOptionViolation)
}
