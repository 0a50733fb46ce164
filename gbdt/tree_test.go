// SPDX-License-Identifier: MIT

package gbdt_test

import (
	"testing"

	"github.com/larovann/winnow/gbdt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestBestSplit_PicksBoundary verifies the split lands between the two label
// groups and at the midpoint of the adjacent values.
func TestBestSplit_PicksBoundary(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 10, 11})
	grad := []float64{-0.5, -0.5, 0.5, 0.5}
	hess := []float64{0.25, 0.25, 0.25, 0.25}

	feature, thresh, ok := gbdt.BestSplitForTest(X, grad, hess, []int{0, 1, 2, 3}, 1)
	require.True(t, ok)
	assert.Equal(t, 0, feature)
	assert.Equal(t, 5.5, thresh)
}

// TestBestSplit_TieKeepsFirstFeature pins the tie-break: two identical
// columns, the lower feature index wins.
func TestBestSplit_TieKeepsFirstFeature(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 0,
		1, 1,
		10, 10,
		11, 11,
	})
	grad := []float64{-0.5, -0.5, 0.5, 0.5}
	hess := []float64{0.25, 0.25, 0.25, 0.25}

	feature, _, ok := gbdt.BestSplitForTest(X, grad, hess, []int{0, 1, 2, 3}, 1)
	require.True(t, ok)
	assert.Equal(t, 0, feature)
}

// TestBestSplit_NoGain verifies that a gradient layout with nothing to gain
// reports no split (this is what stalls XOR at the root).
func TestBestSplit_NoGain(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 0, 1, 1})
	grad := []float64{-0.5, 0.5, 0.5, -0.5}
	hess := []float64{0.25, 0.25, 0.25, 0.25}

	_, _, ok := gbdt.BestSplitForTest(X, grad, hess, []int{0, 1, 2, 3}, 1)
	assert.False(t, ok)
}

// TestBestSplit_MinLeafBlocks verifies the leaf floor rejects the only
// admissible boundary.
func TestBestSplit_MinLeafBlocks(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 10, 11})
	grad := []float64{-0.5, -0.5, 0.5, 0.5}
	hess := []float64{0.25, 0.25, 0.25, 0.25}

	_, _, ok := gbdt.BestSplitForTest(X, grad, hess, []int{0, 1, 2, 3}, 3)
	assert.False(t, ok)
}

// TestSigmoid sanity-checks the link at its fixed points.
func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, gbdt.SigmoidForTest(0))
	assert.Greater(t, gbdt.SigmoidForTest(10), 0.999)
	assert.Less(t, gbdt.SigmoidForTest(-10), 0.001)
}
