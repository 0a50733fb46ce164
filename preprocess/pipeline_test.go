// SPDX-License-Identifier: MIT

package preprocess_test

import (
	"testing"

	"github.com/larovann/winnow/preprocess"
	"github.com/larovann/winnow/variance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestPipeline_ScalerThenSelector chains the two stages and verifies the
// composed shape: scaling first, then constant-column removal.
func TestPipeline_ScalerThenSelector(t *testing.T) {
	X := mat.NewDense(4, 3, []float64{
		1, 5, 100,
		1, 6, 200,
		1, 7, 300,
		1, 8, 400,
	})

	pipe, err := preprocess.NewPipeline(
		preprocess.NewStandardScaler(),
		variance.NewSelector(),
	)
	require.NoError(t, err)

	Xr, err := pipe.FitTransform(X)
	require.NoError(t, err)

	r, c := Xr.Dims()
	assert.Equal(t, 4, r, "row count survives the whole pipeline")
	assert.Equal(t, 2, c, "the constant column is gone")

	// Transform on fresh data reuses the fitted state of both stages.
	Xnew := mat.NewDense(2, 3, []float64{
		1, 5, 100,
		1, 9, 500,
	})
	Xr2, err := pipe.Transform(Xnew)
	require.NoError(t, err)
	r2, c2 := Xr2.Dims()
	assert.Equal(t, 2, r2)
	assert.Equal(t, 2, c2)
}

// TestPipeline_Errors covers nil stages and transform-before-fit.
func TestPipeline_Errors(t *testing.T) {
	_, err := preprocess.NewPipeline(preprocess.NewStandardScaler(), nil)
	assert.ErrorIs(t, err, preprocess.ErrNilStage)

	pipe, err := preprocess.NewPipeline(preprocess.NewStandardScaler())
	require.NoError(t, err)
	_, err = pipe.Transform(mat.NewDense(1, 1, []float64{1}))
	assert.ErrorIs(t, err, preprocess.ErrNotFitted)
}

// TestTrainTestSplit verifies sizes, determinism, and disjointness.
func TestTrainTestSplit(t *testing.T) {
	n := 10
	X := mat.NewDense(n, 1, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y[i] = float64(i)
	}

	Xtr, Xte, ytr, yte, err := preprocess.TrainTestSplit(X, y, 0.3, 42)
	require.NoError(t, err)

	rtr, _ := Xtr.Dims()
	rte, _ := Xte.Dims()
	assert.Equal(t, 7, rtr)
	assert.Equal(t, 3, rte)
	assert.Len(t, ytr, 7)
	assert.Len(t, yte, 3)

	// Rows carry their labels: X cell equals y at every position.
	for i := 0; i < rtr; i++ {
		assert.Equal(t, ytr[i], Xtr.At(i, 0))
	}

	// All rows accounted for exactly once.
	seen := make(map[float64]int)
	for _, v := range append(append([]float64(nil), ytr...), yte...) {
		seen[v]++
	}
	assert.Len(t, seen, n)

	// Same seed, same split.
	_, _, ytr2, _, err := preprocess.TrainTestSplit(X, y, 0.3, 42)
	require.NoError(t, err)
	assert.Equal(t, ytr, ytr2)
}

// TestTrainTestSplit_Errors covers ratio and length validation.
func TestTrainTestSplit_Errors(t *testing.T) {
	X := mat.NewDense(4, 1, nil)
	y := make([]float64, 4)

	_, _, _, _, err := preprocess.TrainTestSplit(X, y, 0.0, 1)
	assert.ErrorIs(t, err, preprocess.ErrBadRatio)
	_, _, _, _, err = preprocess.TrainTestSplit(X, y, 1.0, 1)
	assert.ErrorIs(t, err, preprocess.ErrBadRatio)
	_, _, _, _, err = preprocess.TrainTestSplit(X, y[:3], 0.5, 1)
	assert.ErrorIs(t, err, preprocess.ErrDimensionMismatch)
}
