// SPDX-License-Identifier: MIT

// White-box access for tests: re-export selected privates.
package gbdt

import "gonum.org/v1/gonum/mat"

// SigmoidForTest exposes the logistic link.
func SigmoidForTest(x float64) float64 { return sigmoid(x) }

// BestSplitForTest exposes the exhaustive split search.
func BestSplitForTest(X mat.Matrix, grad, hess []float64, idx []int, minLeaf int) (feature int, thresh float64, ok bool) {
	var gSum, hSum float64
	for _, i := range idx {
		gSum += grad[i]
		hSum += hess[i]
	}

	return bestSplit(X, grad, hess, idx, minLeaf, gSum, hSum)
}
