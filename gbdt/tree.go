// SPDX-License-Identifier: MIT

// Package gbdt: the depth-limited regression tree used for one boosting round.
package gbdt

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// hessEps keeps Newton leaf values finite when a leaf's hessian sum is
// numerically zero (all probabilities saturated).
const hessEps = 1e-16

// treeNode is one node of a fitted regression tree. Leaves carry the Newton
// step value; internal nodes route on feature ≤ threshold.
type treeNode struct {
	feature int
	thresh  float64
	left    *treeNode
	right   *treeNode
	leaf    bool
	value   float64
}

// growTree fits a regression tree to the gradient/hessian pairs of the rows
// in idx. Splits are searched exhaustively: features in ascending index
// order, thresholds at midpoints between distinct sorted values, and only a
// strictly larger gain replaces the incumbent split.
func growTree(X mat.Matrix, grad, hess []float64, idx []int, depth, minLeaf int) *treeNode {
	var gSum, hSum float64
	for _, i := range idx {
		gSum += grad[i]
		hSum += hess[i]
	}
	leafValue := gSum / (hSum + hessEps)

	if depth == 0 || len(idx) < 2*minLeaf {
		return &treeNode{leaf: true, value: leafValue}
	}

	feature, thresh, ok := bestSplit(X, grad, hess, idx, minLeaf, gSum, hSum)
	if !ok {
		return &treeNode{leaf: true, value: leafValue}
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if X.At(i, feature) <= thresh {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}

	return &treeNode{
		feature: feature,
		thresh:  thresh,
		left:    growTree(X, grad, hess, leftIdx, depth-1, minLeaf),
		right:   growTree(X, grad, hess, rightIdx, depth-1, minLeaf),
	}
}

// bestSplit scans every feature for the split with the largest gain
//
//	G_L²/H_L + G_R²/H_R − G²/H
//
// subject to minLeaf on both sides. Returns ok=false when no admissible
// split improves on keeping the node whole.
func bestSplit(X mat.Matrix, grad, hess []float64, idx []int, minLeaf int, gSum, hSum float64) (feature int, thresh float64, ok bool) {
	_, cols := X.Dims()
	parent := gSum * gSum / (hSum + hessEps)
	bestGain := 0.0

	vals := make([]float64, len(idx))
	order := make([]int, len(idx))
	for j := 0; j < cols; j++ {
		for k, i := range idx {
			vals[k] = X.At(i, j)
			order[k] = i
		}
		sort.Sort(&byValue{vals: vals, idx: order})

		var gl, hl float64
		for k := 0; k < len(order)-1; k++ {
			i := order[k]
			gl += grad[i]
			hl += hess[i]
			if vals[k] == vals[k+1] {
				continue // no boundary between equal values
			}
			nl, nr := k+1, len(order)-k-1
			if nl < minLeaf || nr < minLeaf {
				continue
			}
			gr, hr := gSum-gl, hSum-hl
			gain := gl*gl/(hl+hessEps) + gr*gr/(hr+hessEps) - parent
			if gain > bestGain {
				bestGain = gain
				feature = j
				thresh = (vals[k] + vals[k+1]) / 2
				ok = true
			}
		}
	}

	return feature, thresh, ok
}

// byValue sorts a value slice and its companion index slice together.
// Index order breaks value ties so the sort is fully deterministic.
type byValue struct {
	vals []float64
	idx  []int
}

func (s *byValue) Len() int { return len(s.vals) }
func (s *byValue) Less(a, b int) bool {
	if s.vals[a] != s.vals[b] {
		return s.vals[a] < s.vals[b]
	}
	return s.idx[a] < s.idx[b]
}
func (s *byValue) Swap(a, b int) {
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
	s.idx[a], s.idx[b] = s.idx[b], s.idx[a]
}

// eval routes one row to its leaf and returns the leaf value.
func (n *treeNode) eval(X mat.Matrix, row int) float64 {
	for !n.leaf {
		if X.At(row, n.feature) <= n.thresh {
			n = n.left
		} else {
			n = n.right
		}
	}

	return n.value
}
