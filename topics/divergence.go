// Package topics: divergence scoring over topic-word distributions.
package topics

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JensenShannon computes the Jensen–Shannon divergence between two
// distributions of equal length, using base-2 logarithms so the result
// lies in [0, 1]. Cells with zero mass contribute nothing (0·log0 = 0).
//
// The inputs are assumed normalized; callers holding raw weights should
// pass them through normalize first.
func JensenShannon(p, q []float64) float64 {
	// JS(p,q) = (KL(p‖m) + KL(q‖m)) / 2 with m the midpoint mixture.
	js := 0.0
	for i := range p {
		m := (p[i] + q[i]) / 2
		if p[i] > 0 && m > 0 {
			js += p[i] * math.Log2(p[i]/m) / 2
		}
		if q[i] > 0 && m > 0 {
			js += q[i] * math.Log2(q[i]/m) / 2
		}
	}

	return js
}

// meanPairwiseJS scores a fitted model's topic-word matrix (topics × words)
// by the mean Jensen–Shannon divergence over all topic pairs. A single-topic
// matrix scores 0.
func meanPairwiseJS(topicsOverWords mat.Matrix) float64 {
	rows := rowDistributions(topicsOverWords)
	k := len(rows)
	if k < 2 {
		return 0
	}

	sum := 0.0
	pairs := 0
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			sum += JensenShannon(rows[a], rows[b])
			pairs++
		}
	}

	return sum / float64(pairs)
}

// rowDistributions extracts every matrix row L1-normalized into a
// probability distribution. Degenerate all-zero rows stay all-zero.
func rowDistributions(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		total := 0.0
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if v < 0 {
				v = 0 // LDA components are weights; clamp numeric noise
			}
			row[j] = v
			total += v
		}
		if total > 0 {
			for j := 0; j < c; j++ {
				row[j] /= total
			}
		}
		out[i] = row
	}

	return out
}
