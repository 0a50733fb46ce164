package topics

import "gonum.org/v1/gonum/mat"

// Test-only exports for white-box checks of the scoring internals.

func MeanPairwiseJSForTest(m mat.Matrix) float64 { return meanPairwiseJS(m) }

func RowDistributionsForTest(m mat.Matrix) [][]float64 { return rowDistributions(m) }

func TopWordsForTest(m mat.Matrix, vocab map[string]int, n int) [][]string {
	return topWordsPerTopic(m, vocab, n)
}
