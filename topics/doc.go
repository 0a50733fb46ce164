// Package topics selects the number of topics for an LDA model by fitting
// one model per candidate K and scoring each by how well separated its
// topics are.
//
// What
//
//   - SelectK fits a CountVectoriser → LatentDirichletAllocation pipeline
//     (github.com/james-bowman/nlp) for every candidate topic count, in
//     parallel via the sweep harness.
//   - Each fitted model is scored by the mean pairwise Jensen–Shannon
//     divergence between its topic-word distributions; higher means the
//     topics overlap less, and the highest-scoring K wins.
//   - The winner is refitted once to report its top words per topic.
//
// Why
//
//	K is the one LDA knob with no closed-form answer. "Fit a handful of
//	candidates and keep the most divergent" is the standard selection loop;
//	this package is that loop over a real LDA implementation.
//
// Scoring
//
//	Topic-word rows are L1-normalized into distributions. JS divergence uses
//	base-2 logarithms with the 0·log0 = 0 convention, so scores land in
//	[0, 1]; the model score is the mean over all topic pairs.
//
// Determinism
//
//	LDA fitting is stochastic (the library seeds its own sampler), so scores
//	vary run to run. Everything around the fits — candidate order, score
//	aggregation, tie-breaking — is deterministic via the sweep contract.
//
// Errors
//
//   - ErrNoDocuments — SelectK with an empty corpus.
//   - ErrBadK        — a candidate topic count below 2.
//   - sweep and nlp errors, wrapped.
//
// Usage
//
//	sel, err := topics.SelectK(ctx, docs, []int{2, 4, 6, 8},
//	    topics.WithStopWords("the", "and"),
//	    topics.WithIterations(100),
//	)
//	if err != nil { ... }
//	fmt.Println(sel.BestK, sel.Scores)
package topics
