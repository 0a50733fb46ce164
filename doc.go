// Package winnow is a small toolkit for tabular analysis and model
// selection — typed CSV frames, variance filtering, parallel parameter
// sweeps, topic-count selection and gradient boosting.
//
// 🚀 What is winnow?
//
//	A deterministic, test-first library that brings together:
//		• Typed frames: CSV loading with kind inference & missing-value masks
//		• Filtering: row predicates, column selection, group-by reducers
//		• Feature selection: variance thresholding over gonum matrices
//		• Sweeps: a bounded-parallel harness that fits N candidates & ranks them
//		• Topics: LDA topic-count selection by Jensen–Shannon divergence
//		• Boosting: a binary gradient-boosted tree classifier, logistic loss
//		• Preprocessing: z-scoring, stage pipelines, seeded train/test splits
//
// ✨ Why choose winnow?
//
//   - Deterministic by default – same inputs, same outputs, ties broken first
//   - Rock-solid guarantees – sentinel errors, in-code docs, no hidden state
//   - Plain Go APIs – gonum matrices in, gonum matrices out
//
// Under the hood, everything is organized under focused subpackages:
//
//	dataset/    — typed Series & Frame, CSV reading, filters, group-by reducers
//	variance/   — the variance-threshold feature selector
//	sweep/      — generic bounded-parallel parameter sweeps
//	topics/     — LDA topic-count selection by divergence
//	gbdt/       — the boosted binary classifier
//	preprocess/ — scaling, stage pipelines & train/test splitting
//	cmd/winnow  — the CLI tying the steps together
//
// Quick sketch of the training path:
//
//	CSV ──▶ Frame ──▶ Matrix ──▶ scale ──▶ filter ──▶ boost ──▶ accuracy
//
//	go get github.com/larovann/winnow
package winnow
