// Package topics: candidate sweep and winner reporting.
package topics

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"

	"github.com/larovann/winnow/sweep"
)

// Defaults (single source of truth).
const (
	// DefaultIterations bounds each LDA fit.
	DefaultIterations = 50

	// DefaultTopWords is how many words per topic the winner reports.
	DefaultTopWords = 8
)

// Sentinel errors for topic-count selection.
var (
	// ErrNoDocuments is returned when the corpus is empty.
	ErrNoDocuments = errors.New("topics: no documents")

	// ErrBadK is returned for candidate topic counts below 2.
	ErrBadK = errors.New("topics: candidate K must be at least 2")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("topics: invalid option supplied")
)

// Option configures SelectK via functional arguments.
type Option func(*options)

type options struct {
	stopWords  []string
	iterations int
	topWords   int
	workers    int
	err        error
}

// WithStopWords excludes the given words from the vocabulary.
func WithStopWords(words ...string) Option {
	return func(o *options) { o.stopWords = append([]string(nil), words...) }
}

// WithIterations bounds each LDA fit. n must be >= 1.
func WithIterations(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: iterations %d", ErrOptionViolation, n)
			return
		}
		o.iterations = n
	}
}

// WithTopWords sets how many words per topic the winner reports. n must be >= 1.
func WithTopWords(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: top words %d", ErrOptionViolation, n)
			return
		}
		o.topWords = n
	}
}

// WithWorkers bounds the number of concurrent LDA fits; defaults to the
// sweep harness default (one per CPU).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers %d", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		iterations: DefaultIterations,
		topWords:   DefaultTopWords,
		workers:    sweep.DefaultWorkers(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// KScore is one candidate's divergence score.
type KScore struct {
	K     int
	Score float64
}

// Selection is the result of a topic-count sweep.
type Selection struct {
	// BestK is the winning topic count.
	BestK int

	// BestScore is the winner's mean pairwise divergence.
	BestScore float64

	// Scores holds every candidate's score in candidate order.
	Scores []KScore

	// TopWords holds, per topic of the refitted winner, its highest-weight
	// vocabulary words (strongest first).
	TopWords [][]string
}

// SelectK fits one LDA model per candidate topic count and returns the
// candidate whose topics diverge the most.
//
// Implementation:
//  1. Validate the corpus, candidates, and options.
//  2. Sweep the candidates: each eval builds a fresh vectoriser+LDA pipeline
//     (the library types are not safe to share across fits), fits it on the
//     corpus, and scores the topic-word components.
//  3. Refit the winning K once to extract its top words per topic.
//
// Each fit runs single-threaded (lda.Processes=1); parallelism lives in the
// sweep, matching the original parallel-map usage.
func SelectK(ctx context.Context, docs []string, candidates []int, opts ...Option) (*Selection, error) {
	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	for _, k := range candidates {
		if k < 2 {
			return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
		}
	}

	eval := func(_ context.Context, k int) (float64, error) {
		_, comps, _, err := fitLDA(docs, k, o)
		if err != nil {
			return 0, err
		}

		return meanPairwiseJS(comps), nil
	}

	outcomes, best, err := sweep.Run(ctx, candidates, eval,
		sweep.WithWorkers(o.workers), sweep.WithMaximize())
	if err != nil {
		return nil, err
	}

	sel := &Selection{BestK: best.Param, BestScore: best.Score}
	for _, out := range outcomes {
		sel.Scores = append(sel.Scores, KScore{K: out.Param, Score: out.Score})
	}

	// One extra fit of the winner for reporting. The refit is stochastic
	// like the scored fit; only the word ranking is kept.
	vocab, comps, _, err := fitLDA(docs, sel.BestK, o)
	if err != nil {
		return nil, err
	}
	sel.TopWords = topWordsPerTopic(comps, vocab, o.topWords)

	return sel, nil
}

// fitLDA builds and fits a fresh vectoriser→LDA pipeline on the corpus,
// returning the vocabulary, the topic-word components (topics × words), and
// the document-topic matrix.
func fitLDA(docs []string, k int, o options) (map[string]int, mat.Matrix, mat.Matrix, error) {
	vectoriser := nlp.NewCountVectoriser(o.stopWords...)

	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = o.iterations
	lda.TransformationPasses = o.iterations / 2
	lda.Processes = 1 // the sweep already parallelizes across candidates

	pipeline := nlp.NewPipeline(vectoriser, lda)
	docsOverTopics, err := pipeline.FitTransform(docs...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("topics: fit k=%d: %w", k, err)
	}

	return vectoriser.Vocabulary, lda.Components(), docsOverTopics, nil
}

// topWordsPerTopic ranks each topic's vocabulary by component weight and
// keeps the strongest topN words.
func topWordsPerTopic(topicsOverWords mat.Matrix, vocabulary map[string]int, topN int) [][]string {
	r, c := topicsOverWords.Dims()

	// Invert vocabulary: column index → word.
	words := make([]string, c)
	for w, j := range vocabulary {
		if j >= 0 && j < c {
			words[j] = w
		}
	}

	type weighted struct {
		word   string
		weight float64
	}

	out := make([][]string, r)
	for topic := 0; topic < r; topic++ {
		ws := make([]weighted, c)
		for j := 0; j < c; j++ {
			ws[j] = weighted{word: words[j], weight: topicsOverWords.At(topic, j)}
		}
		sort.SliceStable(ws, func(a, b int) bool { return ws[a].weight > ws[b].weight })

		n := topN
		if n > len(ws) {
			n = len(ws)
		}
		top := make([]string, n)
		for i := 0; i < n; i++ {
			top[i] = ws[i].word
		}
		out[topic] = top
	}

	return out
}
