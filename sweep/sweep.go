// Package sweep: the parameter-sweep harness.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sentinel errors for sweep execution.
var (
	// ErrNoCandidates is returned when Run receives no parameters.
	ErrNoCandidates = errors.New("sweep: no candidate parameters")

	// ErrNilEval is returned when Run receives a nil eval function.
	ErrNilEval = errors.New("sweep: eval function is nil")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("sweep: invalid option supplied")

	// ErrAllFailed is returned under WithKeepErrors when no candidate
	// produced a score.
	ErrAllFailed = errors.New("sweep: all candidates failed")
)

// Eval fits and scores one candidate. It must be safe for concurrent use.
type Eval[P any] func(ctx context.Context, param P) (float64, error)

// Outcome records one candidate's result in input order.
type Outcome[P any] struct {
	// Index is the candidate's position in the input slice.
	Index int

	// Param is the candidate parameter value.
	Param P

	// Score is the scalar score; meaningless when Err is non-nil.
	Score float64

	// Err is the candidate's failure under WithKeepErrors; nil otherwise.
	Err error
}

// Option configures Run via functional arguments.
type Option func(*options)

type options struct {
	workers    int
	minimize   bool
	keepErrors bool
	err        error
}

// DefaultWorkers is the worker limit used when WithWorkers is absent:
// one worker per available CPU.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// WithWorkers bounds the number of concurrent eval calls. n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers %d", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithMaximize ranks higher scores as better (the default).
func WithMaximize() Option {
	return func(o *options) { o.minimize = false }
}

// WithMinimize ranks lower scores as better.
func WithMinimize() Option {
	return func(o *options) { o.minimize = true }
}

// WithKeepErrors records per-candidate failures in their Outcome instead of
// cancelling the sweep on the first error.
func WithKeepErrors() Option {
	return func(o *options) { o.keepErrors = true }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers()}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Run evaluates every parameter on a bounded worker pool and returns all
// outcomes (input order) plus the winning outcome.
//
// Implementation:
//  1. Validate inputs and options.
//  2. Launch one errgroup task per candidate, limited to the worker count;
//     each task writes only its own outcome slot, so no locking is needed.
//  3. After the group drains, scan outcomes in input order for the winner;
//     strict improvement only, so ties keep the earliest candidate.
//
// Complexity: Time O(n · eval) / workers, Space O(n).
func Run[P any](ctx context.Context, params []P, eval Eval[P], opts ...Option) ([]Outcome[P], Outcome[P], error) {
	var none Outcome[P]

	o := gatherOptions(opts...)
	if o.err != nil {
		return nil, none, o.err
	}
	if eval == nil {
		return nil, none, ErrNilEval
	}
	if len(params) == 0 {
		return nil, none, ErrNoCandidates
	}
	if ctx == nil {
		ctx = context.Background()
	}

	outcomes := make([]Outcome[P], len(params))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, p := range params {
		i, p := i, p
		g.Go(func() error {
			score, err := eval(gctx, p)
			if err != nil {
				if o.keepErrors {
					outcomes[i] = Outcome[P]{Index: i, Param: p, Err: err}
					return nil
				}

				return fmt.Errorf("sweep: candidate %d: %w", i, err)
			}
			outcomes[i] = Outcome[P]{Index: i, Param: p, Score: score}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, none, err
	}

	// Winner scan: input order, strict improvement.
	bestIdx := -1
	bestScore := math.Inf(-1)
	if o.minimize {
		bestScore = math.Inf(1)
	}
	for i := range outcomes {
		if outcomes[i].Err != nil {
			continue
		}
		s := outcomes[i].Score
		if better(s, bestScore, o.minimize) {
			bestIdx, bestScore = i, s
		}
	}
	if bestIdx < 0 {
		return outcomes, none, ErrAllFailed
	}

	return outcomes, outcomes[bestIdx], nil
}

// better reports strict improvement of s over best under the ranking
// direction. NaN scores never improve.
func better(s, best float64, minimize bool) bool {
	if math.IsNaN(s) {
		return false
	}
	if minimize {
		return s < best
	}

	return s > best
}
