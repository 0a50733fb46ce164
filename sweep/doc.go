// Package sweep runs the same model shape under varying parameter values on
// a bounded worker pool and ranks the outcomes by a scalar score.
//
// What
//
//   - Run fits one candidate per parameter value via a user-supplied eval
//     function, concurrently up to a worker limit.
//   - Every outcome is reported in input order; the winner is the candidate
//     with the best score (highest by default, lowest under WithMinimize).
//   - Ties resolve to the earliest candidate, so results are reproducible
//     regardless of goroutine scheduling.
//
// Why
//
//	Parameter selection loops (how many topics? which threshold? what tree
//	depth?) all share the shape "fit N models, score each, pick the best".
//	This package is that loop, once, with cancellation and error policy
//	handled.
//
// Concurrency
//
//	Workers are an errgroup with SetLimit; eval must be safe for concurrent
//	invocation (each call receives its own parameter). By default the first
//	eval error cancels the remaining candidates and is returned; under
//	WithKeepErrors failed candidates are recorded per-outcome and the sweep
//	continues.
//
// Errors
//
//   - ErrNoCandidates   — Run with an empty parameter slice.
//   - ErrNilEval        — Run with a nil eval function.
//   - ErrOptionViolation — invalid option value (e.g. negative workers).
//   - ErrAllFailed      — under WithKeepErrors, every candidate failed.
//   - context errors and eval errors, wrapped.
//
// Usage
//
//	outcomes, best, err := sweep.Run(ctx, []int{2, 4, 8},
//	    func(ctx context.Context, k int) (float64, error) {
//	        return scoreModel(ctx, k)
//	    },
//	    sweep.WithWorkers(4),
//	)
package sweep
