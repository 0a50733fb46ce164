// SPDX-License-Identifier: MIT

// Package variance implements a variance-threshold feature selector over
// gonum matrices: columns whose variance does not exceed a threshold are
// dropped, everything else passes through untouched and in order.
//
// What
//
//   - Selector with the usual fit/transform split:
//   - Fit(X) computes per-column variances and the keep mask.
//   - Transform(X) projects any same-width matrix onto the kept columns.
//   - FitTransform(X) does both in one call.
//   - Variances() and SupportMask() expose the fitted state for reporting.
//
// Why
//
//	Near-constant features carry no signal and inflate every model
//	downstream. Dropping them by variance is the cheapest filter there is,
//	and the canonical first stage of a preprocessing pipeline.
//
// Semantics
//
//	A column survives iff variance > threshold + eps (strictly greater, so
//	the default threshold of 0 drops exactly the constant columns).
//	Population variance (ddof=0) is the default, matching the reference
//	selector; WithSampleVariance switches to ddof=1.
//
// Invariants
//
//   - Transform never changes the row count.
//   - Kept columns appear in their original order.
//   - Fit is idempotent: refitting on the same matrix yields the same mask.
//
// Errors
//
//   - ErrEmptyInput        — Fit on a matrix with zero rows or columns.
//   - ErrNotFitted         — Transform/Variances/SupportMask before Fit.
//   - ErrDimensionMismatch — Transform width differs from the fitted width.
//   - ErrAllFiltered       — every column fell at or below the threshold.
//
// Usage
//
//	sel := variance.NewSelector(variance.WithThreshold(0.1))
//	Xr, err := sel.FitTransform(X)
//	if err != nil { ... }
//	fmt.Println(sel.SupportMask())
package variance
