// Package dataset provides a small column-oriented tabular container:
// typed Series grouped into a Frame, CSV ingestion with per-column type
// inference, row filtering, column selection, and group-by aggregation.
//
// What
//
//   - Series: a named, typed column (Float, Int, Bool, String) with a
//     per-cell missing mask.
//   - Frame: an ordered collection of equal-length Series.
//   - ReadCSV: parse a CSV stream and infer each column's type using the
//     narrowing order int → float → bool → string.
//   - Filter/Select/Drop: row- and column-level subsetting that preserves
//     column order and dtypes.
//   - GroupBy(...).Agg(...): spreadsheet-style aggregation (Sum, Mean, Min,
//     Max, Count, Median), optionally guarded by a row predicate — the
//     SUMIF/COUNTIF analogue.
//   - Frame.Matrix: export numeric columns into a gonum *mat.Dense for
//     downstream selectors and models.
//
// Why
//
//	Every analysis in this toolkit starts from a flat file. The Frame is the
//	single interchange point: load once, subset cheaply, hand a dense matrix
//	to variance, preprocess, or gbdt.
//
// Determinism
//
//	Column order is insertion order; group order is first-appearance order;
//	row filtering is a single forward pass. No map iteration leaks into any
//	observable ordering.
//
// Errors
//
//   - ErrEmptyInput       — CSV stream with no data rows.
//   - ErrRaggedRow        — a record with a deviating field count.
//   - ErrUnknownColumn    — referencing a column the frame does not hold.
//   - ErrDuplicateColumn  — two series sharing a name.
//   - ErrLengthMismatch   — series of unequal length in one frame.
//   - ErrTypeMismatch     — numeric reducer over a non-numeric column.
//   - ErrMissingValue     — exporting a matrix from cells that are missing.
//
// Usage
//
//	f, err := dataset.ReadCSV(file)
//	if err != nil { ... }
//	adults := f.Filter(func(r dataset.Row) bool {
//	    age, ok := r.Float("age")
//	    return ok && age >= 18
//	})
//	X, err := adults.Matrix("age", "income")
package dataset
