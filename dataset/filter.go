// Package dataset: row filtering and column subsetting.
package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Filter returns a new frame holding exactly the rows for which pred is
// true, preserving column order and dtypes. The receiver is not mutated.
//
// The output row count equals the input row count minus the rows rejected
// by the predicate; a nil predicate keeps every row.
//
// Complexity: Time O(rows·cols), Space O(kept·cols).
func (f *Frame) Filter(pred func(Row) bool) *Frame {
	n := f.NumRows()
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if pred == nil || pred(Row{f: f, i: i}) {
			keep = append(keep, i)
		}
	}

	out := &Frame{index: make(map[string]int, len(f.cols))}
	for _, s := range f.cols {
		out.index[s.name] = len(out.cols)
		out.cols = append(out.cols, s.take(keep))
	}

	return out
}

// Select returns a new frame holding only the named columns, in the given
// order. Series are shared, not copied; frames are immutable by convention.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := &Frame{index: make(map[string]int, len(names))}
	for _, name := range names {
		i, ok := f.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		if _, dup := out.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		out.index[name] = len(out.cols)
		out.cols = append(out.cols, f.cols[i])
	}

	return out, nil
}

// Drop returns a new frame without the named columns, preserving the order
// of the remainder. Unknown names error rather than pass silently.
func (f *Frame) Drop(names ...string) (*Frame, error) {
	dropped := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := f.index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		dropped[name] = struct{}{}
	}

	out := &Frame{index: make(map[string]int)}
	for _, s := range f.cols {
		if _, skip := dropped[s.name]; skip {
			continue
		}
		out.index[s.name] = len(out.cols)
		out.cols = append(out.cols, s)
	}

	return out, nil
}

// Matrix exports the named numeric columns as a dense row-major matrix with
// one row per frame row and one column per name, in the given order. With no
// names, every numeric column is exported in frame order.
//
// Errors:
//   - ErrUnknownColumn — a name the frame does not hold.
//   - ErrTypeMismatch  — a named column that is not numeric.
//   - ErrMissingValue  — any missing cell in an exported column.
//   - ErrEmptyInput    — no rows, or no numeric columns to export.
func (f *Frame) Matrix(names ...string) (*mat.Dense, error) {
	var cols []*Series
	if len(names) == 0 {
		for _, s := range f.cols {
			if s.IsNumeric() {
				cols = append(cols, s)
			}
		}
	} else {
		for _, name := range names {
			i, ok := f.index[name]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
			}
			s := f.cols[i]
			if !s.IsNumeric() {
				return nil, fmt.Errorf("%w: %q is %s, want numeric", ErrTypeMismatch, name, s.kind)
			}
			cols = append(cols, s)
		}
	}

	r, c := f.NumRows(), len(cols)
	if r == 0 || c == 0 {
		return nil, ErrEmptyInput
	}

	out := mat.NewDense(r, c, nil)
	for j, s := range cols {
		for i := 0; i < r; i++ {
			v, ok := s.Float(i)
			if !ok {
				return nil, fmt.Errorf("%w: column %q row %d", ErrMissingValue, s.name, i)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FloatColumn returns the named numeric column as a plain []float64,
// erroring on missing cells. Convenience for label vectors.
func (f *Frame) FloatColumn(name string) ([]float64, error) {
	s, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if !s.IsNumeric() {
		return nil, fmt.Errorf("%w: %q is %s, want numeric", ErrTypeMismatch, name, s.kind)
	}

	out := make([]float64, s.Len())
	for i := range out {
		v, ok := s.Float(i)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d", ErrMissingValue, name, i)
		}
		out[i] = v
	}

	return out, nil
}
