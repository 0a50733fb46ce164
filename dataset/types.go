// Package dataset: core Series/Frame types and sentinel errors.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for frame construction and access.
var (
	// ErrEmptyInput is returned when a CSV stream holds no data rows.
	ErrEmptyInput = errors.New("dataset: empty input")

	// ErrRaggedRow is returned when a CSV record deviates from the header width.
	ErrRaggedRow = errors.New("dataset: ragged row")

	// ErrUnknownColumn is returned when a referenced column does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrDuplicateColumn is returned when two series share one name.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrLengthMismatch is returned when series of unequal length meet in a frame.
	ErrLengthMismatch = errors.New("dataset: series length mismatch")

	// ErrTypeMismatch is returned when an operation needs a different column type.
	ErrTypeMismatch = errors.New("dataset: column type mismatch")

	// ErrMissingValue is returned when a missing cell reaches a dense export.
	ErrMissingValue = errors.New("dataset: missing value in numeric export")

	// ErrUnknownReducer is returned by ParseReducer for an unrecognized name.
	ErrUnknownReducer = errors.New("dataset: unknown reducer")
)

// Kind enumerates the storage type of a Series.
type Kind int

const (
	// KindFloat holds float64 cells.
	KindFloat Kind = iota

	// KindInt holds integer-valued cells (stored as float64, displayed without
	// a fractional part). Inference prefers KindInt over KindFloat.
	KindInt

	// KindBool holds boolean cells.
	KindBool

	// KindString holds free-text cells; the inference fallback.
	KindString
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Series is a named, typed column with a per-cell missing mask.
//
// Numeric kinds (KindFloat, KindInt) store their cells in a shared float64
// buffer; KindBool and KindString use their own buffers. Cells flagged in the
// missing mask carry an unspecified payload and must be checked via the
// (value, ok) accessors.
type Series struct {
	name    string
	kind    Kind
	floats  []float64
	bools   []bool
	strs    []string
	missing []bool
}

// NewFloatSeries builds a KindFloat series. NaN values are flagged missing.
func NewFloatSeries(name string, values []float64) *Series {
	miss := make([]bool, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			miss[i] = true
		}
	}

	return &Series{name: name, kind: KindFloat, floats: append([]float64(nil), values...), missing: miss}
}

// NewIntSeries builds a KindInt series from integer values.
func NewIntSeries(name string, values []int) *Series {
	fs := make([]float64, len(values))
	for i, v := range values {
		fs[i] = float64(v)
	}

	return &Series{name: name, kind: KindInt, floats: fs, missing: make([]bool, len(values))}
}

// NewBoolSeries builds a KindBool series.
func NewBoolSeries(name string, values []bool) *Series {
	return &Series{name: name, kind: KindBool, bools: append([]bool(nil), values...), missing: make([]bool, len(values))}
}

// NewStringSeries builds a KindString series.
func NewStringSeries(name string, values []string) *Series {
	return &Series{name: name, kind: KindString, strs: append([]string(nil), values...), missing: make([]bool, len(values))}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the storage kind.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of cells, including missing ones.
func (s *Series) Len() int {
	switch s.kind {
	case KindBool:
		return len(s.bools)
	case KindString:
		return len(s.strs)
	default:
		return len(s.floats)
	}
}

// IsNumeric reports whether the series participates in numeric exports.
func (s *Series) IsNumeric() bool { return s.kind == KindFloat || s.kind == KindInt }

// Missing reports whether cell i is missing.
func (s *Series) Missing(i int) bool { return s.missing[i] }

// Float returns cell i as float64; ok is false for missing cells and for
// non-numeric series.
func (s *Series) Float(i int) (float64, bool) {
	if !s.IsNumeric() || s.missing[i] {
		return 0, false
	}

	return s.floats[i], true
}

// Bool returns cell i as bool; ok is false for missing cells and for
// non-bool series.
func (s *Series) Bool(i int) (bool, bool) {
	if s.kind != KindBool || s.missing[i] {
		return false, false
	}

	return s.bools[i], true
}

// Str returns cell i as string; ok is false for missing cells and for
// non-string series.
func (s *Series) Str(i int) (string, bool) {
	if s.kind != KindString || s.missing[i] {
		return "", false
	}

	return s.strs[i], true
}

// Cell renders cell i for display: missing cells as "NA", ints without a
// fractional part, bools as true/false.
func (s *Series) Cell(i int) string {
	if s.missing[i] {
		return "NA"
	}
	switch s.kind {
	case KindInt:
		return fmt.Sprintf("%d", int64(s.floats[i]))
	case KindFloat:
		return fmt.Sprintf("%g", s.floats[i])
	case KindBool:
		return fmt.Sprintf("%t", s.bools[i])
	default:
		return s.strs[i]
	}
}

// take builds a new series holding the cells at the given row indices,
// preserving kind and missing flags. Indices must be valid.
func (s *Series) take(idx []int) *Series {
	out := &Series{name: s.name, kind: s.kind, missing: make([]bool, len(idx))}
	switch s.kind {
	case KindBool:
		out.bools = make([]bool, len(idx))
		for j, i := range idx {
			out.bools[j] = s.bools[i]
			out.missing[j] = s.missing[i]
		}
	case KindString:
		out.strs = make([]string, len(idx))
		for j, i := range idx {
			out.strs[j] = s.strs[i]
			out.missing[j] = s.missing[i]
		}
	default:
		out.floats = make([]float64, len(idx))
		for j, i := range idx {
			out.floats[j] = s.floats[i]
			out.missing[j] = s.missing[i]
		}
	}

	return out
}

// Frame is an ordered collection of equal-length series.
type Frame struct {
	cols  []*Series
	index map[string]int // name → position in cols
}

// NewFrame assembles a frame from series, validating equal lengths and
// unique names. Column order is the argument order.
func NewFrame(cols ...*Series) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	n := -1
	for _, s := range cols {
		if _, dup := f.index[s.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, s.name)
		}
		if n >= 0 && s.Len() != n {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrLengthMismatch, s.name, s.Len(), n)
		}
		n = s.Len()
		f.index[s.name] = len(f.cols)
		f.cols = append(f.cols, s)
	}

	return f, nil
}

// NumRows returns the row count (0 for an empty frame).
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}

	return f.cols[0].Len()
}

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Columns returns the column names in frame order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, s := range f.cols {
		names[i] = s.name
	}

	return names
}

// Column returns the named series.
func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	return f.cols[i], nil
}

// Row is a lightweight view of one frame row, used by filter predicates and
// aggregation guards.
type Row struct {
	f *Frame
	i int
}

// Index returns the row position within the frame.
func (r Row) Index() int { return r.i }

// Float fetches a numeric cell by column name; ok is false when the column
// is absent, non-numeric, or the cell is missing.
func (r Row) Float(name string) (float64, bool) {
	i, ok := r.f.index[name]
	if !ok {
		return 0, false
	}

	return r.f.cols[i].Float(r.i)
}

// Bool fetches a boolean cell by column name.
func (r Row) Bool(name string) (bool, bool) {
	i, ok := r.f.index[name]
	if !ok {
		return false, false
	}

	return r.f.cols[i].Bool(r.i)
}

// Str fetches a string cell by column name.
func (r Row) Str(name string) (string, bool) {
	i, ok := r.f.index[name]
	if !ok {
		return "", false
	}

	return r.f.cols[i].Str(r.i)
}

// Cell renders the named cell for display; empty string for unknown columns.
func (r Row) Cell(name string) string {
	i, ok := r.f.index[name]
	if !ok {
		return ""
	}

	return r.f.cols[i].Cell(r.i)
}
