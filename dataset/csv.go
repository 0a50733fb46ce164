// Package dataset: CSV ingestion with per-column type inference.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Defaults for CSV ingestion (single source of truth).
const (
	// DefaultComma is the field separator.
	DefaultComma = ','

	// DefaultHasHeader treats the first record as column names.
	DefaultHasHeader = true
)

// DefaultMissingTokens are the cell spellings treated as missing values.
// Comparison is case-insensitive after trimming surrounding whitespace.
func DefaultMissingTokens() []string { return []string{"", "na", "nan", "null"} }

// Option configures ReadCSV via functional arguments.
type Option func(*readOptions)

type readOptions struct {
	comma     rune
	hasHeader bool
	missing   map[string]struct{}
}

// WithComma sets the field separator (e.g. '\t' or ';').
func WithComma(c rune) Option {
	return func(o *readOptions) { o.comma = c }
}

// WithoutHeader synthesizes column names c0, c1, ... instead of consuming
// the first record as a header.
func WithoutHeader() Option {
	return func(o *readOptions) { o.hasHeader = false }
}

// WithMissingTokens replaces the set of cell spellings treated as missing.
// Tokens are matched case-insensitively after whitespace trimming.
func WithMissingTokens(tokens ...string) Option {
	return func(o *readOptions) {
		o.missing = make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			o.missing[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
		}
	}
}

func gatherReadOptions(opts ...Option) readOptions {
	o := readOptions{comma: DefaultComma, hasHeader: DefaultHasHeader}
	WithMissingTokens(DefaultMissingTokens()...)(&o)
	for _, set := range opts {
		set(&o)
	}

	return o
}

// ReadCSV parses a CSV stream into a Frame, inferring each column's type.
//
// Inference tries kinds in narrowing order per column, using only the
// non-missing cells:
//  1. KindInt    — every cell parses as a base-10 integer.
//  2. KindFloat  — every cell parses as a float64.
//  3. KindBool   — every cell parses via strconv.ParseBool.
//  4. KindString — the fallback; always succeeds.
//
// Missing cells (see DefaultMissingTokens / WithMissingTokens) are excluded
// from inference and flagged in the series missing mask; in numeric columns
// their payload is NaN.
//
// Errors:
//   - ErrEmptyInput — no data rows.
//   - ErrRaggedRow  — a record whose width deviates from the first record.
//   - wrapped csv.Reader errors for malformed input.
func ReadCSV(r io.Reader, opts ...Option) (*Frame, error) {
	o := gatherReadOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = 0 // enforce uniform width; deviations surface below

	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: line %d", ErrRaggedRow, perr.Line)
		}

		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}

	var header []string
	if o.hasHeader {
		if len(records) == 0 {
			return nil, ErrEmptyInput
		}
		header = records[0]
		records = records[1:]
	} else if len(records) > 0 {
		header = make([]string, len(records[0]))
		for i := range header {
			header[i] = fmt.Sprintf("c%d", i)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	// Transpose into raw columns once; inference and construction both reuse it.
	nCols := len(header)
	raw := make([][]string, nCols)
	miss := make([][]bool, nCols)
	for j := 0; j < nCols; j++ {
		raw[j] = make([]string, len(records))
		miss[j] = make([]bool, len(records))
	}
	for i, rec := range records {
		for j := 0; j < nCols; j++ {
			cell := strings.TrimSpace(rec[j])
			raw[j][i] = cell
			if _, m := o.missing[strings.ToLower(cell)]; m {
				miss[j][i] = true
			}
		}
	}

	cols := make([]*Series, nCols)
	for j := 0; j < nCols; j++ {
		cols[j] = inferSeries(header[j], raw[j], miss[j])
	}

	return NewFrame(cols...)
}

// inferSeries picks the narrowest kind that parses every non-missing cell.
func inferSeries(name string, cells []string, miss []bool) *Series {
	kind := inferKind(cells, miss)

	s := &Series{name: name, kind: kind, missing: append([]bool(nil), miss...)}
	switch kind {
	case KindBool:
		s.bools = make([]bool, len(cells))
		for i, c := range cells {
			if miss[i] {
				continue
			}
			s.bools[i], _ = strconv.ParseBool(c)
		}
	case KindString:
		s.strs = append([]string(nil), cells...)
	default:
		s.floats = make([]float64, len(cells))
		for i, c := range cells {
			if miss[i] {
				s.floats[i] = math.NaN()
				continue
			}
			s.floats[i], _ = strconv.ParseFloat(c, 64)
		}
	}

	return s
}

// inferKind scans non-missing cells, demoting the candidate kind on the
// first cell that fails to parse. A column of only missing cells stays
// KindString.
func inferKind(cells []string, miss []bool) Kind {
	seen := false
	isInt, isFloat, isBool := true, true, true
	for i, c := range cells {
		if miss[i] {
			continue
		}
		seen = true
		if isInt {
			if _, err := strconv.ParseInt(c, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(c, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			if _, err := strconv.ParseBool(c); err != nil {
				isBool = false
			}
		}
		if !isInt && !isFloat && !isBool {
			return KindString
		}
	}
	if !seen {
		return KindString
	}

	switch {
	case isInt:
		return KindInt
	case isFloat:
		return KindFloat
	case isBool:
		return KindBool
	default:
		return KindString
	}
}
