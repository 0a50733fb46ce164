// Package dataset: spreadsheet-style group-by aggregation.
package dataset

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Reducer enumerates the supported aggregation functions.
type Reducer int

const (
	// Sum adds the non-missing numeric cells of a group.
	Sum Reducer = iota

	// Mean averages the non-missing numeric cells of a group.
	Mean

	// Min takes the smallest non-missing numeric cell of a group.
	Min

	// Max takes the largest non-missing numeric cell of a group.
	Max

	// Count counts the rows of a group (per-column missing cells excluded).
	Count

	// Median takes the middle non-missing numeric cell of a group
	// (mean of the two middle cells for even counts).
	Median
)

// String returns the reducer's lowercase spreadsheet-ish name.
func (r Reducer) String() string {
	switch r {
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Min:
		return "min"
	case Max:
		return "max"
	case Count:
		return "count"
	case Median:
		return "median"
	default:
		return fmt.Sprintf("reducer(%d)", int(r))
	}
}

// ParseReducer maps a lowercase reducer name back to its Reducer.
func ParseReducer(name string) (Reducer, error) {
	switch name {
	case "sum":
		return Sum, nil
	case "mean":
		return Mean, nil
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "count":
		return Count, nil
	case "median":
		return Median, nil
	default:
		return 0, fmt.Errorf("%w: unknown reducer %q", ErrUnknownReducer, name)
	}
}

// AggSpec names one output column of an aggregation: reduce Column with
// Reduce, restricted to rows passing Where (nil keeps every row — the plain
// SUM; non-nil is the SUMIF/COUNTIF analogue).
type AggSpec struct {
	Column string
	Reduce Reducer
	Where  func(Row) bool
}

// Grouping is an intermediate handle produced by Frame.GroupBy.
type Grouping struct {
	f   *Frame
	key *Series
	err error
}

// GroupBy partitions the frame by the rendered value of the named key
// column. Groups appear in first-appearance order, keeping the output
// deterministic for any input ordering.
func (f *Frame) GroupBy(key string) *Grouping {
	s, err := f.Column(key)
	if err != nil {
		return &Grouping{err: err}
	}

	return &Grouping{f: f, key: s}
}

// Agg reduces every group under each spec and assembles the result frame:
// first column the group key (as strings, first-appearance order), then one
// numeric column per spec named "<reducer>_<column>".
//
// Errors:
//   - deferred GroupBy errors (ErrUnknownColumn);
//   - ErrTypeMismatch when a numeric reducer meets a non-numeric column;
//   - ErrEmptyInput when no specs are given.
//
// Complexity: Time O(rows·specs + groups·log groups) — the log factor only
// for Median's per-group sort.
func (g *Grouping) Agg(specs ...AggSpec) (*Frame, error) {
	if g.err != nil {
		return nil, g.err
	}
	if len(specs) == 0 {
		return nil, ErrEmptyInput
	}

	// Validate specs before touching any row.
	targets := make([]*Series, len(specs))
	for k, spec := range specs {
		s, err := g.f.Column(spec.Column)
		if err != nil {
			return nil, err
		}
		if spec.Reduce != Count && !s.IsNumeric() {
			return nil, fmt.Errorf("%w: %s over %q (%s)", ErrTypeMismatch, spec.Reduce, spec.Column, s.kind)
		}
		targets[k] = s
	}

	// Partition rows by rendered key, first-appearance order.
	var keys []string
	groups := make(map[string][]int)
	n := g.f.NumRows()
	for i := 0; i < n; i++ {
		k := g.key.Cell(i)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], i)
	}

	cols := make([]*Series, 0, 1+len(specs))
	cols = append(cols, NewStringSeries(g.key.name, keys))

	for k, spec := range specs {
		vals := make([]float64, len(keys))
		for gi, key := range keys {
			vals[gi] = reduceGroup(g.f, targets[k], groups[key], spec)
		}
		name := fmt.Sprintf("%s_%s", spec.Reduce, spec.Column)
		out := NewFloatSeries(name, vals)
		if spec.Reduce == Count {
			out.kind = KindInt
		}
		cols = append(cols, out)
	}

	return NewFrame(cols...)
}

// reduceGroup applies one spec to the rows of one group. Rows failing the
// Where guard or with a missing target cell are skipped; an empty group
// yields NaN (Count yields 0).
func reduceGroup(f *Frame, target *Series, rows []int, spec AggSpec) float64 {
	var picked []float64
	count := 0
	for _, i := range rows {
		if spec.Where != nil && !spec.Where(Row{f: f, i: i}) {
			continue
		}
		if target.Missing(i) {
			continue
		}
		count++
		if spec.Reduce != Count {
			v, _ := target.Float(i)
			picked = append(picked, v)
		}
	}

	switch spec.Reduce {
	case Count:
		return float64(count)
	case Sum:
		s := 0.0
		for _, v := range picked {
			s += v
		}
		return s
	case Mean:
		if len(picked) == 0 {
			return math.NaN()
		}
		return stat.Mean(picked, nil)
	case Min:
		if len(picked) == 0 {
			return math.NaN()
		}
		m := picked[0]
		for _, v := range picked[1:] {
			if v < m {
				m = v
			}
		}
		return m
	case Max:
		if len(picked) == 0 {
			return math.NaN()
		}
		m := picked[0]
		for _, v := range picked[1:] {
			if v > m {
				m = v
			}
		}
		return m
	case Median:
		if len(picked) == 0 {
			return math.NaN()
		}
		sort.Float64s(picked)
		mid := len(picked) / 2
		if len(picked)%2 == 1 {
			return picked[mid]
		}
		return (picked[mid-1] + picked[mid]) / 2
	default:
		return math.NaN()
	}
}
