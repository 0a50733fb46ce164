package dataset_test

import (
	"strings"
	"testing"

	"github.com/larovann/winnow/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesFrame(t *testing.T) *dataset.Frame {
	t.Helper()
	f, err := dataset.ReadCSV(strings.NewReader(salesCSV))
	require.NoError(t, err)

	return f
}

// TestNewFrame_Validation covers duplicate names and unequal lengths.
func TestNewFrame_Validation(t *testing.T) {
	_, err := dataset.NewFrame(
		dataset.NewIntSeries("a", []int{1, 2}),
		dataset.NewIntSeries("a", []int{3, 4}),
	)
	assert.ErrorIs(t, err, dataset.ErrDuplicateColumn)

	_, err = dataset.NewFrame(
		dataset.NewIntSeries("a", []int{1, 2}),
		dataset.NewIntSeries("b", []int{3}),
	)
	assert.ErrorIs(t, err, dataset.ErrLengthMismatch)
}

// TestFilter_RowCount verifies the core invariant: output rows equal input
// rows minus rejected rows, with columns untouched.
func TestFilter_RowCount(t *testing.T) {
	f := salesFrame(t)

	north := f.Filter(func(r dataset.Row) bool {
		region, ok := r.Str("region")
		return ok && region == "north"
	})
	assert.Equal(t, 2, north.NumRows())
	assert.Equal(t, f.NumCols(), north.NumCols(), "filtering must not change columns")
	assert.Equal(t, f.Columns(), north.Columns())

	all := f.Filter(nil)
	assert.Equal(t, f.NumRows(), all.NumRows(), "nil predicate keeps every row")
}

// TestFilter_PreservesKindsAndMissing checks dtype and mask survival.
func TestFilter_PreservesKindsAndMissing(t *testing.T) {
	f := salesFrame(t)

	east := f.Filter(func(r dataset.Row) bool {
		region, _ := r.Str("region")
		return region == "east"
	})
	require.Equal(t, 1, east.NumRows())

	units, err := east.Column("units")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindInt, units.Kind())
	assert.True(t, units.Missing(0), "missing mask must follow the row")
}

// TestSelectDrop covers subsetting and its error paths.
func TestSelectDrop(t *testing.T) {
	f := salesFrame(t)

	sub, err := f.Select("price", "region")
	require.NoError(t, err)
	assert.Equal(t, []string{"price", "region"}, sub.Columns(), "select order wins")

	_, err = f.Select("nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)

	rest, err := f.Drop("vip")
	require.NoError(t, err)
	assert.Equal(t, []string{"region", "units", "price"}, rest.Columns())

	_, err = f.Drop("nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

// TestMatrix_Export verifies dense export shape, ordering, and error paths.
func TestMatrix_Export(t *testing.T) {
	f := salesFrame(t)

	// Missing cell in "units" must surface, not silently turn into NaN.
	_, err := f.Matrix("units", "price")
	assert.ErrorIs(t, err, dataset.ErrMissingValue)

	clean := f.Filter(func(r dataset.Row) bool {
		_, ok := r.Float("units")
		return ok
	})
	X, err := clean.Matrix("units", "price")
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 10.0, X.At(0, 0))
	assert.Equal(t, 2.5, X.At(0, 1))

	_, err = f.Matrix("region")
	assert.ErrorIs(t, err, dataset.ErrTypeMismatch)
	_, err = f.Matrix("nope")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

// TestFloatColumn covers the label-vector convenience accessor.
func TestFloatColumn(t *testing.T) {
	f := salesFrame(t)

	price, err := f.FloatColumn("price")
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 1.75, 2.5, 3.0}, price)

	_, err = f.FloatColumn("region")
	assert.ErrorIs(t, err, dataset.ErrTypeMismatch)
	_, err = f.FloatColumn("units")
	assert.ErrorIs(t, err, dataset.ErrMissingValue)
}
