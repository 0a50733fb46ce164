package dataset_test

import (
	"strings"
	"testing"

	"github.com/larovann/winnow/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = `region,units,price,vip
north,10,2.5,true
south,3,1.75,false
north,7,2.5,true
east,NA,3.0,false
`

// TestReadCSV_InferKinds verifies the narrowing order int → float → bool → string.
func TestReadCSV_InferKinds(t *testing.T) {
	f, err := dataset.ReadCSV(strings.NewReader(salesCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, f.NumRows(), "three data rows plus the NA row")
	assert.Equal(t, []string{"region", "units", "price", "vip"}, f.Columns())

	region, err := f.Column("region")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindString, region.Kind())

	units, err := f.Column("units")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindInt, units.Kind(), "all-integer column must infer int")

	price, err := f.Column("price")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindFloat, price.Kind())

	vip, err := f.Column("vip")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindBool, vip.Kind())
}

// TestReadCSV_MissingCells checks that NA cells are flagged and excluded
// from inference rather than demoting the column to string.
func TestReadCSV_MissingCells(t *testing.T) {
	f, err := dataset.ReadCSV(strings.NewReader(salesCSV))
	require.NoError(t, err)

	units, err := f.Column("units")
	require.NoError(t, err)
	assert.True(t, units.Missing(3), "NA cell must be flagged missing")

	_, ok := units.Float(3)
	assert.False(t, ok, "missing cell must not yield a value")

	v, ok := units.Float(0)
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)
}

// TestReadCSV_EmptyInput verifies ErrEmptyInput for header-only and empty streams.
func TestReadCSV_EmptyInput(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmptyInput)

	_, err = dataset.ReadCSV(strings.NewReader("a,b,c\n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyInput, "header without rows is empty")
}

// TestReadCSV_RaggedRow verifies ErrRaggedRow on width deviation.
func TestReadCSV_RaggedRow(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	assert.ErrorIs(t, err, dataset.ErrRaggedRow)
}

// TestReadCSV_WithoutHeader checks synthesized c0..cN names.
func TestReadCSV_WithoutHeader(t *testing.T) {
	f, err := dataset.ReadCSV(strings.NewReader("1,2\n3,4\n"), dataset.WithoutHeader())
	require.NoError(t, err)
	assert.Equal(t, []string{"c0", "c1"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())
}

// TestReadCSV_CustomSeparatorAndTokens covers WithComma and WithMissingTokens.
func TestReadCSV_CustomSeparatorAndTokens(t *testing.T) {
	f, err := dataset.ReadCSV(
		strings.NewReader("x;y\n1;?\n2;3\n"),
		dataset.WithComma(';'),
		dataset.WithMissingTokens("?"),
	)
	require.NoError(t, err)

	y, err := f.Column("y")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindInt, y.Kind(), "'?' must be treated as missing, not text")
	assert.True(t, y.Missing(0))
}
