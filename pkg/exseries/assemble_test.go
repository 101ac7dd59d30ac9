package exseries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exseries-go/pkg/exseries/models"
)

func TestAssembleMapping(t *testing.T) {
	series, err := ExtractSeries(context.Background(), sampleTable(), MissingDrop)
	require.NoError(t, err)

	doc := Assemble("Date", series, DefaultOptions())
	mapping, ok := doc.(models.MappingDocument)
	require.True(t, ok, "expected MappingDocument, got %T", doc)
	assert.Equal(t, 3, mapping.SeriesCount())

	assert.Equal(t, models.SeriesNode{
		Dates:  []interface{}{"2020-01-01", "2020-01-03"},
		Values: []interface{}{int64(1), int64(3)},
	}, mapping["A"])
	assert.Equal(t, models.SeriesNode{Dates: []interface{}{}, Values: []interface{}{}}, mapping["B"])
}

func TestAssembleRecords(t *testing.T) {
	series, err := ExtractSeries(context.Background(), sampleTable(), MissingDrop)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Shape = ShapeRecords
	doc := Assemble("Date", series, opts)
	records, ok := doc.(models.RecordDocument)
	require.True(t, ok, "expected RecordDocument, got %T", doc)
	require.Equal(t, 3, records.SeriesCount())

	assert.Equal(t, models.Record{
		"Date": {"2020/01/01", "2020/01/03"},
		"A":    {int64(1), int64(3)},
	}, records[0])
	assert.Contains(t, records[1], "B")
	assert.Contains(t, records[2], "C")
}

func TestAssembleNoSeries(t *testing.T) {
	doc := Assemble("Date", nil, DefaultOptions())
	assert.Equal(t, models.MappingDocument{}, doc)

	opts := DefaultOptions()
	opts.Shape = ShapeRecords
	assert.Equal(t, models.RecordDocument{}, Assemble("Date", nil, opts))
}
