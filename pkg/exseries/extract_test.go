package exseries

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exseries-go/pkg/exseries/models"
)

func day(d int) time.Time {
	return time.Date(2020, time.January, d, 0, 0, 0, 0, time.UTC)
}

func present(row int, v interface{}) models.Cell {
	return models.Cell{Row: row, Value: v}
}

func missing(row int) models.Cell {
	return models.Cell{Row: row, Missing: true}
}

// sampleTable has dates [1, 2, 3, missing] and columns
// A = [1, NaN, 3, 4], B = [NaN, NaN, NaN, 9], C = ["x", "y", "z", "w"].
func sampleTable() *models.Table {
	return &models.Table{
		BookName:   "book.xlsx",
		SheetName:  "Sheet1",
		DateColumn: 0,
		Columns: []models.Column{
			{Index: 1, Name: "Date", Kind: models.KindDate, Cells: []models.Cell{
				present(2, day(1)), present(3, day(2)), present(4, day(3)), missing(5),
			}},
			{Index: 2, Name: "A", Kind: models.KindAny, Cells: []models.Cell{
				present(2, int64(1)), missing(3), present(4, int64(3)), present(5, int64(4)),
			}},
			{Index: 3, Name: "B", Kind: models.KindAny, Cells: []models.Cell{
				missing(2), missing(3), missing(4), present(5, int64(9)),
			}},
			{Index: 4, Name: "C", Kind: models.KindAny, Cells: []models.Cell{
				present(2, "x"), present(3, "y"), present(4, "z"), present(5, "w"),
			}},
		},
	}
}

func rowsOf(s models.CleanedSeries) []int {
	rows := make([]int, 0, s.Len())
	for _, p := range s.Points {
		rows = append(rows, p.Row)
	}
	return rows
}

func TestExtractSeriesDrop(t *testing.T) {
	series, err := ExtractSeries(context.Background(), sampleTable(), MissingDrop)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, "A", series[0].Name)
	assert.Equal(t, []int{2, 4}, rowsOf(series[0]))
	assert.Equal(t, 2, series[0].Dropped)
	assert.Equal(t, []interface{}{int64(1), int64(3)}, Values(series[0].Points))

	assert.Equal(t, "B", series[1].Name)
	assert.Equal(t, 0, series[1].Len())
	assert.NotNil(t, series[1].Points)
	assert.Equal(t, 4, series[1].Dropped)

	assert.Equal(t, "C", series[2].Name)
	assert.Equal(t, []int{2, 3, 4}, rowsOf(series[2]))
}

func TestExtractSeriesKeep(t *testing.T) {
	series, err := ExtractSeries(context.Background(), sampleTable(), MissingKeep)
	require.NoError(t, err)
	require.Len(t, series, 3)

	for _, s := range series {
		assert.Equal(t, 4, s.Len(), "series %s keeps every row", s.Name)
		assert.Equal(t, 0, s.Dropped)
	}

	a := series[0]
	assert.True(t, a.Points[1].ValueMissing)
	assert.True(t, a.Points[3].DateMissing)
	assert.Equal(t, []interface{}{"2020-01-01", "2020-01-02", "2020-01-03", nil}, FormatDates(a.Points, MappingDateLayout))
	assert.Equal(t, []interface{}{int64(1), nil, int64(3), int64(4)}, Values(a.Points))
}

func TestExtractSeriesError(t *testing.T) {
	_, err := ExtractSeries(context.Background(), sampleTable(), MissingError)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingValue)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Sheet1", convErr.Sheet)
	assert.Equal(t, "A", convErr.Column)
	assert.Equal(t, 3, convErr.Row)
	assert.Equal(t, "extract", convErr.Stage)
}

func TestExtractSeriesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractSeries(ctx, sampleTable(), MissingDrop)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractSeriesNamedDateColumn(t *testing.T) {
	table := sampleTable()
	// move the date axis to the end
	table.Columns = append(table.Columns[1:], table.Columns[0])
	table.DateColumn = 3

	series, err := ExtractSeries(context.Background(), table, MissingDrop)
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{series[0].Name, series[1].Name, series[2].Name})
}

func TestFormatDates(t *testing.T) {
	points := []models.Point{
		{Date: day(1)},
		{DateMissing: true},
		{Date: time.Date(2021, time.December, 31, 18, 30, 0, 0, time.UTC)},
	}

	assert.Equal(t, []interface{}{"2020-01-01", nil, "2021-12-31"}, FormatDates(points, MappingDateLayout))
	assert.Equal(t, []interface{}{"2020/01/01", nil, "2021/12/31"}, FormatDates(points, RecordsDateLayout))
	assert.Equal(t, []interface{}{}, FormatDates(nil, MappingDateLayout))
}
