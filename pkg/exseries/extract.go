package exseries

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/ukaji3/exseries-go/pkg/exseries/models"
)

// ExtractSeries pairs every non-date column with the date axis and applies
// the missing-value policy. Series are returned in column order.
func ExtractSeries(ctx context.Context, table *models.Table, policy MissingPolicy) ([]models.CleanedSeries, error) {
	logger := zerolog.Ctx(ctx)
	dates := table.DateAxis()
	columns := table.SeriesColumns()

	result := make([]models.CleanedSeries, 0, len(columns))
	for _, col := range columns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cleaned, err := clean(pairWithDates(dates, col), policy)
		if err != nil {
			var convErr *ConversionError
			if errors.As(err, &convErr) {
				convErr.Sheet = table.SheetName
			}
			return nil, err
		}

		logger.Debug().
			Str("series", cleaned.Name).
			Int("rows", cleaned.Len()).
			Int("dropped", cleaned.Dropped).
			Msg("extracted series")
		result = append(result, cleaned)
	}

	return result, nil
}

// pairWithDates builds a Series from a column aligned row-for-row with the date axis.
func pairWithDates(dates, col *models.Column) models.Series {
	points := make([]models.Point, len(col.Cells))
	for i, cell := range col.Cells {
		p := models.Point{
			Row:          cell.Row,
			Value:        cell.Value,
			ValueMissing: cell.Missing,
			DateMissing:  true,
		}
		if i < len(dates.Cells) && !dates.Cells[i].Missing {
			p.Date = dates.Cells[i].Value.(time.Time)
			p.DateMissing = false
		}
		points[i] = p
	}
	return models.Series{Name: col.Name, Points: points}
}

// clean applies the missing-value policy, preserving row order.
func clean(series models.Series, policy MissingPolicy) (models.CleanedSeries, error) {
	if policy == MissingKeep {
		return models.CleanedSeries{Series: series}, nil
	}

	kept := make([]models.Point, 0, len(series.Points))
	dropped := 0
	for _, p := range series.Points {
		if p.Complete() {
			kept = append(kept, p)
			continue
		}
		if policy == MissingError {
			return models.CleanedSeries{}, NewConversionError("", series.Name, p.Row, "extract", ErrMissingValue)
		}
		dropped++
	}

	return models.CleanedSeries{
		Series:  models.Series{Name: series.Name, Points: kept},
		Dropped: dropped,
	}, nil
}
