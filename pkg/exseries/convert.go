package exseries

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/ukaji3/exseries-go/pkg/exseries/models"
)

// Convert reads an Excel file and builds its output document:
// load, extract and clean each series, format dates, assemble.
func Convert(ctx context.Context, path string, opts Options) (models.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("book", table.BookName).
		Str("sheet", table.SheetName).
		Str("date_column", table.DateAxis().Name).
		Int("columns", len(table.Columns)).
		Int("rows", table.RowCount()).
		Msg("loaded table")

	series, err := ExtractSeries(ctx, table, opts.OnMissing)
	if err != nil {
		return nil, err
	}

	return Assemble(table.DateAxis().Name, series, opts), nil
}
