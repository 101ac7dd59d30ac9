package parser

import (
	"fmt"

	"github.com/ukaji3/exseries-go/pkg/exseries/models"
	"github.com/xuri/excelize/v2"
)

// LoadOptions configures how a sheet is read into a Table.
type LoadOptions struct {
	// Sheet is the sheet to read. Empty selects the first sheet.
	Sheet string
	// DateColumn is the header name of the date axis. Empty selects the first column.
	DateColumn string
	// ValueKind is the kind every series column is validated against.
	ValueKind models.ColumnKind
	// NAValues lists cell texts treated as missing. Empty selects DefaultNAValues.
	NAValues []string
}

// ReadTable reads a sheet into a Table. The first non-empty row is the
// header; every following row is a data row. Cells are decoded and validated against
// their column kind, failing on the first cell that does not fit.
func ReadTable(f *excelize.File, bookName string, opts LoadOptions) (*models.Table, error) {
	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	headerRow, width := dataExtent(rows)
	if headerRow < 0 {
		return nil, fmt.Errorf("sheet %q has no header row: %w", sheetName, ErrColumnNotFound)
	}

	names := headerNames(rows[headerRow], width)
	dateIdx, err := resolveDateColumn(names, opts.DateColumn)
	if err != nil {
		return nil, err
	}

	valueKind := opts.ValueKind
	if valueKind == "" {
		valueKind = models.KindAny
	}

	table := &models.Table{
		BookName:   bookName,
		SheetName:  sheetName,
		DateColumn: dateIdx,
		Columns:    make([]models.Column, len(names)),
	}
	for colIdx, name := range names {
		kind := valueKind
		if colIdx == dateIdx {
			kind = models.KindDate
		}
		table.Columns[colIdx] = models.Column{
			Index: colIdx + 1,
			Name:  name,
			Kind:  kind,
			Cells: make([]models.Cell, 0, len(rows)-headerRow-1),
		}
	}

	na := newNASet(opts.NAValues)
	dates := newDateDecoder(f, sheetName)

	for rowIdx := headerRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // 1-based row index

		for colIdx := range table.Columns {
			col := &table.Columns[colIdx]
			raw := ""
			if colIdx < len(row) {
				raw = row[colIdx]
			}

			if na.has(raw) {
				col.Cells = append(col.Cells, models.Cell{Row: rowNum, Missing: true})
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(col.Index, rowNum)
			if err != nil {
				return nil, err
			}

			var value interface{}
			if col.Kind == models.KindDate {
				value, err = dates.decode(cellName, raw)
			} else {
				value, err = decodeValue(f, sheetName, cellName, raw, col.Kind)
			}
			if err != nil {
				return nil, &CellError{
					Sheet:  sheetName,
					Cell:   cellName,
					Column: col.Name,
					Text:   raw,
					Err:    err,
				}
			}

			col.Cells = append(col.Cells, models.Cell{Row: rowNum, Value: value})
		}
	}

	return table, nil
}

func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}

func resolveDateColumn(names []string, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: date column %q", ErrColumnNotFound, name)
}
