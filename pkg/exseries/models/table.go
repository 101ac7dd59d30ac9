// Package models defines data structures for spreadsheet series conversion.
package models

// ColumnKind is the semantic type a column is validated against at load time.
type ColumnKind string

const (
	// KindDate marks the date axis. Cells decode to time.Time.
	KindDate ColumnKind = "date"
	// KindNumber marks a series column that must hold numbers only.
	KindNumber ColumnKind = "number"
	// KindAny marks a series column holding any scalar cell value.
	KindAny ColumnKind = "any"
)

// Cell is a single decoded cell of a column.
type Cell struct {
	// Row is the sheet row index (1-based).
	Row int
	// Value is the decoded value: time.Time for the date axis, otherwise
	// int64, float64, bool or string. Nil when Missing is true.
	Value interface{}
	// Missing reports an empty cell or one holding an NA token.
	Missing bool
}

// Column is one named column of the loaded sheet.
type Column struct {
	// Index is the sheet column index (1-based).
	Index int
	// Name is the de-duplicated header text.
	Name string
	// Kind is the semantic type the cells were validated against.
	Kind ColumnKind
	// Cells holds one entry per data row, aligned across columns.
	Cells []Cell
}

// Table is the loaded sheet: a date axis plus the series columns.
type Table struct {
	// BookName is the workbook file name (no path).
	BookName string
	// SheetName is the sheet the table was read from.
	SheetName string
	// DateColumn is the position of the date axis in Columns.
	DateColumn int
	// Columns lists every column in sheet order, including the date axis.
	Columns []Column
}

// DateAxis returns the date column.
func (t *Table) DateAxis() *Column {
	return &t.Columns[t.DateColumn]
}

// SeriesColumns returns the non-date columns in sheet order.
func (t *Table) SeriesColumns() []*Column {
	cols := make([]*Column, 0, len(t.Columns))
	for i := range t.Columns {
		if i == t.DateColumn {
			continue
		}
		cols = append(cols, &t.Columns[i])
	}
	return cols
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}
