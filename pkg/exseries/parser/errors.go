package parser

import (
	"errors"
	"fmt"
)

// ErrDateFormat indicates a date-axis cell that cannot be read as a date.
var ErrDateFormat = errors.New("invalid date")

// ErrTypeMismatch indicates a cell whose type does not match its column kind.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrColumnNotFound indicates a requested column is absent from the header.
var ErrColumnNotFound = errors.New("column not found")

// ErrSheetNotFound indicates a requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// CellError reports a cell that failed to decode.
type CellError struct {
	Sheet  string
	Cell   string // e.g. "A7"
	Column string
	Text   string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q cell %s (column %q): %v: %q", e.Sheet, e.Cell, e.Column, e.Err, e.Text)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
