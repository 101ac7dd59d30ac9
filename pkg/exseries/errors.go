package exseries

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exseries-go/pkg/exseries/parser"
)

// ErrMissingArgument indicates the input file name was not supplied.
var ErrMissingArgument = errors.New("input file name argument is expected")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrMissingValue indicates an incomplete row under the error policy.
var ErrMissingValue = errors.New("missing value")

// ErrInvalidOption indicates an unknown option value.
var ErrInvalidOption = errors.New("invalid option")

// Errors reported while reading the sheet.
var (
	ErrDateFormat     = parser.ErrDateFormat
	ErrTypeMismatch   = parser.ErrTypeMismatch
	ErrColumnNotFound = parser.ErrColumnNotFound
	ErrSheetNotFound  = parser.ErrSheetNotFound
)

// ConversionError represents an error during conversion.
type ConversionError struct {
	Sheet  string
	Column string
	Row    int    // 1-based sheet row, 0 when not row specific
	Stage  string // "load", "extract"
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s error in sheet %q column %q row %d: %v", e.Stage, e.Sheet, e.Column, e.Row, e.Err)
	}
	return fmt.Sprintf("%s error in sheet %q: %v", e.Stage, e.Sheet, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheet, column string, row int, stage string, err error) *ConversionError {
	return &ConversionError{
		Sheet:  sheet,
		Column: column,
		Row:    row,
		Stage:  stage,
		Err:    err,
	}
}
