// Package exseries converts spreadsheets of time-series columns to JSON.
package exseries

import (
	"fmt"
	"time"

	"github.com/ukaji3/exseries-go/pkg/exseries/models"
	"github.com/ukaji3/exseries-go/pkg/exseries/parser"
)

// Shape selects the output document layout.
type Shape string

const (
	// ShapeMapping maps each series name to its {Dates, Values}.
	ShapeMapping Shape = "mapping"
	// ShapeRecords lists one {dateColumn: dates, series: values} record per series.
	ShapeRecords Shape = "records"
)

// MissingPolicy selects what happens to rows with a missing date or value.
type MissingPolicy string

const (
	// MissingDrop removes incomplete rows from the series.
	MissingDrop MissingPolicy = "drop"
	// MissingError fails the conversion on the first incomplete row.
	MissingError MissingPolicy = "error"
	// MissingKeep keeps incomplete rows; missing entries serialize as null.
	MissingKeep MissingPolicy = "keep"
)

// Default date layouts per shape.
const (
	MappingDateLayout = "2006-01-02"
	RecordsDateLayout = "2006/01/02"
)

// Options configures conversion behavior.
type Options struct {
	// Shape specifies the output layout (mapping, records).
	Shape Shape
	// DateLayout is the Go time layout for formatted dates.
	// If empty, defaults to the layout of the selected shape.
	DateLayout string
	// DateColumn is the header name of the date axis. Empty selects the first column.
	DateColumn string
	// Sheet is the sheet to read. Empty selects the first sheet.
	Sheet string
	// OnMissing specifies the missing-value policy (drop, error, keep).
	OnMissing MissingPolicy
	// ValueKind is the kind series columns are validated against (any, number).
	ValueKind models.ColumnKind
	// NAValues lists cell texts treated as missing.
	// If empty, defaults to parser.DefaultNAValues.
	NAValues []string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Shape:     ShapeMapping,
		OnMissing: MissingDrop,
		ValueKind: models.KindAny,
	}
}

// EffectiveDateLayout returns the date layout to format with.
func (o Options) EffectiveDateLayout() string {
	if o.DateLayout != "" {
		return o.DateLayout
	}
	if o.Shape == ShapeRecords {
		return RecordsDateLayout
	}
	return MappingDateLayout
}

// Validate checks the options for unknown enum values and date layouts that
// do not render a calendar date.
func (o Options) Validate() error {
	switch o.Shape {
	case ShapeMapping, ShapeRecords:
	default:
		return fmt.Errorf("%w: shape %q (must be mapping or records)", ErrInvalidOption, o.Shape)
	}

	switch o.OnMissing {
	case MissingDrop, MissingError, MissingKeep:
	default:
		return fmt.Errorf("%w: on-missing %q (must be drop, error, or keep)", ErrInvalidOption, o.OnMissing)
	}

	switch o.ValueKind {
	case models.KindAny, models.KindNumber:
	default:
		return fmt.Errorf("%w: value type %q (must be any or number)", ErrInvalidOption, o.ValueKind)
	}

	if !rendersCalendarDate(o.EffectiveDateLayout()) {
		return fmt.Errorf("%w: layout %q does not render year, month and day", ErrDateFormat, o.EffectiveDateLayout())
	}
	return nil
}

// rendersCalendarDate reports whether a date survives a round trip through layout.
func rendersCalendarDate(layout string) bool {
	probe := time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC)
	back, err := time.Parse(layout, probe.Format(layout))
	if err != nil {
		return false
	}
	return back.Year() == probe.Year() && back.Month() == probe.Month() && back.Day() == probe.Day()
}

func (o Options) loadOptions() parser.LoadOptions {
	return parser.LoadOptions{
		Sheet:      o.Sheet,
		DateColumn: o.DateColumn,
		ValueKind:  o.ValueKind,
		NAValues:   o.NAValues,
	}
}
