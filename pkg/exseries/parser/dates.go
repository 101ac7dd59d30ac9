package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are the text layouts accepted in the date column.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// dateDecoder turns date-axis cells into calendar dates.
type dateDecoder struct {
	f         *excelize.File
	sheetName string
	date1904  bool
}

func newDateDecoder(f *excelize.File, sheetName string) *dateDecoder {
	d := &dateDecoder{f: f, sheetName: sheetName}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// decode converts a non-missing cell to a time. Numeric cells are accepted
// only when they carry a date number format.
func (d *dateDecoder) decode(cellName, raw string) (time.Time, error) {
	cellType, err := d.f.GetCellType(d.sheetName, cellName)
	if err != nil {
		return time.Time{}, err
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate:
		if t, ok := parseDateText(raw); ok {
			return t, nil
		}
		return time.Time{}, ErrDateFormat
	case excelize.CellTypeBool, excelize.CellTypeError:
		return time.Time{}, ErrDateFormat
	}

	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if t, ok := parseDateText(raw); ok {
			return t, nil
		}
		return time.Time{}, ErrDateFormat
	}

	isDate, err := d.hasDateFormat(cellName)
	if err != nil {
		return time.Time{}, err
	}
	if !isDate {
		return time.Time{}, ErrDateFormat
	}

	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return t, nil
}

func (d *dateDecoder) hasDateFormat(cellName string) (bool, error) {
	styleID, err := d.f.GetCellStyle(d.sheetName, cellName)
	if err != nil {
		return false, err
	}
	style, err := d.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt), nil
	}
	return isDateNumFmt(style.NumFmt), nil
}

// parseDateText parses ISO-8601 style date text.
func parseDateText(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isDateNumFmt reports whether a built-in number format id renders a date or time.
func isDateNumFmt(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom number format code contains date
// or time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	// only the first section applies to positive numbers
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}

	inQuote := false
	inBracket := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			// elapsed time sections such as [h] are still time formats
			if end := strings.IndexByte(code[i:], ']'); end > 0 {
				switch strings.ToLower(code[i+1 : i+end]) {
				case "h", "hh", "m", "mm", "s", "ss":
					return true
				}
			}
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			switch c | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}
