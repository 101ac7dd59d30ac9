package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/exseries-go/pkg/exseries/models"
	"github.com/xuri/excelize/v2"
)

// DefaultNAValues lists the cell texts treated as missing when no NA tokens
// are configured. The empty string is always missing.
var DefaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

type naSet map[string]struct{}

func newNASet(values []string) naSet {
	if len(values) == 0 {
		values = DefaultNAValues
	}
	set := make(naSet, len(values)+1)
	set[""] = struct{}{}
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s naSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// decodeValue decodes a non-missing series cell according to its stored type.
func decodeValue(f *excelize.File, sheetName, cellName, raw string, kind models.ColumnKind) (interface{}, error) {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return nil, err
	}

	var value interface{}
	switch cellType {
	case excelize.CellTypeBool:
		value = raw == "1" || strings.EqualFold(raw, "TRUE")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		value = raw
	default:
		value = parseValue(raw)
	}

	if kind == models.KindNumber {
		switch value.(type) {
		case int64, float64:
		default:
			return nil, ErrTypeMismatch
		}
	}
	return value, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// NaN and Inf have no JSON encoding, keep their text
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
