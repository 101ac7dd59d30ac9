package parser

import (
	"fmt"
	"strconv"
)

// dataExtent returns the index of the first non-empty row and the number
// of columns up to the rightmost non-empty cell. firstRow is -1 when the
// sheet holds no data.
func dataExtent(rows [][]string) (firstRow, width int) {
	firstRow = -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if firstRow < 0 {
				firstRow = rowIdx
			}
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
	}
	return
}

// headerNames builds unique column names from the header row.
// Blank headers become "Unnamed: <index>"; repeats get ".1", ".2", ... suffixes.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	used := make(map[string]bool, width)
	for colIdx := 0; colIdx < width; colIdx++ {
		name := ""
		if colIdx < len(header) {
			name = header[colIdx]
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(colIdx)
		}

		if used[name] {
			base := name
			for n := 1; used[name]; n++ {
				name = fmt.Sprintf("%s.%d", base, n)
			}
		}
		used[name] = true
		names[colIdx] = name
	}
	return names
}
