package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataExtent(t *testing.T) {
	rows := [][]string{
		{},
		{"", "x"},
		{"", "", "", "y"},
	}
	firstRow, width := dataExtent(rows)
	assert.Equal(t, 1, firstRow)
	assert.Equal(t, 4, width)

	firstRow, width = dataExtent([][]string{{""}, {}})
	assert.Equal(t, -1, firstRow)
	assert.Equal(t, 0, width)
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		width    int
		expected []string
	}{
		{"plain", []string{"Date", "A", "B"}, 3, []string{"Date", "A", "B"}},
		{"blank header", []string{"Date", "", "B"}, 3, []string{"Date", "Unnamed: 1", "B"}},
		{"short header row", []string{"Date"}, 3, []string{"Date", "Unnamed: 1", "Unnamed: 2"}},
		{"duplicates", []string{"Date", "A", "A", "A"}, 4, []string{"Date", "A", "A.1", "A.2"}},
		{"suffix collision", []string{"A", "A.1", "A"}, 3, []string{"A", "A.1", "A.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, headerNames(tt.header, tt.width))
		})
	}
}
