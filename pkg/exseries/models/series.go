package models

import "time"

// Point is one row of a series, paired with the date axis.
type Point struct {
	// Row is the sheet row index (1-based).
	Row int
	// Date is the decoded date; zero when DateMissing.
	Date time.Time
	// Value is the decoded cell value; nil when ValueMissing.
	Value interface{}
	// DateMissing reports a missing date cell.
	DateMissing bool
	// ValueMissing reports a missing value cell.
	ValueMissing bool
}

// Complete reports whether both the date and the value are present.
func (p Point) Complete() bool {
	return !p.DateMissing && !p.ValueMissing
}

// Series is one named column paired row-for-row with the date axis.
type Series struct {
	// Name is the column name.
	Name string
	// Points holds the rows in sheet order.
	Points []Point
}

// CleanedSeries is a Series after the missing-value policy was applied.
type CleanedSeries struct {
	Series
	// Dropped is the number of rows removed by cleaning.
	Dropped int
}

// Len returns the number of surviving rows.
func (s CleanedSeries) Len() int {
	return len(s.Points)
}
