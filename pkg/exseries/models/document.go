package models

// SeriesNode is the formatted payload of one series in the mapping shape.
type SeriesNode struct {
	// Dates holds formatted date strings (nil entries for kept missing dates).
	Dates []interface{} `json:"Dates"`
	// Values holds the raw cell values (nil entries for kept missing values).
	Values []interface{} `json:"Values"`
}

// Document is a JSON-serializable output document.
type Document interface {
	// SeriesCount returns the number of series in the document.
	SeriesCount() int
}

// MappingDocument maps series name to its dates and values.
type MappingDocument map[string]SeriesNode

// SeriesCount implements Document.
func (d MappingDocument) SeriesCount() int {
	return len(d)
}

// Record is one series in the record-list shape, keyed by the date column
// name and the series name.
type Record map[string][]interface{}

// RecordDocument is an ordered list of records, one per series.
type RecordDocument []Record

// SeriesCount implements Document.
func (d RecordDocument) SeriesCount() int {
	return len(d)
}
