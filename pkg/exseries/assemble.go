package exseries

import "github.com/ukaji3/exseries-go/pkg/exseries/models"

// Assemble builds the output document of the configured shape.
// dateColumn keys the dates of each record in the records shape.
func Assemble(dateColumn string, series []models.CleanedSeries, opts Options) models.Document {
	layout := opts.EffectiveDateLayout()

	if opts.Shape == ShapeRecords {
		doc := make(models.RecordDocument, 0, len(series))
		for _, s := range series {
			doc = append(doc, models.Record{
				dateColumn: FormatDates(s.Points, layout),
				s.Name:     Values(s.Points),
			})
		}
		return doc
	}

	doc := make(models.MappingDocument, len(series))
	for _, s := range series {
		doc[s.Name] = models.SeriesNode{
			Dates:  FormatDates(s.Points, layout),
			Values: Values(s.Points),
		}
	}
	return doc
}
