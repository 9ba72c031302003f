package analysis

import (
	"sort"
	"time"

	"covidstat.mindtree.org/internal/models"
)

// CompareRegions lines up the confirmed totals of two regions per date
// within the open range (start, end). Both inputs must already be filtered
// to their region.
//
// The result's key order is the first region's dates, newest first,
// followed by any dates only the second region has, also newest first.
func CompareRegions(first, second string, firstRecords, secondRecords []models.Record, start, end time.Time) *models.Comparison {
	firstRecords = newestFirst(withinOpenRange(start, end, firstRecords))
	secondRecords = newestFirst(withinOpenRange(start, end, secondRecords))

	comparison := models.NewComparison()

	for _, record := range firstRecords {
		key := record.DateKey()
		confirmed := mustParseCount(record)
		if row := comparison.Get(key); row != nil {
			row.FirstConfirmed += confirmed
			continue
		}
		comparison.Put(&models.ComparisonRow{
			Date:           key,
			FirstRegion:    record.Region,
			FirstConfirmed: confirmed,
			SecondRegion:   second,
		})
	}

	for _, record := range secondRecords {
		key := record.DateKey()
		confirmed := mustParseCount(record)
		if row := comparison.Get(key); row != nil {
			row.SecondConfirmed += confirmed
			row.SecondRegion = record.Region
			continue
		}
		comparison.Put(&models.ComparisonRow{
			Date:            key,
			FirstRegion:     first,
			SecondRegion:    record.Region,
			SecondConfirmed: confirmed,
		})
	}

	return comparison
}

func newestFirst(records []models.Record) []models.Record {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records
}
