package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"covidstat.mindtree.org/internal/models"
)

// AggregateByDate sums confirmed counts per region within each date.
// Dates appear in the order first seen, and so do regions within a date.
func AggregateByDate(records []models.Record) *models.DateAggregate {
	agg := models.NewDateAggregate()
	for _, record := range records {
		agg.Add(record.DateKey(), strings.TrimSpace(record.Region), mustParseCount(record))
	}
	return agg
}

// mustParseCount parses the confirmed field. The store guarantees a
// non-negative integer here; anything else is a broken invariant.
func mustParseCount(record models.Record) int {
	n, err := strconv.Atoi(record.Confirmed)
	if err != nil || n < 0 {
		panic(fmt.Sprintf("analysis: record %d (%s, %s) has non-numeric confirmed count %q",
			record.ID, record.Region, record.DateKey(), record.Confirmed))
	}
	return n
}
