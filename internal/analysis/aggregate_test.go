package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"covidstat.mindtree.org/internal/models"
)

func TestAggregateByDateSumsPerRegion(t *testing.T) {
	records := []models.Record{
		record(t, "MH", "Mumbai", "2020-01-01", "5"),
		record(t, "MH", "Pune", "2020-01-01", "7"),
	}

	agg := AggregateByDate(records)

	want := []models.DateAggregateRow{{Date: "2020-01-01", Region: "MH", Confirmed: 12}}
	if diff := cmp.Diff(want, agg.Rows()); diff != "" {
		t.Errorf("AggregateByDate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateByDateKeepsFirstEncounterOrder(t *testing.T) {
	records := []models.Record{
		record(t, "KA", "", "2020-01-01", "1"),
		record(t, "MH", "", "2020-01-01", "2"),
		record(t, "ka", "", "2020-01-01", "3"),
		record(t, "MH", "", "2020-01-02", "4"),
	}

	agg := AggregateByDate(records)

	want := []models.DateAggregateRow{
		{Date: "2020-01-01", Region: "KA", Confirmed: 4},
		{Date: "2020-01-01", Region: "MH", Confirmed: 2},
		{Date: "2020-01-02", Region: "MH", Confirmed: 4},
	}
	if diff := cmp.Diff(want, agg.Rows()); diff != "" {
		t.Errorf("AggregateByDate() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"2020-01-01", "2020-01-02"}, agg.Dates())
}

func TestAggregateByDateEmpty(t *testing.T) {
	agg := AggregateByDate(nil)
	assert.Equal(t, 0, agg.Len())
	assert.Empty(t, agg.Rows())
}

func TestAggregateByDatePanicsOnNonNumericCount(t *testing.T) {
	records := []models.Record{record(t, "MH", "", "2020-01-01", "many")}
	assert.Panics(t, func() { AggregateByDate(records) })

	negative := []models.Record{record(t, "MH", "", "2020-01-01", "-1")}
	assert.Panics(t, func() { AggregateByDate(negative) })
}
