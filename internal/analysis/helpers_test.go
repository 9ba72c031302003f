package analysis

import (
	"testing"
	"time"

	"covidstat.mindtree.org/internal/models"
)

func day(t *testing.T, key string) time.Time {
	t.Helper()
	date, err := models.ParseDateKey(key)
	if err != nil {
		t.Fatalf("bad test date %q: %v", key, err)
	}
	return date
}

func record(t *testing.T, region, subRegion, date, confirmed string) models.Record {
	t.Helper()
	return models.Record{
		Region:    region,
		SubRegion: subRegion,
		Confirmed: confirmed,
		Date:      day(t, date),
	}
}
