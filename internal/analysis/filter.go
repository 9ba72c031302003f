package analysis

import (
	"sort"
	"strings"
	"time"

	"covidstat.mindtree.org/internal/models"
)

// FilterByRegion keeps the records whose trimmed region code equals code,
// ignoring case. Input order is preserved.
func FilterByRegion(code string, records []models.Record) []models.Record {
	code = strings.TrimSpace(code)
	filtered := make([]models.Record, 0)
	for _, record := range records {
		if strings.EqualFold(strings.TrimSpace(record.Region), code) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// FilterByDateRange keeps the records dated strictly after start and
// strictly before end, sorted ascending by date. Boundary dates are excluded.
func FilterByDateRange(start, end time.Time, records []models.Record) []models.Record {
	filtered := withinOpenRange(start, end, records)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})
	return filtered
}

func withinOpenRange(start, end time.Time, records []models.Record) []models.Record {
	start, end = models.CalendarDate(start), models.CalendarDate(end)
	filtered := make([]models.Record, 0)
	for _, record := range records {
		date := models.CalendarDate(record.Date)
		if date.After(start) && date.Before(end) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Regions lists the distinct region codes present, sorted.
func Regions(records []models.Record) []string {
	return distinctSorted(records, func(r models.Record) string { return strings.TrimSpace(r.Region) })
}

// SubRegions lists the distinct sub-region names present, sorted.
func SubRegions(records []models.Record) []string {
	return distinctSorted(records, func(r models.Record) string { return strings.TrimSpace(r.SubRegion) })
}

func distinctSorted(records []models.Record, value func(models.Record) string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, record := range records {
		v := value(record)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
