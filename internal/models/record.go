package models

import "time"

// DateLayout is the textual date format used for report keys and operator input.
const DateLayout = "2006-01-02"

// InputDateLayout also accepts month and day without zero padding.
const InputDateLayout = "2006-1-2"

// Record is one daily observation for a region (state) and optional
// sub-region (district). Counts are kept as the text the store delivered.
type Record struct {
	ID        int64     `json:"id"`
	Region    string    `json:"region"`
	SubRegion string    `json:"subRegion,omitempty"`
	Confirmed string    `json:"confirmed"`
	Recovered string    `json:"recovered,omitempty"`
	Tested    string    `json:"tested,omitempty"`
	Date      time.Time `json:"date"`
}

// DateKey formats the record's observation date as a report key.
func (r Record) DateKey() string {
	return FormatDateKey(r.Date)
}

// FormatDateKey renders the calendar date of t in t's own zone.
func FormatDateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a zero-padded YYYY-MM-DD key into a UTC midnight time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateLayout, key)
}

// CalendarDate strips the clock from t and pins it to UTC so dates compare
// equal regardless of the zone the store handed back.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
