package models

import "strings"

// DateAggregateRow is the summed confirmed count for one region on one date.
type DateAggregateRow struct {
	Date      string `json:"date"`
	Region    string `json:"region"`
	Confirmed int    `json:"confirmed"`
}

// DateAggregate maps date keys to per-region totals. Dates iterate in the
// order they were first seen; regions within a date likewise.
type DateAggregate struct {
	dates  []string
	byDate map[string][]DateAggregateRow
}

func NewDateAggregate() *DateAggregate {
	return &DateAggregate{byDate: make(map[string][]DateAggregateRow)}
}

// Add sums confirmed into the row for (date, region), creating it when
// absent. Region codes match case-insensitively.
func (a *DateAggregate) Add(date, region string, confirmed int) {
	rows, ok := a.byDate[date]
	if !ok {
		a.dates = append(a.dates, date)
	}
	for i := range rows {
		if strings.EqualFold(rows[i].Region, region) {
			rows[i].Confirmed += confirmed
			return
		}
	}
	a.byDate[date] = append(rows, DateAggregateRow{Date: date, Region: region, Confirmed: confirmed})
}

// Dates returns the date keys in insertion order.
func (a *DateAggregate) Dates() []string {
	return append([]string(nil), a.dates...)
}

// ForDate returns the region rows recorded for date.
func (a *DateAggregate) ForDate(date string) []DateAggregateRow {
	return append([]DateAggregateRow(nil), a.byDate[date]...)
}

// Rows flattens the aggregate, dates in insertion order.
func (a *DateAggregate) Rows() []DateAggregateRow {
	rows := make([]DateAggregateRow, 0, len(a.dates))
	for _, date := range a.dates {
		rows = append(rows, a.byDate[date]...)
	}
	return rows
}

// Len is the number of distinct dates.
func (a *DateAggregate) Len() int {
	if a == nil {
		return 0
	}
	return len(a.dates)
}

// ComparisonRow puts two regions' confirmed totals for one date side by side.
type ComparisonRow struct {
	Date            string `json:"date"`
	FirstRegion     string `json:"firstRegion"`
	FirstConfirmed  int    `json:"firstConfirmed"`
	SecondRegion    string `json:"secondRegion"`
	SecondConfirmed int    `json:"secondConfirmed"`
}

// Comparison is an insertion-ordered map from date key to ComparisonRow.
type Comparison struct {
	keys []string
	rows map[string]*ComparisonRow
}

func NewComparison() *Comparison {
	return &Comparison{rows: make(map[string]*ComparisonRow)}
}

// Get returns the row for date, or nil.
func (c *Comparison) Get(date string) *ComparisonRow {
	return c.rows[date]
}

// Put inserts row under row.Date. Existing keys keep their position.
func (c *Comparison) Put(row *ComparisonRow) {
	if _, ok := c.rows[row.Date]; !ok {
		c.keys = append(c.keys, row.Date)
	}
	c.rows[row.Date] = row
}

// Keys returns the date keys in insertion order.
func (c *Comparison) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Rows returns copies of the rows in insertion order.
func (c *Comparison) Rows() []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(c.keys))
	for _, key := range c.keys {
		rows = append(rows, *c.rows[key])
	}
	return rows
}

func (c *Comparison) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// SubRegionListing is the sub-region names recorded for one region.
type SubRegionListing struct {
	Region     string   `json:"region"`
	SubRegions []string `json:"subRegions"`
}
