package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"covidstat.mindtree.org/internal/logging"
	"covidstat.mindtree.org/internal/models"
)

var (
	countPattern = regexp.MustCompile(`^[0-9]+$`)

	requiredColumns = []string{"state", "date", "confirmed"}

	// optional count columns; blank is allowed
	countColumns = []string{"recovered", "tested"}
)

// ImportError reports a CSV row that was rejected.
type ImportError struct {
	Line   int
	Column string
	Value  string
	Reason string
}

func (e *ImportError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: column %s: %s (%q)", e.Line, e.Column, e.Reason, e.Value)
}

// ImportCSV reads state,district,date,confirmed,recovered,tested rows (any
// column order, named by the header) and inserts them in one transaction.
// Nothing is inserted when any row is rejected.
func (c *Client) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	start := time.Now()

	records, err := parseRecordsCSV(r)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	if err := c.InsertRecords(ctx, records); err != nil {
		return 0, err
	}

	logging.LogOperation(c.logger, "csv_imported",
		slog.String("component", "record_store"),
		slog.Int("rows", len(records)),
		slog.Duration("duration", time.Since(start)))

	return len(records), nil
}

// ImportFromFile imports one CSV file by path.
func (c *Client) ImportFromFile(ctx context.Context, path string) (n int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, file.Close, c.logger, "close_csv_file")

	n, err = c.ImportCSV(ctx, file)
	if err != nil {
		return 0, fmt.Errorf("error importing %s: %w", path, err)
	}
	return n, nil
}

func parseRecordsCSV(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ImportError{Line: 1, Reason: "missing header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}

		record, err := recordFromRow(line, row, columns)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, &ImportError{Line: 1, Column: name, Reason: "required column missing from header"}
		}
	}
	return columns, nil
}

func recordFromRow(line int, row []string, columns map[string]int) (models.Record, error) {
	value := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := models.Record{
		Region:    value("state"),
		SubRegion: value("district"),
		Confirmed: value("confirmed"),
		Recovered: value("recovered"),
		Tested:    value("tested"),
	}

	if record.Region == "" {
		return models.Record{}, &ImportError{Line: line, Column: "state", Reason: "value is required"}
	}

	rawDate := value("date")
	date, err := time.Parse(models.InputDateLayout, rawDate)
	if err != nil {
		return models.Record{}, &ImportError{Line: line, Column: "date", Value: rawDate, Reason: "not a YYYY-MM-DD date"}
	}
	record.Date = models.CalendarDate(date)

	if reason := checkCount(record.Confirmed); reason != "" {
		return models.Record{}, &ImportError{Line: line, Column: "confirmed", Value: record.Confirmed, Reason: reason}
	}
	for _, name := range countColumns {
		if v := value(name); v != "" {
			if reason := checkCount(v); reason != "" {
				return models.Record{}, &ImportError{Line: line, Column: name, Value: v, Reason: reason}
			}
		}
	}

	return record, nil
}

// checkCount returns why v is not a usable count, or "" when it is.
func checkCount(v string) string {
	if !countPattern.MatchString(v) {
		return "not a non-negative integer"
	}
	if _, err := strconv.Atoi(v); err != nil {
		return "count out of range"
	}
	return ""
}
