package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"covidstat.mindtree.org/internal/logging"
	"covidstat.mindtree.org/internal/models"
)

// LoadAll returns every record in insertion order.
func (c *Client) LoadAll(ctx context.Context) ([]models.Record, error) {
	start := time.Now()

	rows, err := c.DB.QueryContext(ctx,
		`SELECT id, state, district, confirmed, recovered, tested, report_date
		FROM covid_data
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying records: %w", err)
	}
	defer logging.SafeCloseWithLogging(rows, c.logger, "close_record_rows")

	var records []models.Record
	for rows.Next() {
		var (
			record                      models.Record
			district, recovered, tested sql.NullString
			reportDate                  string
		)
		if err := rows.Scan(&record.ID, &record.Region, &district, &record.Confirmed,
			&recovered, &tested, &reportDate); err != nil {
			return nil, fmt.Errorf("error scanning record: %w", err)
		}
		record.SubRegion = district.String
		record.Recovered = recovered.String
		record.Tested = tested.String

		record.Date, err = parseStoredDate(reportDate)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", record.ID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	logging.LogOperation(c.logger, "records_loaded",
		slog.String("component", "record_store"),
		slog.Int("count", len(records)),
		slog.Duration("duration", time.Since(start)))

	return records, nil
}

// parseStoredDate accepts a bare YYYY-MM-DD or any value that starts with one.
func parseStoredDate(value string) (time.Time, error) {
	if len(value) > len(models.DateLayout) {
		value = value[:len(models.DateLayout)]
	}
	date, err := models.ParseDateKey(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid report date %q: %w", value, err)
	}
	return date, nil
}

// InsertRecords writes records in a single transaction. IDs are assigned by
// the database; the ID field of the input is ignored.
func (c *Client) InsertRecords(ctx context.Context, records []models.Record) (err error) {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "insert_records")

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO covid_data (state, district, confirmed, recovered, tested, report_date)
		VALUES (%s)`, c.placeholders(6)))
	if err != nil {
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer logging.HandleDeferredError(&err, stmt.Close, c.logger, "close_insert_statement")

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.Region,
			nullIfEmpty(record.SubRegion),
			record.Confirmed,
			nullIfEmpty(record.Recovered),
			nullIfEmpty(record.Tested),
			record.DateKey(),
		); err != nil {
			return fmt.Errorf("error inserting record for %s on %s: %w", record.Region, record.DateKey(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// RecordCount returns the number of stored records.
func (c *Client) RecordCount(ctx context.Context) (int, error) {
	var count int
	if err := c.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM covid_data`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting records: %w", err)
	}
	return count, nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
