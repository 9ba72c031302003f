package store

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covidstat.mindtree.org/internal/analysis"
	"covidstat.mindtree.org/internal/appconf"
	"covidstat.mindtree.org/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), Config{
		Driver: DriverSQLite,
		DSN:    ":memory:",
		Env:    appconf.Test,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err, "NewClient should succeed")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func day(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := models.ParseDateKey(key)
	require.NoError(t, err)
	return d
}

func TestNewClientRejectsFileDatabaseInTestEnv(t *testing.T) {
	_, err := NewClient(context.Background(), Config{
		Driver: DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "covid.db"),
		Env:    appconf.Test,
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test database must use in-memory storage")
}

func TestNewClientRejectsUnknownDriver(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Driver: "oracle", DSN: "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestSQLiteUsesSingleConnection(t *testing.T) {
	client := newTestClient(t)
	assert.Equal(t, 1, client.DB.Stats().MaxOpenConnections)
}

func TestPlaceholders(t *testing.T) {
	sqlite := &Client{config: Config{Driver: DriverSQLite}}
	postgres := &Client{config: Config{Driver: DriverPostgres}}

	assert.Equal(t, "?, ?, ?", sqlite.placeholders(3))
	assert.Equal(t, "$1, $2, $3", postgres.placeholders(3))
}

func TestMigrationIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	require.NoError(t, performDatabaseMigration(context.Background(), client.DB, sqliteDDL))
}

func TestInsertAndLoadAllPreservesOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	input := []models.Record{
		{Region: "KA", SubRegion: "Bengaluru", Confirmed: "10", Recovered: "2", Date: day(t, "2020-06-02")},
		{Region: "MH", Confirmed: "7", Date: day(t, "2020-06-01")},
		{Region: "KA", SubRegion: "Mysuru", Confirmed: "3", Tested: "40", Date: day(t, "2020-06-01")},
	}
	require.NoError(t, client.InsertRecords(ctx, input))

	loaded, err := client.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	for i, record := range loaded {
		assert.NotZero(t, record.ID)
		assert.Equal(t, input[i].Region, record.Region)
		assert.Equal(t, input[i].SubRegion, record.SubRegion)
		assert.Equal(t, input[i].Confirmed, record.Confirmed)
		assert.Equal(t, input[i].Recovered, record.Recovered)
		assert.Equal(t, input[i].Tested, record.Tested)
		assert.True(t, input[i].Date.Equal(record.Date), "date %d", i)
	}
	assert.Less(t, loaded[0].ID, loaded[1].ID)

	count, err := client.RecordCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestLoadAllEmpty(t *testing.T) {
	client := newTestClient(t)
	records, err := client.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseStoredDate(t *testing.T) {
	d, err := parseStoredDate("2020-06-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2020-06-01", models.FormatDateKey(d))

	_, err = parseStoredDate("June 1")
	assert.Error(t, err)
}

func TestImportFromFile(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "data.csv")
	content := "state,district,date,confirmed,recovered,tested\n" +
		"KA,Bengaluru,2020-6-1,10,1,100\n" +
		"MH,,2020-06-02,4,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	n, err := client.ImportFromFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := client.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2020-06-01", records[0].DateKey())
	assert.Equal(t, "", records[1].SubRegion)
}

func TestImportFromMissingFile(t *testing.T) {
	client := newTestClient(t)
	_, err := client.ImportFromFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestImportCSVAcceptsAnyColumnOrder(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	n, err := client.ImportCSV(ctx, strings.NewReader("Confirmed, Date, State\n5, 2020-01-03, kl\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	records, err := client.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kl", records[0].Region)
	assert.Equal(t, "5", records[0].Confirmed)
}

func TestImportCSVRejectsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column string
	}{
		{"empty input", "", 1, ""},
		{"missing confirmed column", "state,date\nKA,2020-01-01\n", 1, "confirmed"},
		{"blank state", "state,date,confirmed\n ,2020-01-01,1\n", 2, "state"},
		{"bad date", "state,date,confirmed\nKA,01/02/2020,1\n", 2, "date"},
		{"negative confirmed", "state,date,confirmed\nKA,2020-01-01,1\nKA,2020-01-02,-4\n", 3, "confirmed"},
		{"text tested", "state,date,confirmed,tested\nKA,2020-01-01,1,many\n", 2, "tested"},
		{"overflowing confirmed", "state,date,confirmed\nMH,2020-01-02,99999999999999999999\n", 2, "confirmed"},
		{"overflowing recovered", "state,date,confirmed,recovered\nMH,2020-01-02,1,99999999999999999999\n", 2, "recovered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t)
			ctx := context.Background()

			n, err := client.ImportCSV(ctx, strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Zero(t, n)

			var importErr *ImportError
			require.ErrorAs(t, err, &importErr)
			assert.Equal(t, tt.line, importErr.Line)
			assert.Equal(t, tt.column, importErr.Column)

			count, err := client.RecordCount(ctx)
			require.NoError(t, err)
			assert.Zero(t, count, "rejected import must not insert anything")
		})
	}
}

func TestImportedRecordsAggregate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.ImportCSV(ctx, strings.NewReader("state,date,confirmed\nMH,2020-01-02,99999999999999999999\n"))
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "count out of range", importErr.Reason)

	n, err := client.ImportCSV(ctx, strings.NewReader("state,date,confirmed\nMH,2020-01-02,9223372036854775807\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	records, err := client.LoadAll(ctx)
	require.NoError(t, err)
	assert.NotPanics(t, func() { analysis.AggregateByDate(records) })
}

func TestImportErrorMessage(t *testing.T) {
	err := &ImportError{Line: 4, Column: "date", Value: "x", Reason: "not a YYYY-MM-DD date"}
	assert.Equal(t, `line 4: column date: not a YYYY-MM-DD date ("x")`, err.Error())
	assert.Equal(t, "line 1: missing header row", (&ImportError{Line: 1, Reason: "missing header row"}).Error())
}
