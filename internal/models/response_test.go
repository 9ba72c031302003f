package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	before := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(http.StatusNotFound, nil, "no data present")
	after := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Equal(t, "no data present", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.GreaterOrEqual(t, response.CurrentTime, before)
	assert.LessOrEqual(t, response.CurrentTime, after)
}

func TestNewListResponse(t *testing.T) {
	regions := []string{"KA", "MH"}

	response := NewListResponse(regions)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "Response data should be a map")
	assert.Equal(t, regions, data["list"])
	assert.False(t, data["limitExceeded"].(bool))
}

func TestNewEntryResponse(t *testing.T) {
	row := ComparisonRow{Date: "2020-02-01", FirstRegion: "MH", FirstConfirmed: 3, SecondRegion: "KA", SecondConfirmed: 4}

	response := NewEntryResponse(row)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, row, data["entry"])
}

func TestResponseModelJSON(t *testing.T) {
	response := NewOKResponse([]DateAggregateRow{{Date: "2020-01-01", Region: "MH", Confirmed: 12}})

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(200), decoded["code"])
	assert.Equal(t, "OK", decoded["text"])

	rows, ok := decoded["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "2020-01-01", row["date"])
	assert.Equal(t, "MH", row["region"])
	assert.Equal(t, float64(12), row["confirmed"])
}
