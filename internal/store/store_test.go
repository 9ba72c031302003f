package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covidstat.mindtree.org/internal/models"
)

func TestMemoryStoreReturnsCopy(t *testing.T) {
	store := NewMemoryStore(
		models.Record{Region: "KA", Confirmed: "1"},
		models.Record{Region: "MH", Confirmed: "2"},
	)

	first, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	first[0].Region = "XX"

	second, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "KA", second[0].Region)
	assert.Equal(t, 2, store.Loads())
}

func TestMemoryStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStore().LoadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFailingStore(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewFailingStore(boom).LoadAll(context.Background())
	assert.ErrorIs(t, err, boom)
}
