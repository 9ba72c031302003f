package store

import (
	"context"

	"covidstat.mindtree.org/internal/models"
)

// Store supplies the full record collection. It does no filtering.
type Store interface {
	LoadAll(ctx context.Context) ([]models.Record, error)
}

// MemoryStore is a Store over a fixed slice, for tests and demos.
type MemoryStore struct {
	records []models.Record
	err     error
	loads   int
}

func NewMemoryStore(records ...models.Record) *MemoryStore {
	return &MemoryStore{records: records}
}

// NewFailingStore returns a MemoryStore whose LoadAll always fails with err.
func NewFailingStore(err error) *MemoryStore {
	return &MemoryStore{err: err}
}

// LoadAll returns a copy so callers cannot reach the backing slice.
func (m *MemoryStore) LoadAll(ctx context.Context) ([]models.Record, error) {
	m.loads++
	if m.err != nil {
		return nil, m.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Record(nil), m.records...), nil
}

// Loads reports how many times LoadAll was called.
func (m *MemoryStore) Loads() int {
	return m.loads
}
