package store

import (
	"context"
	"sync"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
)

// MemoryStore holds the collection in process memory. Used by unit tests
// and as a last-resort fallback when no durable backend is available.
type MemoryStore struct {
	mu      sync.RWMutex
	records []booking.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: []booking.Booking{}}
}

func (m *MemoryStore) EnsureReady(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) ReadAll(ctx context.Context) ([]booking.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]booking.Booking, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStore) WriteAll(ctx context.Context, records []booking.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make([]booking.Booking, len(records))
	copy(m.records, records)
	return nil
}
