package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/logger"
)

// FileStore keeps the whole collection as one human-readable JSON array on
// disk, rewritten wholesale on every mutation. Writes are not atomic and
// there is no file locking: concurrent writers race and the last one wins.
// A read or parse failure degrades to an empty collection (logged, never
// surfaced to the caller) — the historical contract of this store.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) EnsureReady(ctx context.Context) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat data file: %w", err)
	}
	if err := os.WriteFile(f.path, []byte("[]\n"), 0o644); err != nil {
		return fmt.Errorf("init data file: %w", err)
	}
	return nil
}

func (f *FileStore) ReadAll(ctx context.Context) ([]booking.Booking, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		logger.Warnf("bookings file unreadable, treating as empty: %v", err)
		return []booking.Booking{}, nil
	}
	var records []booking.Booking
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warnf("bookings file unparseable, treating as empty: %v", err)
		return []booking.Booking{}, nil
	}
	if records == nil {
		records = []booking.Booking{}
	}
	return records, nil
}

func (f *FileStore) WriteAll(ctx context.Context, records []booking.Booking) error {
	if records == nil {
		records = []booking.Booking{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := os.WriteFile(f.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write bookings file: %w", err)
	}
	return nil
}
