package store

import (
	"context"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
)

// Store persists the full ordered booking collection. There is no partial
// access: every mutation in the service layer is a whole-collection
// read-modify-write, so the contract is deliberately just three calls.
type Store interface {
	// EnsureReady prepares the backing storage, initializing it to an
	// empty collection when absent. Called once at startup.
	EnsureReady(ctx context.Context) error
	// ReadAll returns the persisted collection in insertion order.
	ReadAll(ctx context.Context) ([]booking.Booking, error)
	// WriteAll overwrites the persisted collection wholesale.
	WriteAll(ctx context.Context, records []booking.Booking) error
}
