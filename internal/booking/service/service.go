package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking/store"
)

var ErrNotFound = errors.New("booking not found")

// recentLimit is how many of the newest bookings the stats view returns.
const recentLimit = 10

// Service defines the booking operations used by the handler layer. Every
// mutation is a whole-collection read-modify-write against the Store.
type Service interface {
	// Create assigns a fresh id, stamps status/timestamps, persists the
	// record and returns its id. Caller-supplied fields are kept as-is;
	// any caller-supplied id, status or timestamps are overwritten.
	Create(ctx context.Context, b *booking.Booking) (string, error)
	// ListAll returns the full collection in insertion order.
	ListAll(ctx context.Context) ([]booking.Booking, error)
	// UpdateStatusAndNotes overwrites status and notes on the record.
	// The status value is not validated: this is a free-form overwrite,
	// not a guarded state machine.
	UpdateStatusAndNotes(ctx context.Context, id, status, notes string) (*booking.Booking, error)
	// Delete removes the record, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
	// Stats recomputes the aggregate view with a full scan.
	Stats(ctx context.Context) (*booking.Stats, error)
}

func New(st store.Store) Service {
	return &bookingService{store: st}
}

type bookingService struct {
	// mu serializes read-modify-write cycles within this process; the
	// underlying store itself has no locking, so without it two handlers
	// reading the same snapshot would silently drop one mutation.
	mu    sync.Mutex
	store store.Store
}

func (s *bookingService) Create(ctx context.Context, b *booking.Booking) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := booking.NewID()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	b.ID = id
	b.Status = booking.StatusPending
	b.CreatedAt = now
	b.UpdatedAt = now

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return "", err
	}
	records = append(records, *b)
	if err := s.store.WriteAll(ctx, records); err != nil {
		return "", err
	}
	return id, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]booking.Booking, error) {
	return s.store.ReadAll(ctx)
}

func (s *bookingService) UpdateStatusAndNotes(ctx context.Context, id, status, notes string) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID != id {
			continue
		}
		records[i].Status = status
		records[i].Notes = notes
		records[i].UpdatedAt = time.Now().UTC()
		if err := s.store.WriteAll(ctx, records); err != nil {
			return nil, err
		}
		updated := records[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return err
	}
	kept := records[:0:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	return s.store.WriteAll(ctx, kept)
}

func (s *bookingService) Stats(ctx context.Context) (*booking.Stats, error) {
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	st := &booking.Stats{
		Total:      len(records),
		ByStatus:   make(map[string]int, len(booking.KnownStatuses)),
		ByType:     map[string]int{},
		ByLocation: map[string]int{},
	}
	for _, s := range booking.KnownStatuses {
		st.ByStatus[s] = 0
	}
	for _, r := range records {
		st.ByStatus[r.Status]++
		if r.Type != "" {
			st.ByType[r.Type]++
		}
		if r.Location != "" {
			st.ByLocation[r.Location]++
		}
	}

	// newest first: the collection is insertion-ordered, so walk backwards
	n := recentLimit
	if len(records) < n {
		n = len(records)
	}
	st.Recent = make([]booking.Booking, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		st.Recent = append(st.Recent, records[i])
	}
	return st, nil
}
