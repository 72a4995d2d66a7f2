package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking/store"
)

func newTestService() Service {
	return New(store.NewMemoryStore())
}

func TestCreateStampsRecord(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	b := &booking.Booking{
		Type:     "deep-clean",
		Location: "Manchester",
		Extra:    map[string]any{"customerName": "A. Patel"},
		// hostile caller values that must be overwritten
		ID:     "spoofed",
		Status: "completed",
	}
	id, err := svc.Create(ctx, b)
	require.NoError(t, err)
	require.Len(t, id, 32)

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	require.Equal(t, id, got.ID)
	require.Equal(t, booking.StatusPending, got.Status)
	require.True(t, got.CreatedAt.Equal(got.UpdatedAt))
	require.Equal(t, "A. Patel", got.Extra["customerName"])
}

func TestCreateIDsAreUnique(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id, err := svc.Create(ctx, &booking.Booking{})
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 50)
}

func TestUpdateStatusAndNotes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.Create(ctx, &booking.Booking{Type: "regular", Extra: map[string]any{"phone": "0161 000 000"}})
	require.NoError(t, err)

	before, err := svc.ListAll(ctx)
	require.NoError(t, err)
	prevUpdated := before[0].UpdatedAt

	time.Sleep(5 * time.Millisecond)
	got, err := svc.UpdateStatusAndNotes(ctx, id, booking.StatusConfirmed, "call ahead")
	require.NoError(t, err)
	require.Equal(t, booking.StatusConfirmed, got.Status)
	require.Equal(t, "call ahead", got.Notes)
	require.True(t, got.UpdatedAt.After(prevUpdated))

	// every other field is untouched
	require.Equal(t, "regular", got.Type)
	require.Equal(t, "0161 000 000", got.Extra["phone"])
	require.True(t, got.CreatedAt.Equal(before[0].CreatedAt))
}

func TestUpdateUnknownIDSignalsNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &booking.Booking{})
	require.NoError(t, err)

	_, err = svc.UpdateStatusAndNotes(ctx, "nope", booking.StatusConfirmed, "")
	require.ErrorIs(t, err, ErrNotFound)

	// the failed update must not have written anything
	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, booking.StatusPending, list[0].Status)
}

func TestUpdateAcceptsUnrecognizedStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.Create(ctx, &booking.Booking{})
	require.NoError(t, err)

	// free-form overwrite: no transition or value validation
	got, err := svc.UpdateStatusAndNotes(ctx, id, "on-hold", "")
	require.NoError(t, err)
	require.Equal(t, "on-hold", got.Status)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id1, err := svc.Create(ctx, &booking.Booking{})
	require.NoError(t, err)
	id2, err := svc.Create(ctx, &booking.Booking{})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, id1))
	list, err = svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, id2, list[0].ID)
}

func TestStats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		loc := "Manchester"
		if i%3 == 0 {
			loc = "Stockport"
		}
		id, err := svc.Create(ctx, &booking.Booking{Type: "deep-clean", Location: loc})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := svc.UpdateStatusAndNotes(ctx, ids[0], booking.StatusConfirmed, "")
	require.NoError(t, err)
	_, err = svc.UpdateStatusAndNotes(ctx, ids[1], booking.StatusCancelled, "")
	require.NoError(t, err)

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, st.Total)
	require.Equal(t, 10, st.ByStatus[booking.StatusPending])
	require.Equal(t, 1, st.ByStatus[booking.StatusConfirmed])
	require.Equal(t, 1, st.ByStatus[booking.StatusCancelled])
	require.Equal(t, 0, st.ByStatus[booking.StatusCompleted])
	require.Equal(t, 12, st.ByType["deep-clean"])
	require.Equal(t, 4, st.ByLocation["Stockport"])

	// ten newest, reverse creation order
	require.Len(t, st.Recent, 10)
	require.Equal(t, ids[11], st.Recent[0].ID)
	require.Equal(t, ids[2], st.Recent[9].ID)
}

func TestStatsEmptyCollection(t *testing.T) {
	svc := newTestService()

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, st.Total)
	require.Empty(t, st.Recent)
	require.Equal(t, 0, st.ByStatus[booking.StatusPending])
}
