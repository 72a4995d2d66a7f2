package booking

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Lifecycle statuses. The update path performs no transition validation;
// these exist for stats bucketing and as documentation of the contract.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// KnownStatuses lists the recognized lifecycle tags in display order.
var KnownStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Booking is the single persisted entity. Known fields are typed; every
// other caller-supplied key from the submission form rides along in Extra
// and is flattened back into the top-level JSON object on the wire, so the
// stored record looks exactly like the submitted one plus the
// server-assigned fields.
type Booking struct {
	ID        string
	Status    string
	Notes     string
	Type      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Extra     map[string]any
}

// reserved keys handled by the typed fields above
var knownKeys = map[string]bool{
	"id": true, "status": true, "notes": true, "type": true,
	"location": true, "createdAt": true, "updatedAt": true,
}

// NewID returns a fresh opaque booking id: 16 random bytes, hex encoded.
func NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate booking id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Extra)+7)
	for k, v := range b.Extra {
		if !knownKeys[k] {
			out[k] = v
		}
	}
	out["id"] = b.ID
	out["status"] = b.Status
	if b.Notes != "" {
		out["notes"] = b.Notes
	}
	if b.Type != "" {
		out["type"] = b.Type
	}
	if b.Location != "" {
		out["location"] = b.Location
	}
	out["createdAt"] = b.CreatedAt.Format(time.RFC3339Nano)
	out["updatedAt"] = b.UpdatedAt.Format(time.RFC3339Nano)
	return json.Marshal(out)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	popString := func(key string) string {
		v, ok := raw[key]
		if !ok {
			return ""
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return ""
		}
		return s
	}
	popTime := func(key string) time.Time {
		v, ok := raw[key]
		if !ok {
			return time.Time{}
		}
		var ts time.Time
		if err := json.Unmarshal(v, &ts); err != nil {
			return time.Time{}
		}
		return ts
	}

	b.ID = popString("id")
	b.Status = popString("status")
	b.Notes = popString("notes")
	b.Type = popString("type")
	b.Location = popString("location")
	b.CreatedAt = popTime("createdAt")
	b.UpdatedAt = popTime("updatedAt")

	b.Extra = nil
	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return err
		}
		if b.Extra == nil {
			b.Extra = make(map[string]any)
		}
		b.Extra[k] = val
	}
	return nil
}

// Stats is the aggregate view served to the admin dashboard.
type Stats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByType     map[string]int `json:"byType"`
	ByLocation map[string]int `json:"byLocation"`
	Recent     []Booking      `json:"recent"`
}
