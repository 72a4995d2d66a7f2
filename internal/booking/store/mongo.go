package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking"
)

// MongoStore is the optional durable backend. It keeps the whole-collection
// semantics of the file store: WriteAll replaces every document, so
// concurrent writers still race with last-write-wins. Records pass through
// their JSON form so the flattened extra fields are stored exactly as they
// appear on the wire.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (m *MongoStore) EnsureReady(ctx context.Context) error {
	// collection is created lazily; a ping-equivalent count validates access
	if _, err := m.col.EstimatedDocumentCount(ctx); err != nil {
		return fmt.Errorf("bookings collection not reachable: %w", err)
	}
	return nil
}

func (m *MongoStore) ReadAll(ctx context.Context) ([]booking.Booking, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	defer cur.Close(ctx)

	records := []booking.Booking{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		delete(doc, "_id")
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode booking: %w", err)
		}
		var b booking.Booking
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		records = append(records, b)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	return records, nil
}

func (m *MongoStore) WriteAll(ctx context.Context, records []booking.Booking) error {
	if _, err := m.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(records))
	for _, b := range records {
		raw, err := b.MarshalJSON()
		if err != nil {
			return fmt.Errorf("encode booking %s: %w", b.ID, err)
		}
		var doc bson.M
		if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
			return fmt.Errorf("convert booking %s: %w", b.ID, err)
		}
		docs = append(docs, doc)
	}
	// ordered insert keeps the collection's insertion order stable
	if _, err := m.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	return nil
}
