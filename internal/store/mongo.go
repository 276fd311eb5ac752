// Package store implements the MongoDB gateway for the three
// reservation record sets. Ingestion uses clear-and-replace semantics:
// each record set is fully deleted before the new records are
// inserted, with no transaction spanning the three sets.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/pkg/logger"
)

// Counts reports how many records of each kind an operation touched.
type Counts struct {
	Hotels       int `json:"hotels_count"`
	Guests       int `json:"guests_count"`
	Reservations int `json:"reservations_count"`
}

type Store struct {
	db *mongo.Database
}

func New(client *mongo.Client, dbName string) *Store {
	return &Store{db: client.Database(dbName)}
}

// Replace clears each record set and bulk-inserts the new records.
// Not transactional: a failure mid-way leaves earlier sets already
// replaced and the failed set empty.
func (s *Store) Replace(ctx context.Context, sections map[string][]interface{}) (Counts, error) {
	var counts Counts
	for _, name := range document.Sections {
		records := sections[name]
		coll := s.db.Collection(name)

		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return counts, fmt.Errorf("clear %s: %w", name, err)
		}
		if len(records) > 0 {
			if _, err := coll.InsertMany(ctx, records); err != nil {
				return counts, fmt.Errorf("insert %s: %w", name, err)
			}
		}

		switch name {
		case document.SectionHotels:
			counts.Hotels = len(records)
		case document.SectionGuests:
			counts.Guests = len(records)
		case document.SectionReservations:
			counts.Reservations = len(records)
		}
		logger.Infof("Replaced %s: %d records", name, len(records))
	}
	return counts, nil
}

// FetchAll returns every record set as a document keyed by section,
// with storage identifiers stripped.
func (s *Store) FetchAll(ctx context.Context) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(document.Sections))
	for _, name := range document.Sections {
		records, err := s.fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		out[name] = records
	}
	return out, nil
}

func (s *Store) fetch(ctx context.Context, name string) ([]interface{}, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := s.db.Collection(name).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", name, err)
	}
	defer cursor.Close(ctx)

	records := []interface{}{}
	for cursor.Next(ctx) {
		var doc map[string]interface{}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", name, err)
		}
		records = append(records, fromBSON(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return records, nil
}

// RecordCounts counts the stored records per record set.
func (s *Store) RecordCounts(ctx context.Context) (Counts, error) {
	var counts Counts
	for _, name := range document.Sections {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return counts, fmt.Errorf("count %s: %w", name, err)
		}
		switch name {
		case document.SectionHotels:
			counts.Hotels = int(n)
		case document.SectionGuests:
			counts.Guests = int(n)
		case document.SectionReservations:
			counts.Reservations = int(n)
		}
	}
	return counts, nil
}

// Ping verifies the underlying connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// Name returns the database name the store operates on.
func (s *Store) Name() string {
	return s.db.Name()
}
