package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/pkg/utils"
)

// AvailableRoom is one vacant room listed by the availability report.
type AvailableRoom struct {
	Hotel    string
	Location string
	Number   string
	Type     string
	Price    string
}

// AvailableRooms lists every room flagged available, in hotel document
// order.
func (s *Store) AvailableRooms(ctx context.Context) ([]AvailableRoom, error) {
	cursor, err := s.db.Collection(document.SectionHotels).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer cursor.Close(ctx)

	var out []AvailableRoom
	for cursor.Next(ctx) {
		var decoded map[string]interface{}
		if err := cursor.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("decode hotel: %w", err)
		}
		hotel := fromBSON(decoded).(map[string]interface{})
		rooms, _ := hotel["rooms"].([]interface{})
		for _, r := range rooms {
			room, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			if avail, _ := room["available"].(bool); !avail {
				continue
			}
			out = append(out, AvailableRoom{
				Hotel:    utils.Stringify(hotel["name"]),
				Location: utils.Stringify(hotel["location"]),
				Number:   utils.Stringify(room["number"]),
				Type:     utils.Stringify(room["type"]),
				Price:    utils.Stringify(room["price"]),
			})
		}
	}
	return out, cursor.Err()
}

// HotelAverage is the mean room price of one hotel.
type HotelAverage struct {
	Name         string  `bson:"_id"`
	AveragePrice float64 `bson:"average_price"`
}

// AverageRoomPrice computes the mean room price per hotel, sorted by
// hotel name.
func (s *Store) AverageRoomPrice(ctx context.Context) ([]HotelAverage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$rooms"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$name",
			"average_price": bson.M{"$avg": "$rooms.price"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := s.db.Collection(document.SectionHotels).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate room prices: %w", err)
	}
	defer cursor.Close(ctx)

	var out []HotelAverage
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode room prices: %w", err)
	}
	return out, nil
}

// GuestReservations returns the stored reservations for one guest
// email.
func (s *Store) GuestReservations(ctx context.Context, email string) ([]map[string]interface{}, error) {
	cursor, err := s.db.Collection(document.SectionReservations).Find(ctx, bson.M{"guest_email": email})
	if err != nil {
		return nil, fmt.Errorf("find reservations for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var out []map[string]interface{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	for i := range out {
		out[i] = fromBSON(out[i]).(map[string]interface{})
	}
	return out, nil
}

// StatusCount is the number of reservations in one status.
type StatusCount struct {
	Status string `bson:"_id"`
	Count  int    `bson:"count"`
}

// ReservationStatusCounts groups reservations by status, sorted by
// status name.
func (s *Store) ReservationStatusCounts(ctx context.Context) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := s.db.Collection(document.SectionReservations).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate reservation statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var out []StatusCount
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode reservation statuses: %w", err)
	}
	return out, nil
}
