package document

import (
	"errors"
	"fmt"
)

// Section names double as the required top-level document keys and the
// MongoDB collection names.
const (
	SectionHotels       = "hotels"
	SectionGuests       = "guests"
	SectionReservations = "reservations"
)

// Sections lists the top-level record sets in canonical order. Flat
// rows are emitted in this order: hotels first, then guests, then
// reservations.
var Sections = []string{SectionHotels, SectionGuests, SectionReservations}

// Columns is the CSV header: the union of every section's field set
// with the section tag first. Reservations share the hotel_name and
// room_number columns with hotel rows.
var Columns = []string{
	"section",
	"hotel_name", "hotel_location", "hotel_stars",
	"room_number", "room_type", "room_price", "room_available",
	"first_name", "last_name", "email", "phone",
	"guest_email", "start_date", "end_date", "status",
}

// SectionColumns holds the per-section field sets used by the HTML
// renderer, in display order.
var SectionColumns = map[string][]string{
	SectionHotels:       {"hotel_name", "hotel_location", "hotel_stars", "room_number", "room_type", "room_price", "room_available"},
	SectionGuests:       {"first_name", "last_name", "email", "phone"},
	SectionReservations: {"guest_email", "room_number", "hotel_name", "start_date", "end_date", "status"},
}

// Row is one flattened record. The "section" key tags which record set
// it came from; the remaining keys are that section's columns.
type Row map[string]interface{}

// ErrMissingField reports a field the flattener must index directly
// but which is absent from the record. The wrapping error carries the
// record path, e.g. "hotels[2].name".
var ErrMissingField = errors.New("missing required field")

// Flatten turns a document into one flat row sequence. Absent sections
// are skipped without error; rows keep document order within each
// section.
func Flatten(doc map[string]interface{}) ([]Row, error) {
	var rows []Row
	for _, section := range Sections {
		sectionRows, err := SectionRows(doc, section)
		if err != nil {
			return nil, err
		}
		rows = append(rows, sectionRows...)
	}
	return rows, nil
}

// SectionRows flattens a single section of the document. A missing
// section yields no rows and no error.
func SectionRows(doc map[string]interface{}, section string) ([]Row, error) {
	records, ok := doc[section].([]interface{})
	if !ok {
		return nil, nil
	}
	switch section {
	case SectionHotels:
		return hotelRows(records)
	case SectionGuests:
		return guestRows(records)
	case SectionReservations:
		return reservationRows(records)
	}
	return nil, fmt.Errorf("unknown section %q", section)
}

// hotelRows emits one row per room. A hotel without rooms contributes
// nothing; a hotel with rooms must carry name, location and stars, and
// each room must carry its full field set.
func hotelRows(hotels []interface{}) ([]Row, error) {
	var rows []Row
	for i, rec := range hotels {
		hotel, ok := rec.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("hotels[%d]: expected a mapping, got %T", i, rec)
		}
		rooms, _ := hotel["rooms"].([]interface{})
		if len(rooms) == 0 {
			continue
		}

		path := fmt.Sprintf("hotels[%d]", i)
		name, err := require(hotel, "name", path)
		if err != nil {
			return nil, err
		}
		location, err := require(hotel, "location", path)
		if err != nil {
			return nil, err
		}
		stars, err := require(hotel, "stars", path)
		if err != nil {
			return nil, err
		}

		for j, r := range rooms {
			room, ok := r.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s.rooms[%d]: expected a mapping, got %T", path, j, r)
			}
			roomPath := fmt.Sprintf("%s.rooms[%d]", path, j)
			row := Row{
				"section":        SectionHotels,
				"hotel_name":     name,
				"hotel_location": location,
				"hotel_stars":    stars,
			}
			for _, f := range [...]struct{ field, column string }{
				{"number", "room_number"},
				{"type", "room_type"},
				{"price", "room_price"},
				{"available", "room_available"},
			} {
				val, err := require(room, f.field, roomPath)
				if err != nil {
					return nil, err
				}
				row[f.column] = val
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func guestRows(guests []interface{}) ([]Row, error) {
	var rows []Row
	for i, rec := range guests {
		guest, ok := rec.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("guests[%d]: expected a mapping, got %T", i, rec)
		}
		rows = append(rows, Row{
			"section":    SectionGuests,
			"first_name": optional(guest, "first_name"),
			"last_name":  optional(guest, "last_name"),
			"email":      optional(guest, "email"),
			"phone":      optional(guest, "phone"),
		})
	}
	return rows, nil
}

func reservationRows(reservations []interface{}) ([]Row, error) {
	var rows []Row
	for i, rec := range reservations {
		res, ok := rec.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("reservations[%d]: expected a mapping, got %T", i, rec)
		}
		rows = append(rows, Row{
			"section":     SectionReservations,
			"guest_email": optional(res, "guest_email"),
			"room_number": optional(res, "room_number"),
			"hotel_name":  optional(res, "hotel_name"),
			"start_date":  optional(res, "start_date"),
			"end_date":    optional(res, "end_date"),
			"status":      optional(res, "status"),
		})
	}
	return rows, nil
}

func require(rec map[string]interface{}, field, path string) (interface{}, error) {
	val, ok := rec[field]
	if !ok || val == nil {
		return nil, fmt.Errorf("%s.%s: %w", path, field, ErrMissingField)
	}
	return val, nil
}

// optional defaults absent fields to the empty string so every row in
// a section carries the full column set.
func optional(rec map[string]interface{}, field string) interface{} {
	if val, ok := rec[field]; ok && val != nil {
		return val
	}
	return ""
}
