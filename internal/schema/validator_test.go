package schema

import (
	"strings"
	"testing"
)

const schemaPath = "../../data/schema/hotel_reservation_schema.json"

func validDoc() map[string]interface{} {
	return map[string]interface{}{
		"hotels": []interface{}{
			map[string]interface{}{
				"name":     "Hotel Lakeside",
				"location": "Gdansk",
				"stars":    4,
				"rooms": []interface{}{
					map[string]interface{}{"number": 101, "type": "Standard", "price": 250.0, "available": true},
				},
			},
		},
		"guests": []interface{}{
			map[string]interface{}{"first_name": "Anna", "last_name": "Nowak", "email": "anna@example.com"},
		},
		"reservations": []interface{}{
			map[string]interface{}{
				"guest_email": "anna@example.com",
				"room_number": 101,
				"hotel_name":  "Hotel Lakeside",
				"start_date":  "2025-07-01",
				"end_date":    "2025-07-05",
				"status":      "confirmed",
			},
		},
	}
}

func TestValidate(t *testing.T) {
	schemaJSON, err := LoadFile(schemaPath)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	if err := Validate(validDoc(), schemaJSON); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	schemaJSON, err := LoadFile(schemaPath)
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(doc map[string]interface{})
		wantErr string
	}{
		{
			name:    "missing reservations section",
			mutate:  func(doc map[string]interface{}) { delete(doc, "reservations") },
			wantErr: "reservations",
		},
		{
			name: "hotel without name",
			mutate: func(doc map[string]interface{}) {
				hotel := doc["hotels"].([]interface{})[0].(map[string]interface{})
				delete(hotel, "name")
			},
			wantErr: "name",
		},
		{
			name: "stars as string",
			mutate: func(doc map[string]interface{}) {
				hotel := doc["hotels"].([]interface{})[0].(map[string]interface{})
				hotel["stars"] = "four"
			},
			wantErr: "stars",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)
			err := Validate(doc, schemaJSON)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("does-not-exist.json"); err == nil {
		t.Error("expected error for missing schema file")
	}
}
