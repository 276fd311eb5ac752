package document

import (
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestNormalizeDates_NestedDates(t *testing.T) {
	in := map[string]interface{}{
		"reservations": []interface{}{
			map[string]interface{}{
				"start_date": time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				"end_date":   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
				"status":     "confirmed",
				"nested": map[string]interface{}{
					"deep": []interface{}{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
				},
			},
		},
		"count": 3,
	}

	got := NormalizeDates(in).(map[string]interface{})

	res := got["reservations"].([]interface{})[0].(map[string]interface{})
	if res["start_date"] != "2025-07-01" {
		t.Errorf("start_date = %v, want 2025-07-01", res["start_date"])
	}
	if res["end_date"] != "2025-07-05" {
		t.Errorf("end_date = %v, want 2025-07-05", res["end_date"])
	}
	deep := res["nested"].(map[string]interface{})["deep"].([]interface{})
	if deep[0] != "2024-01-02" {
		t.Errorf("deep date = %v, want 2024-01-02", deep[0])
	}
	if got["count"] != 3 {
		t.Errorf("count = %v, want 3 unchanged", got["count"])
	}
}

func TestNormalizeDates_Idempotent(t *testing.T) {
	in := map[string]interface{}{
		"when": time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		"list": []interface{}{time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC), "text", 1.5, true, nil},
	}

	once := NormalizeDates(in)
	twice := NormalizeDates(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestNormalizeDates_TimestampKeepsClock(t *testing.T) {
	got := NormalizeDates(time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC))
	if got != "2025-07-01T14:30:00Z" {
		t.Errorf("timestamp = %v, want 2025-07-01T14:30:00Z", got)
	}
}

func TestNormalizeDates_Passthrough(t *testing.T) {
	for _, v := range []interface{}{"text", 42, 3.14, true, nil} {
		if got := NormalizeDates(v); !reflect.DeepEqual(got, v) {
			t.Errorf("NormalizeDates(%v) = %v, want unchanged", v, got)
		}
	}
}

func TestNormalizeDates_FromYAML(t *testing.T) {
	raw := []byte("reservations:\n  - start_date: 2025-07-01\n    status: confirmed\n")

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := NormalizeDocument(doc)
	res := got["reservations"].([]interface{})[0].(map[string]interface{})
	if res["start_date"] != "2025-07-01" {
		t.Errorf("start_date = %v (%T), want the ISO string", res["start_date"], res["start_date"])
	}
}
