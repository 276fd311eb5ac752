package export

import (
	"strings"
	"testing"
)

func TestHTML_BooleansAndHeadings(t *testing.T) {
	out, err := HTML(exportDoc())
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	got := string(out)

	for _, want := range []string{"<h2>Hotels</h2>", "<h2>Guests</h2>", "<h2>Reservations</h2>", "<td>Standard</td>", "<td>Yes</td>", "anna@example.com"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestHTML_RendersNo(t *testing.T) {
	doc := map[string]interface{}{
		"hotels": []interface{}{
			map[string]interface{}{
				"name":     "Hotel Lakeside",
				"location": "Gdansk",
				"stars":    4,
				"rooms": []interface{}{
					map[string]interface{}{"number": 102, "type": "Deluxe", "price": 420.0, "available": false},
				},
			},
		},
	}

	out, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	if !strings.Contains(string(out), "<td>No</td>") {
		t.Errorf("available=false not rendered as No:\n%s", out)
	}
}

func TestHTML_EscapesValues(t *testing.T) {
	doc := map[string]interface{}{
		"guests": []interface{}{
			map[string]interface{}{"first_name": "<script>alert(1)</script>", "email": "x@example.com"},
		},
	}

	out, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	got := string(out)
	if strings.Contains(got, "<script>") {
		t.Error("value interpolated without escaping")
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Error("escaped value not found in output")
	}
}

func TestHTML_SkipsAbsentSections(t *testing.T) {
	doc := map[string]interface{}{
		"guests": []interface{}{
			map[string]interface{}{"first_name": "Anna", "email": "anna@example.com"},
		},
	}

	out, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	got := string(out)
	if strings.Contains(got, "<h2>Hotels</h2>") || strings.Contains(got, "<h2>Reservations</h2>") {
		t.Errorf("absent sections rendered:\n%s", got)
	}
}
