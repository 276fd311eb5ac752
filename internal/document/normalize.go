// Package document implements the transformation pipeline for hotel
// reservation documents: date normalization and flattening of the
// nested hotel/guest/reservation graph into tabular rows.
package document

import "time"

const dateLayout = "2006-01-02"

// NormalizeDates walks a parsed document and rewrites every date leaf
// into its ISO-8601 string form. Mappings and sequences are rebuilt
// with their contents recursively normalized; every other value passes
// through unchanged. The transform is idempotent because ISO strings
// are never re-interpreted as dates.
func NormalizeDates(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = NormalizeDates(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = NormalizeDates(item)
		}
		return out
	case time.Time:
		// Bare YAML dates carry no clock; timestamps keep theirs.
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(dateLayout)
		}
		return v.Format(time.RFC3339)
	default:
		return value
	}
}

// NormalizeDocument is NormalizeDates specialized to a root document.
func NormalizeDocument(doc map[string]interface{}) map[string]interface{} {
	return NormalizeDates(doc).(map[string]interface{})
}
