// Package schema validates reservation documents against the JSON
// Schema describing the required document shape. It is used only by
// the offline tooling; the HTTP ingestion path performs a shallow
// top-level check instead.
package schema

import (
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// LoadFile reads a JSON Schema definition from disk.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}
	return data, nil
}

// Validate checks a parsed document against the given JSON Schema and
// returns an error describing the first violation found. The document
// must already be normalized: date values are expected as ISO strings.
func Validate(doc interface{}, schemaJSON []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("schema validation: %s: %s", first.Field(), first.Description())
	}
	return nil
}
