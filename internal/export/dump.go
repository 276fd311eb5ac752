package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// JSON marshals a document with two-space indentation, matching the
// layout of the offline conversion output.
func JSON(doc map[string]interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(out, '\n'), nil
}

// YAML marshals a document back into YAML.
func YAML(doc map[string]interface{}) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return out, nil
}
