// Package codec parses raw description-file text into the generic value
// consumed by validation. Both formats produce the same logical model: a
// string-keyed map with json.Number for all numeric scalars.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// JSON decodes the strict data-interchange format.
type JSON struct{}

func (JSON) Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value map[string]any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid json: trailing content after document")
	}
	return value, nil
}

// YAML decodes the indented human-editable format. The parsed document is
// re-encoded as JSON so numbers, nested maps and sequences come out identical
// to what the JSON decoder produces.
type YAML struct{}

func (YAML) Decode(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return JSON{}.Decode(normalized)
}
