package listings

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ValidationError is returned by cast and load operations when a value fails
// schema validation. It carries only the schema name; field-level detail is
// logged at cast time and available through the Validate operations.
type ValidationError struct {
	Schema string
}

func (e *ValidationError) Error() string {
	return "Invalid " + e.Schema
}

// cast validates value against T's schema and, on success, reinterprets it
// as T through a JSON round-trip. The round-trip cannot fail after a passing
// validation for the bundled schemas; it is a trust assertion, not a
// conversion.
func cast[T Record](s *Service, value map[string]any) (T, error) {
	var rec T
	schemaName := rec.Schema()

	result := s.Validate(value, schemaName)
	if !result.Valid {
		s.logger.Printf("warning: %s validation failed: %v", schemaName, result.Errors)
		return rec, &ValidationError{Schema: schemaName}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return rec, fmt.Errorf("encode %s value: %w", schemaName, err)
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decode %s value: %w", schemaName, err)
	}
	return rec, nil
}

// CastProject returns value as a Project, or a *ValidationError if the
// project schema does not pass.
func (s *Service) CastProject(value map[string]any) (Project, error) {
	return cast[Project](s, value)
}

// CastCollection returns value as a Collection, or a *ValidationError if the
// collection schema does not pass.
func (s *Service) CastCollection(value map[string]any) (Collection, error) {
	return cast[Collection](s, value)
}
