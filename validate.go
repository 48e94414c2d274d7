package listings

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationResult reports the outcome of validating a generic value.
// Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid bool

	// Errors is keyed by the name of a missing required property, or the
	// literal key "other" for every remaining violation kind. Entries
	// sharing a key overwrite each other, so the map is lossy by design;
	// it is kept for compatibility with existing consumers.
	Errors map[string]string

	// Causes lists every raw violation in validator order, location first.
	Causes []string
}

const errorKeyOther = "other"

var quotedNames = regexp.MustCompile(`'([^']+)'`)

// Validate checks value against the named schema. It never returns an error:
// an unregistered schema name yields {Valid:false, Errors:{"schema":"Schema
// not found"}}, and every data failure is encoded in the result.
func (s *Service) Validate(value map[string]any, schemaName string) ValidationResult {
	sch, ok := s.registry.Lookup(schemaName)
	if !ok {
		return ValidationResult{Errors: map[string]string{"schema": "Schema not found"}}
	}

	err := sch.Validate(value)
	if err == nil {
		return ValidationResult{Valid: true, Errors: map[string]string{}}
	}

	var ve *santhosh.ValidationError
	if !errors.As(err, &ve) {
		return ValidationResult{
			Errors: map[string]string{errorKeyOther: err.Error()},
			Causes: []string{err.Error()},
		}
	}

	result := ValidationResult{Errors: make(map[string]string)}
	for _, leaf := range flattenCauses(ve) {
		if leaf.Message == "" {
			continue
		}
		result.Causes = append(result.Causes, causeText(leaf))
		if names := missingProperties(leaf); len(names) > 0 {
			for _, name := range names {
				result.Errors[name] = fmt.Sprintf("missing required property '%s'", name)
			}
			continue
		}
		result.Errors[errorKeyOther] = leaf.Message
	}
	if len(result.Errors) == 0 {
		// Every leaf carried an empty message; keep the invariant that an
		// invalid result has at least one entry.
		result.Errors[errorKeyOther] = ve.Error()
		result.Causes = append(result.Causes, ve.Error())
	}
	return result
}

// ValidateProject checks value against the project schema.
func (s *Service) ValidateProject(value map[string]any) ValidationResult {
	return s.Validate(value, SchemaProject)
}

// ValidateCollection checks value against the collection schema.
func (s *Service) ValidateCollection(value map[string]any) ValidationResult {
	return s.Validate(value, SchemaCollection)
}

// flattenCauses returns the leaf errors of ve in validator order.
func flattenCauses(ve *santhosh.ValidationError) []*santhosh.ValidationError {
	if len(ve.Causes) == 0 {
		return []*santhosh.ValidationError{ve}
	}
	var leaves []*santhosh.ValidationError
	for _, cause := range ve.Causes {
		leaves = append(leaves, flattenCauses(cause)...)
	}
	return leaves
}

// missingProperties extracts the property names reported by a "required"
// violation. Other violation kinds return nil.
func missingProperties(leaf *santhosh.ValidationError) []string {
	if !strings.HasSuffix(leaf.KeywordLocation, "/required") {
		return nil
	}
	var names []string
	for _, m := range quotedNames.FindAllStringSubmatch(leaf.Message, -1) {
		names = append(names, m[1])
	}
	return names
}

func causeText(leaf *santhosh.ValidationError) string {
	loc := leaf.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + leaf.Message
}
