// Package schemas provides JSON Schema validation for the resume wire shape.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_wire.schema.json
var resumeWireSchema []byte

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("wire document validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or compiling the schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load wire schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load wire schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateWire validates a value marshaling to the wire shape against the
// embedded JSON Schema. Returns *ValidationError on schema violations.
func ValidateWire(wire any) error {
	payload, err := json.Marshal(wire)
	if err != nil {
		return &SchemaLoadError{Message: "failed to marshal document", Cause: err}
	}
	return ValidateWireJSON(payload)
}

// ValidateWireJSON validates raw wire JSON against the embedded schema.
func ValidateWireJSON(payload []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeWireSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation could not run", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return ve
}
