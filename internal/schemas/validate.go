// Package schemas provides JSON Schema validation for structured upstream payloads.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// detectionSchema describes the minimum acceptable shape of an AI-detection JSON
// payload: an object whose "result" member is itself an object. Everything else
// is optional so that partial generations still pass; enum rules are enforced by
// the parser afterwards, field by field.
const detectionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["result"],
  "properties": {
    "result": {
      "type": "object",
      "properties": {
        "verdict": {"type": "string"},
        "probability": {"type": "number"},
        "confidence": {"type": "string"},
        "explanation": {"type": "string"},
        "signals": {"type": "array", "items": {"type": "string"}}
      }
    },
    "textStats": {
      "type": "object",
      "properties": {
        "words": {"type": "integer"},
        "characters": {"type": "integer"},
        "sentences": {"type": "integer"}
      }
    },
    "linguisticAnalysis": {
      "type": "object",
      "properties": {
        "brazilianisms": {"type": "array", "items": {"type": "string"}},
        "grammarSummary": {"type": "string"}
      }
    }
  }
}`

var detectionLoader = gojsonschema.NewStringLoader(detectionSchema)

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
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading the schema or the document itself
// (for instance, input that is not JSON at all).
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema validation could not run: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema validation could not run: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateDetectionPayload checks data against the detection payload schema.
// A nil return means the payload has the expected shape.
func ValidateDetectionPayload(data []byte) error {
	result, err := gojsonschema.Validate(detectionLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{Message: "failed to load document", Cause: err}
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: desc.Field(), Message: desc.Description()})
	}
	return ve
}
