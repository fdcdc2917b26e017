// Package schemas embeds the shape contract for extracted analysis records
// and validates incoming JSON against it with JSON Schema.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed analysis_record.schema.json
var analysisRecordSchema []byte

// ValidationError represents a schema validation error with field paths.
// It marks a contract violation: the extraction step returned something
// that is not an analysis record, not merely a sparse one.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("analysis record validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load analysis record schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load analysis record schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateAnalysisRecord validates raw JSON against the embedded analysis
// record schema. The schema checks structure and field types only; missing
// fields are always valid, and value ranges are handled by normalization.
func ValidateAnalysisRecord(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(analysisRecordSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// gojsonschema reports unparseable documents and schema problems
		// through the same error; an embedded schema only fails to load if
		// the binary itself is broken.
		if !isValidJSON(data) {
			return &ValidationError{Errors: []FieldError{
				{Field: "(document)", Message: err.Error()},
			}}
		}
		return &SchemaLoadError{Message: "schema compilation failed", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

func isValidJSON(data []byte) bool {
	loader := gojsonschema.NewBytesLoader(data)
	_, err := loader.LoadJSON()
	return err == nil
}
