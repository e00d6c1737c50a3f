// Package schemas validates oracle response JSON against the expected
// analysis schema. A failed validation is never fatal: it routes the
// response through the permissive normalization path instead of the strict
// one, while keeping the contract between prompt and parser auditable.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed analysis_response.schema.json
var analysisResponseSchema string

var (
	compiledSchema *gojsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// ValidationError reports why a response failed schema validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("response schema validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAnalysisResponse checks jsonText against the embedded analysis
// response schema. Returns nil when the document conforms, *ValidationError
// when it does not, and a plain error when the document is not JSON at all.
func ValidateAnalysisResponse(jsonText string) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(analysisResponseSchema))
	})
	if compileErr != nil {
		return fmt.Errorf("failed to compile analysis response schema: %w", compileErr)
	}

	result, err := compiledSchema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return fmt.Errorf("failed to validate response: %w", err)
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
