package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	enverrors "github.com/systmms/envkit/internal/errors"
)

//go:embed spec.schema.json
var specSchema string

// validateDocument checks the parsed document against the spec schema before
// typed decoding, so that entries missing required sub-fields surface as
// deserialization failures rather than zero-valued structs.
func validateDocument(path string, doc map[string]any) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return enverrors.DeserializationError{
			Path:    path,
			Message: "document cannot be normalized for structural validation",
			Err:     err,
		}
	}

	schemaLoader := gojsonschema.NewStringLoader(specSchema)
	documentLoader := gojsonschema.NewBytesLoader(jsonData)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return enverrors.DeserializationError{
			Path:    path,
			Message: "schema validation error",
			Err:     err,
		}
	}

	if !result.Valid() {
		var violations []string
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return enverrors.DeserializationError{
			Path:    path,
			Message: fmt.Sprintf("document structure invalid: %s", strings.Join(violations, "; ")),
		}
	}

	return nil
}
