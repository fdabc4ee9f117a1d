// Package schemas validates the registry's wire messages against their JSON
// Schemas and parses them into contract types. Gateways, the CLI and the SDK
// all funnel raw payloads through here before touching the contract.
package schemas

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed msg-schema.json
var executeSchemaBytes []byte

//go:embed query-schema.json
var querySchemaBytes []byte

var (
	executeValidator *gojsonschema.Schema
	queryValidator   *gojsonschema.Schema
)

func init() {
	executeValidator = mustLoadSchema(executeSchemaBytes)
	queryValidator = mustLoadSchema(querySchemaBytes)
}

func mustLoadSchema(raw []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to load schema: %v", err))
	}
	return schema
}

// ValidateExecute checks raw execute-message JSON against the schema.
func ValidateExecute(data []byte) error {
	return validate(executeValidator, data)
}

// ValidateQuery checks raw query-message JSON against the schema.
func ValidateQuery(data []byte) error {
	return validate(queryValidator, data)
}

func validate(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var errorMsg string
		for _, desc := range result.Errors() {
			if errorMsg != "" {
				errorMsg += "; "
			}
			errorMsg += desc.String()
		}
		return fmt.Errorf("schema validation failed: %s", errorMsg)
	}
	return nil
}

// ValidationError reports a named field failing a semantic check.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
