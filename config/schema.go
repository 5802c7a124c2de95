package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects the JSON Schema for the defaults file from the
// File struct. Additional properties are disallowed everywhere so unknown
// keys fail validation rather than being ignored.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		// Expand the root struct instead of hiding it behind a $ref.
		ExpandedStruct: true,
		// Property names follow the YAML field names.
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&File{})
	s.Title = "xpanes defaults"
	s.Description = "Schema for the xpanes.yml defaults file."
	s.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(s, "", "  ")
}
