// Package schema compiles a JSON Schema per registered credential type
// and validates credentialSubject payloads against it before issuance.
package schema

import (
	"github.com/kaptinlin/jsonschema"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
)

// Registry holds one compiled schema per credential type name.
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// NewRegistry compiles the built-in credential type schemas. A
// compilation failure here is a programming error, not a runtime one,
// so it panics rather than threading an error through every caller of
// NewRegistry — the same posture the teacher codebase takes for its
// startup-time schema/context registration.
func NewRegistry() *Registry {
	compiler := jsonschema.NewCompiler()

	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(builtinSchemas))}
	for credType, raw := range builtinSchemas {
		compiled, err := compiler.Compile([]byte(raw))
		if err != nil {
			panic("schema: failed to compile built-in schema for " + credType + ": " + err.Error())
		}
		r.schemas[credType] = compiled
	}
	return r
}

// Validate checks subject against the schema registered for credType.
// A credential type with no registered schema passes unconditionally —
// schema validation is opt-in per type, not a closed allowlist.
func (r *Registry) Validate(credType string, subject map[string]any) error {
	s, ok := r.schemas[credType]
	if !ok {
		return nil
	}

	result := s.Validate(subject)
	if !result.IsValid() {
		return helpers.NewErrorDetails(helpers.KindSchemaValidation, result.Error())
	}
	return nil
}

// Has reports whether credType has a registered schema.
func (r *Registry) Has(credType string) bool {
	_, ok := r.schemas[credType]
	return ok
}
