package schema

// builtinSchemas maps a credential type name to its JSON Schema
// (draft 2020-12, as kaptinlin/jsonschema expects) for
// credentialSubject validation.
var builtinSchemas = map[string]string{
	"UniversityDegreeCredential": universityDegreeSchema,
	"SDJWTCredential":            sdJWTCredentialSchema,
	"EmploymentCredential":       employmentCredentialSchema,
}

const universityDegreeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "degree"],
  "properties": {
    "id": {"type": "string"},
    "degree": {
      "type": "object",
      "required": ["type", "name"],
      "properties": {
        "type": {"type": "string"},
        "name": {"type": "string"}
      }
    }
  }
}`

const sdJWTCredentialSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id"],
  "properties": {
    "id": {"type": "string"}
  }
}`

const employmentCredentialSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "employmentStatus", "employerName"],
  "properties": {
    "id": {"type": "string"},
    "employmentStatus": {"type": "string"},
    "employerName": {"type": "string"}
  }
}`
