// Package helpers carries concerns shared by every role that are not
// part of the credential cryptographic core: typed error conversion
// and request struct validation.
package helpers

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"
)

// Error kinds named by the credential core's failure taxonomy.
const (
	KindInvalidType          = "invalid_type"
	KindSchemaValidation     = "schema_validation"
	KindInvalidIssuanceDate  = "invalid_issuance_date"
	KindSigning              = "signing_error"
	KindSerialization        = "serialization_error"
	KindCrypto               = "crypto_error"
	KindCredentialNotFound   = "credential_not_found"
	KindStorage              = "storage_error"
	KindMissingProof         = "missing_proof"
	KindUntrustedIssuer      = "untrusted_issuer"
	KindInvalidCredFormat    = "invalid_credential_format"
	KindInvalidBase64        = "invalid_base64"
	KindInvalidJSONPayload   = "invalid_json_payload"
	KindMissingSDAlg         = "missing_sd_alg"
	KindSignatureVerify      = "signature_verification"
	KindInternal             = "internal_error"
	KindValidation           = "validation_error"
)

// Error is the typed error carried between layers. Only the HTTP
// facade turns it into response bytes.
type Error struct {
	Title string `json:"title"`
	Err   any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Title, e.Err)
	}
	return e.Title
}

// NewError creates an Error with no detail payload.
func NewError(title string) *Error {
	return &Error{Title: title}
}

// NewErrorDetails creates an Error carrying a detail payload.
func NewErrorDetails(title string, detail any) *Error {
	return &Error{Title: title, Err: detail}
}

// ErrorResponse is the JSON body returned by the HTTP facade on failure.
type ErrorResponse struct {
	Error *Error `json:"error"`
}

// NewErrorFromError normalizes any error into the typed Error shape,
// unwrapping well-known third-party error types the way this service's
// collaborators raise them.
func NewErrorFromError(err error) *Error {
	if err == nil {
		return nil
	}

	if typed, ok := err.(*Error); ok {
		return typed
	}

	if jsonTypeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return &Error{Title: "json_type_error", Err: fmt.Sprintf("field %q: expected %s, got %s", jsonTypeErr.Field, jsonTypeErr.Type, jsonTypeErr.Value)}
	}
	if jsonSyntaxErr, ok := err.(*json.SyntaxError); ok {
		return &Error{Title: "json_syntax_error", Err: map[string]any{"offset": jsonSyntaxErr.Offset, "error": jsonSyntaxErr.Error()}}
	}
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		return &Error{Title: KindValidation, Err: formatValidationErrors(validationErrs)}
	}

	return NewErrorDetails(KindInternal, err.Error())
}

func formatValidationErrors(errs validator.ValidationErrors) []map[string]any {
	out := make([]map[string]any, 0, len(errs))
	for _, e := range errs {
		out = append(out, map[string]any{
			"field":      e.Field(),
			"validation": e.Tag(),
			"value":      e.Value(),
		})
	}
	return out
}

// NewValidator builds a struct validator keyed by JSON field names
// instead of Go field names, so error payloads match the wire shape.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CheckSimple validates a request struct and returns a typed Error.
func CheckSimple(s any) error {
	if err := NewValidator().Struct(s); err != nil {
		return NewErrorFromError(err)
	}
	return nil
}

// Problem404 returns the RFC 7807 problem-details body for unmatched routes.
func Problem404() *problems.Problem {
	return problems.NewStatusProblem(404)
}
