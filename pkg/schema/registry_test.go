package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryCompilesBuiltins(t *testing.T) {
	require.NotPanics(t, func() {
		NewRegistry()
	})
}

func TestValidateAcceptsWellFormedSubject(t *testing.T) {
	r := NewRegistry()
	err := r.Validate("UniversityDegreeCredential", map[string]any{
		"id": "did:example:holder",
		"degree": map[string]any{
			"type": "BachelorDegree",
			"name": "Bachelor of Science",
		},
	})
	assert.NoError(t, err)
}

func TestValidateRejectsMissingField(t *testing.T) {
	r := NewRegistry()
	err := r.Validate("UniversityDegreeCredential", map[string]any{"id": "did:example:holder"})
	assert.Error(t, err)
}

func TestValidateUnknownTypePasses(t *testing.T) {
	r := NewRegistry()
	err := r.Validate("SomeUnregisteredType", map[string]any{"anything": true})
	assert.NoError(t, err)
}

func TestValidateEmploymentCredential(t *testing.T) {
	r := NewRegistry()
	err := r.Validate("EmploymentCredential", map[string]any{
		"id":                "did:example:holder",
		"employmentStatus":  "employed",
		"employerName":      "Acme Corp",
	})
	assert.NoError(t, err)
}
