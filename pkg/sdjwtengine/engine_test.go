package sdjwtengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := Disclosure{Salt: "abc123", Name: "givenName", Value: "Alice"}

	encoded, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, `abc123.givenName.Alice`, encoded)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, d, decoded)
}

func TestEncodeDecodeNonStringValue(t *testing.T) {
	d := Disclosure{Salt: "saltsalt", Name: "age", Value: float64(42)}

	encoded, err := Encode(d)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, d.Name, decoded.Name)
	assert.Equal(t, d.Value, decoded.Value)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode("onlyonepart")
	assert.Error(t, err)
}

func TestPartitionAndRecombine(t *testing.T) {
	subject := map[string]any{
		"id":        "did:example:123",
		"givenName": "Alice",
		"familyName": "Smith",
	}

	plain, sd, disclosures, err := Partition(subject, []string{"givenName", "familyName"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"id": "did:example:123"}, plain)
	assert.Len(t, sd, 2)
	assert.Len(t, disclosures, 2)

	merged, err := Recombine(plain, sd, disclosures)
	require.NoError(t, err)
	assert.Equal(t, "Alice", merged["givenName"])
	assert.Equal(t, "Smith", merged["familyName"])
	assert.Equal(t, "did:example:123", merged["id"])
}

func TestRecombineRejectsUnknownDisclosure(t *testing.T) {
	subject := map[string]any{"givenName": "Alice"}
	plain, sd, disclosures, err := Partition(subject, []string{"givenName"})
	require.NoError(t, err)

	forged, err := Encode(Disclosure{Salt: "forgedsalt", Name: "givenName", Value: "Mallory"})
	require.NoError(t, err)

	_, err = Recombine(plain, sd, append(disclosures[:0:0], forged))
	assert.Error(t, err)
}

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash("a.b.c"), Hash("a.b.c"))
	assert.NotEqual(t, Hash("a.b.c"), Hash("a.b.d"))
}

func TestNewSaltIs22URLSafeChars(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	require.Len(t, salt, 22)

	for _, r := range salt {
		isAllowed := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
		assert.Truef(t, isAllowed, "unexpected character %q in salt %q", r, salt)
	}
}
