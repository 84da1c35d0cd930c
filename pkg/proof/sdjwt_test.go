package proof

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/sdjwtengine"
)

func TestSignAndVerifySDJWT(t *testing.T) {
	ks, err := keystore.Generate(filepath.Join(t.TempDir(), "keys.json"))
	require.NoError(t, err)
	signer := keystore.NewSigner(ks, "did:example:issuer#key-1")

	plain, sd, disclosures, err := sdjwtengine.Partition(
		map[string]any{"id": "did:example:holder", "givenName": "Alice"},
		[]string{"givenName"},
	)
	require.NoError(t, err)

	compact, err := SignSDJWT("did:example:issuer", plain, sd, signer)
	require.NoError(t, err)

	claims, err := VerifySDJWT(compact, ks.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, "did:example:issuer", claims["iss"])
	assert.Equal(t, sdjwtengine.SDAlg, claims["_sd_alg"])
	assert.NotEmpty(t, disclosures)

	sdClaim, ok := claims["_sd"].(map[string]any)
	require.True(t, ok, "_sd must decode as a claim-name-to-digest mapping, not an array")
	digest, ok := sdClaim["givenName"].(string)
	require.True(t, ok)
	assert.Equal(t, sd["givenName"], digest)
}

func TestVerifySDJWTRejectsWrongKey(t *testing.T) {
	ks, err := keystore.Generate(filepath.Join(t.TempDir(), "keys.json"))
	require.NoError(t, err)
	signer := keystore.NewSigner(ks, "key-1")

	other, err := keystore.Generate(filepath.Join(t.TempDir(), "keys.json"))
	require.NoError(t, err)

	compact, err := SignSDJWT("did:example:issuer", map[string]any{"id": "1"}, nil, signer)
	require.NoError(t, err)

	_, err = VerifySDJWT(compact, other.PublicKey())
	assert.Error(t, err)
}

func TestVerifySDJWTRejectsWrongSegmentCount(t *testing.T) {
	ks, err := keystore.Generate(filepath.Join(t.TempDir(), "keys.json"))
	require.NoError(t, err)
	signer := keystore.NewSigner(ks, "did:example:issuer#key-1")

	compact, err := SignSDJWT("did:example:issuer", map[string]any{"id": "1"}, nil, signer)
	require.NoError(t, err)

	parts := strings.SplitN(compact, ".", 3)

	twoSegments := parts[0] + "." + parts[1]
	_, err = VerifySDJWT(twoSegments, ks.PublicKey())
	require.Error(t, err)
	typed, ok := err.(*helpers.Error)
	require.True(t, ok)
	assert.Equal(t, helpers.KindInvalidCredFormat, typed.Title)

	fourSegments := compact + ".extra"
	_, err = VerifySDJWT(fourSegments, ks.PublicKey())
	require.Error(t, err)
	typed, ok = err.(*helpers.Error)
	require.True(t, ok)
	assert.Equal(t, helpers.KindInvalidCredFormat, typed.Title)
}
