package keystore

import (
	"crypto/ed25519"
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.json")

	generated, err := Generate(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, generated.PublicKey(), loaded.PublicKey())
	assert.Equal(t, generated.PrivateKey(), loaded.PrivateKey())
}

func TestLoadRejectsMismatchedPublicKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.json")

	ks, err := Generate(path)
	require.NoError(t, err)

	other, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	tampered := `{"public_key":"` + base58.Encode(other) + `","private_key":"` + base58.Encode(ks.PrivateKey()) + `"}`
	require.NoError(t, os.WriteFile(path, []byte(tampered), 0o600))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestPublicKeyMultibaseHasZPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.json")
	ks, err := Generate(path)
	require.NoError(t, err)

	mb, err := ks.PublicKeyMultibase()
	require.NoError(t, err)
	assert.True(t, len(mb) > 1 && mb[0] == 'z')
}
