// Package keystore loads the service's single Ed25519 keypair once and
// holds it by reference for every signing/verification call. Per
// spec.md Design Note 3, the file is read once at process start, not
// re-opened on every cryptographic operation.
package keystore

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mr-tron/base58"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
)

// fileFormat is the on-disk keys/keys.json shape: {public_key, private_key},
// each base58-encoded.
type fileFormat struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// KeyStore holds the process's active Ed25519 keypair.
type KeyStore struct {
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

// Load reads and validates a keypair from path. The public key recovered
// from the file must equal the public key derived from the private key;
// a mismatch is a fatal Crypto error, not a warning.
func Load(path string) (*KeyStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	var ff fileFormat
	if err := json.Unmarshal(raw, &ff); err != nil {
		return nil, fmt.Errorf("parsing key file: %w", err)
	}

	privBytes, err := base58.Decode(ff.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("decoding private_key: %w", err)
	}
	pubBytes, err := base58.Decode(ff.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("decoding public_key: %w", err)
	}

	if len(privBytes) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private_key has %d bytes, want %d", len(privBytes), ed25519.PrivateKeySize)
	}
	if len(pubBytes) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public_key has %d bytes, want %d", len(pubBytes), ed25519.PublicKeySize)
	}

	priv := ed25519.PrivateKey(privBytes)
	derived := priv.Public().(ed25519.PublicKey)
	if !derived.Equal(ed25519.PublicKey(pubBytes)) {
		return nil, helpers.NewErrorDetails(helpers.KindCrypto, fmt.Sprintf("public_key in %s does not match the key derived from private_key", path))
	}

	return &KeyStore{public: derived, private: priv}, nil
}

// Generate creates a fresh keypair and writes it to path in the on-disk format.
func Generate(path string) (*KeyStore, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}

	ff := fileFormat{
		PublicKey:  base58.Encode(pub),
		PrivateKey: base58.Encode(priv),
	}
	raw, err := json.MarshalIndent(ff, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return nil, err
	}

	return &KeyStore{public: pub, private: priv}, nil
}

// PublicKey returns the active public key.
func (k *KeyStore) PublicKey() ed25519.PublicKey {
	return k.public
}

// PrivateKey returns the active private key, for signing.
func (k *KeyStore) PrivateKey() ed25519.PrivateKey {
	return k.private
}

// PublicKeyMultibase returns the "z"-prefixed base58btc multibase
// encoding of the public key, as used in IssuerMetadata.
func (k *KeyStore) PublicKeyMultibase() (string, error) {
	return multibasePublicKey(k.public)
}
