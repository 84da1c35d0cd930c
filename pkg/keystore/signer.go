package keystore

import (
	"context"
	"crypto/ed25519"
)

// Signer implements the teacher codebase's software-signing interface
// shape (Sign/Algorithm/KeyID/PublicKey) over an Ed25519 key held by a
// KeyStore, so the proof and SD-JWT issuers do not reach into
// KeyStore's internals directly.
type Signer struct {
	ks    *KeyStore
	keyID string
}

// NewSigner wraps ks as a Signer identified by keyID (the
// verificationMethod / JWT kid value callers should use).
func NewSigner(ks *KeyStore, keyID string) *Signer {
	return &Signer{ks: ks, keyID: keyID}
}

// Sign signs data directly with Ed25519 (no pre-hashing: EdDSA hashes internally).
func (s *Signer) Sign(_ context.Context, data []byte) ([]byte, error) {
	return ed25519.Sign(s.ks.PrivateKey(), data), nil
}

// Algorithm returns the JWT algorithm name for an Ed25519 key.
func (s *Signer) Algorithm() string {
	return "EdDSA"
}

// KeyID returns the verification method / kid this signer signs as.
func (s *Signer) KeyID() string {
	return s.keyID
}

// PublicKey returns the Ed25519 public key.
func (s *Signer) PublicKey() any {
	return s.ks.PublicKey()
}
