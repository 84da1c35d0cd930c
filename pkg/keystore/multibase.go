package keystore

import (
	"crypto/ed25519"

	"github.com/multiformats/go-multibase"
)

// ed25519MulticodecPrefix is the multicodec varint prefix (0xed01) for
// an Ed25519 public key, prepended before multibase-encoding as
// publicKeyMultibase expects.
var ed25519MulticodecPrefix = []byte{0xed, 0x01}

func multibasePublicKey(pub ed25519.PublicKey) (string, error) {
	prefixed := make([]byte, 0, len(ed25519MulticodecPrefix)+len(pub))
	prefixed = append(prefixed, ed25519MulticodecPrefix...)
	prefixed = append(prefixed, pub...)

	return multibase.Encode(multibase.Base58BTC, prefixed)
}
