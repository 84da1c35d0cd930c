// Package sdjwtengine builds and parses SD-JWT disclosures and digests.
// Disclosures are kept as the plain text form "salt.claimName.value"
// (not the IETF draft's base64url-encoded JSON array) per the
// documented deviation for this service; a verifier recomputes
// hash(disclosure) and checks membership in the credential's _sd map.
package sdjwtengine

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
)

// SDAlg is the only supported _sd_alg value.
const SDAlg = "sha-256"

// saltBytes is the number of random bytes encoded into each salt.
const saltBytes = 16

// NewSalt returns a fresh base64url (no padding) random salt.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", helpers.NewErrorDetails(helpers.KindCrypto, err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Disclosure is one selectively-disclosable claim before encoding.
type Disclosure struct {
	Salt  string
	Name  string
	Value any
}

// Encode renders a disclosure as "salt.name.value". Per spec, value's
// text is the inner string for JSON string claims (no surrounding
// quotes), or the JSON literal for any other kind with its outermost
// quotes trimmed (a no-op for numbers/booleans/objects/arrays, which
// JSON never quotes).
func Encode(d Disclosure) (string, error) {
	text, err := claimValueText(d.Value)
	if err != nil {
		return "", helpers.NewErrorDetails(helpers.KindSerialization, err.Error())
	}
	return fmt.Sprintf("%s.%s.%s", d.Salt, d.Name, text), nil
}

func claimValueText(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	raw, err := marshalCompact(v)
	if err != nil {
		return "", err
	}
	return strings.Trim(raw, `"`), nil
}

// Decode parses a "salt.name.value" disclosure string back into its
// parts. Since Encode strips quotes from string values, the value
// segment is not always valid JSON on its own: it is parsed as JSON
// when possible (numbers, booleans, objects, arrays), and falls back
// to a bare string otherwise.
func Decode(s string) (Disclosure, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return Disclosure{}, helpers.NewErrorDetails(helpers.KindInvalidCredFormat, "disclosure must have 3 dot-separated parts")
	}

	var value any
	if err := unmarshalCompact(parts[2], &value); err != nil {
		value = parts[2]
	}

	return Disclosure{Salt: parts[0], Name: parts[1], Value: value}, nil
}

// Hash returns the base64url (no padding) SHA-256 digest of a
// disclosure string, as placed into the credential's _sd map.
func Hash(disclosure string) string {
	sum := sha256.Sum256([]byte(disclosure))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// Partition splits a credential's claims into two groups: those named
// in discloseNames become selectively-disclosable (returned as
// encoded disclosure strings plus an _sd digest map keyed by claim
// name), and the rest stay inline as plain claims.
func Partition(subject map[string]any, discloseNames []string) (plain map[string]any, sd map[string]string, disclosures []string, err error) {
	discloseSet := make(map[string]bool, len(discloseNames))
	for _, n := range discloseNames {
		discloseSet[n] = true
	}

	plain = make(map[string]any)
	sd = make(map[string]string)
	disclosures = make([]string, 0, len(discloseNames))

	for name, value := range subject {
		if !discloseSet[name] {
			plain[name] = value
			continue
		}

		salt, saltErr := NewSalt()
		if saltErr != nil {
			return nil, nil, nil, saltErr
		}
		encoded, encErr := Encode(Disclosure{Salt: salt, Name: name, Value: value})
		if encErr != nil {
			return nil, nil, nil, encErr
		}

		disclosures = append(disclosures, encoded)
		sd[name] = Hash(encoded)
	}

	return plain, sd, disclosures, nil
}

// Recombine verifies each disclosure's digest is present in sd and
// returns the merged claim set: plain claims plus every disclosed
// claim, keyed by name. A disclosure whose digest is absent from sd
// is a verification failure, not silently dropped.
func Recombine(plain map[string]any, sd map[string]string, disclosures []string) (map[string]any, error) {
	wantDigests := make(map[string]bool, len(sd))
	for _, digest := range sd {
		wantDigests[digest] = true
	}

	merged := make(map[string]any, len(plain)+len(disclosures))
	for k, v := range plain {
		merged[k] = v
	}

	for _, raw := range disclosures {
		digest := Hash(raw)
		if !wantDigests[digest] {
			return nil, helpers.NewErrorDetails(helpers.KindSignatureVerify, fmt.Sprintf("disclosure digest %s not found in _sd", digest))
		}

		d, decErr := Decode(raw)
		if decErr != nil {
			return nil, decErr
		}
		merged[d.Name] = d.Value
	}

	return merged, nil
}
