package proof

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/sdjwtengine"
)

// SignSDJWT builds the compact, signed JWT half of an SD-JWT: the
// plaintext claims plus the _sd digest map and _sd_alg, signed with
// EdDSA. The returned string carries no "~"-joined disclosures — the
// caller appends those separately, matching the credential response's
// split sd_jwt/disclosures fields.
//
// Signing goes through signer.Sign rather than jwt.Token.SignedString,
// because a Signer only exposes an opaque Sign operation (grounded on
// the teacher's HSM-capable signing.Signer), not a raw private key.
func SignSDJWT(issuer string, plain map[string]any, sd map[string]string, signer *keystore.Signer) (string, error) {
	header := map[string]any{
		"alg": signer.Algorithm(),
		"typ": "JWT",
		"kid": signer.KeyID(),
	}

	claims := jwt.MapClaims{
		"iss":     issuer,
		"iat":     time.Now().UTC().Unix(),
		"_sd_alg": sdjwtengine.SDAlg,
	}
	for k, v := range plain {
		claims[k] = v
	}
	if len(sd) > 0 {
		claims["_sd"] = sd
	}

	headerSeg, err := encodeSegment(header)
	if err != nil {
		return "", helpers.NewErrorDetails(helpers.KindSerialization, err.Error())
	}
	payloadSeg, err := encodeSegment(claims)
	if err != nil {
		return "", helpers.NewErrorDetails(helpers.KindSerialization, err.Error())
	}

	signingInput := headerSeg + "." + payloadSeg
	sig, err := signer.Sign(context.Background(), []byte(signingInput))
	if err != nil {
		return "", helpers.NewErrorDetails(helpers.KindSigning, err.Error())
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

func encodeSegment(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// VerifySDJWT checks the compact JWT's segment shape, then its EdDSA
// signature against pub, requires _sd_alg to be present and equal to
// sdjwtengine.SDAlg, and returns its claims (including _sd, unexamined).
// Segment splitting is manual, grounded on the
// teacher's pkg/sdjwt.parseToken (strings.Split on "."), rather than
// left to jwt.ParseWithClaims, so a malformed token (2 or 4 segments)
// surfaces as InvalidCredentialFormat per spec.md §4.3/§8 instead of a
// generic signature-verification error.
func VerifySDJWT(compact string, pub ed25519.PublicKey) (jwt.MapClaims, error) {
	parts := strings.Split(compact, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, helpers.NewErrorDetails(helpers.KindInvalidCredFormat, fmt.Sprintf("expected 3 non-empty dot-separated segments, got %d", len(parts)))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(compact, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return pub, nil
	})
	if err != nil {
		return nil, helpers.NewErrorDetails(helpers.KindSignatureVerify, err.Error())
	}

	alg, _ := claims["_sd_alg"].(string)
	if alg == "" {
		return nil, helpers.NewError(helpers.KindMissingSDAlg)
	}
	if alg != sdjwtengine.SDAlg {
		return nil, helpers.NewErrorDetails(helpers.KindMissingSDAlg, "unsupported _sd_alg: "+alg)
	}

	return claims, nil
}
