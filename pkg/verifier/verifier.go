// Package verifier checks a credential's or presentation's signature
// and, for credentials, its issuer's trust status. Grounded on
// original_source/src/verifier/verifier.rs's verify_credential /
// verify_presentation flow (proof-stripped clone, delegate to the
// signature primitive, then an issuer-trust check), reimplemented over
// this service's two proof shapes instead of Rust's single
// crypto::verify_signature call.
package verifier

import (
	"context"
	"fmt"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/model"
	"github.com/rmatsuoka744/vc-system/pkg/proof"
	"github.com/rmatsuoka744/vc-system/pkg/sdjwtengine"
	"github.com/rmatsuoka744/vc-system/pkg/trust"
)

// Verifier checks credentials and presentations against a single held
// public key and a pluggable issuer-trust policy.
type Verifier struct {
	log   *logger.Log
	ks    *keystore.KeyStore
	trust trust.Evaluator
}

// New creates a Verifier checking signatures against ks's public key
// and issuer trust against trustEval.
func New(log *logger.Log, ks *keystore.KeyStore, trustEval trust.Evaluator) *Verifier {
	return &Verifier{log: log.New("verifier"), ks: ks, trust: trustEval}
}

// VerifyCredential checks cred's signature (SD-JWT or
// Ed25519Signature2020, whichever the credential carries) and, on
// success, checks that cred.Issuer is trusted.
func (v *Verifier) VerifyCredential(ctx context.Context, cred model.CredentialResponse) error {
	v.log.Debug("verify credential", "id", cred.ID, "issuer", cred.Issuer)

	if cred.SDJWT != "" {
		if err := v.verifySDJWT(cred); err != nil {
			return err
		}
	} else {
		if err := v.verifyVCProof(cred); err != nil {
			return err
		}
	}

	decision, err := v.trust.IsTrusted(ctx, cred.Issuer)
	if err != nil {
		return helpers.NewErrorDetails(helpers.KindInternal, err.Error())
	}
	if !decision.Trusted {
		return helpers.NewErrorDetails(helpers.KindUntrustedIssuer, decision.Reason)
	}

	return nil
}

func (v *Verifier) verifyVCProof(cred model.CredentialResponse) error {
	if cred.Proof == nil {
		return helpers.NewError(helpers.KindMissingProof)
	}

	docForSigning := map[string]any{
		"@context":          cred.Context,
		"id":                cred.ID,
		"type":              cred.Type,
		"issuer":            cred.Issuer,
		"issuanceDate":      cred.IssuanceDate,
		"credentialSubject": cred.CredentialSubject,
	}
	return proof.Verify(docForSigning, cred.Proof, v.ks.PublicKey())
}

func (v *Verifier) verifySDJWT(cred model.CredentialResponse) error {
	claims, err := proof.VerifySDJWT(cred.SDJWT, v.ks.PublicKey())
	if err != nil {
		return err
	}

	sd, err := sdMap(claims["_sd"])
	if err != nil {
		return err
	}

	if _, err := sdjwtengine.Recombine(nil, sd, cred.Disclosures); err != nil {
		return err
	}
	return nil
}

// sdMap normalizes the JWT library's decoded _sd claim (a
// map[string]interface{} once round-tripped through JSON) back into
// the name->digest map sdjwtengine expects.
func sdMap(raw any) (map[string]string, error) {
	untyped, ok := raw.(map[string]any)
	if !ok {
		if raw == nil {
			return map[string]string{}, nil
		}
		return nil, helpers.NewErrorDetails(helpers.KindInvalidJSONPayload, "_sd claim is not a name-to-digest mapping")
	}

	out := make(map[string]string, len(untyped))
	for name, digest := range untyped {
		s, ok := digest.(string)
		if !ok {
			return nil, helpers.NewErrorDetails(helpers.KindInvalidJSONPayload, fmt.Sprintf("_sd[%q] is not a string digest", name))
		}
		out[name] = s
	}
	return out, nil
}

// VerifyPresentation checks pres's own signature (including the
// domain/challenge bound into the signed payload at issuance time,
// per Design Note 4), then verifies every embedded credential in
// input order. The first failure short-circuits and is reported with
// its credential index.
func (v *Verifier) VerifyPresentation(ctx context.Context, pres model.VerifiablePresentation) error {
	v.log.Debug("verify presentation", "credentials", len(pres.VerifiableCredential))

	if pres.Proof == nil {
		return helpers.NewError(helpers.KindMissingProof)
	}

	docForSigning := map[string]any{
		"@context":             pres.Context,
		"type":                 pres.Type,
		"verifiableCredential": pres.VerifiableCredential,
		"domain":               pres.Proof.Domain,
		"challenge":            pres.Proof.Challenge,
	}
	if err := proof.Verify(docForSigning, pres.Proof, v.ks.PublicKey()); err != nil {
		return err
	}

	for i, cred := range pres.VerifiableCredential {
		if err := v.VerifyCredential(ctx, cred); err != nil {
			return helpers.NewErrorDetails(helpers.KindSignatureVerify, fmt.Sprintf("credential %d: %s", i, err.Error()))
		}
	}

	return nil
}
