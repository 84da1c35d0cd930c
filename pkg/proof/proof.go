// Package proof implements the Ed25519Signature2020 detached JSON
// proof used on verifiable credentials and presentations. The signing
// pre-image is the document's canonical JSON form (see pkg/canonical),
// not an RDF dataset — a deliberate simplification of the teacher's
// eddsa-rdfc-2022 cryptosuite for a document shape that has no @context
// graph to canonicalize.
package proof

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/mr-tron/base58"

	"github.com/rmatsuoka744/vc-system/pkg/canonical"
	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/model"
)

// ProofType is the only proof type this service issues.
const ProofType = "Ed25519Signature2020"

// Options controls the fields of the generated proof object.
type Options struct {
	VerificationMethod string
	ProofPurpose        string
	Created             time.Time
	Domain              string
	Challenge           string
}

// Sign computes a detached proof over doc (a JSON-tree value with no
// "proof" key of its own — callers must omit it before calling Sign)
// and returns the proof object to attach.
func Sign(doc any, signer *keystore.Signer, opts Options) (*model.Proof, error) {
	created := opts.Created
	if created.IsZero() {
		created = time.Now().UTC()
	}

	docBytes, err := canonical.Marshal(doc)
	if err != nil {
		return nil, helpers.NewErrorDetails(helpers.KindSerialization, err.Error())
	}

	sig, err := signer.Sign(context.Background(), docBytes)
	if err != nil {
		return nil, helpers.NewErrorDetails(helpers.KindSigning, err.Error())
	}

	return &model.Proof{
		Type:               ProofType,
		Created:            created.Format(time.RFC3339),
		VerificationMethod: opts.VerificationMethod,
		ProofPurpose:       opts.ProofPurpose,
		ProofValue:         base58.Encode(sig),
		Domain:             opts.Domain,
		Challenge:          opts.Challenge,
	}, nil
}

// Verify recomputes the canonical form of doc (again, with no "proof"
// key) and checks p.ProofValue against pub.
func Verify(doc any, p *model.Proof, pub []byte) error {
	if p == nil {
		return helpers.NewError(helpers.KindMissingProof)
	}
	if p.Type != ProofType {
		return helpers.NewErrorDetails(helpers.KindInvalidCredFormat, "unsupported proof type: "+p.Type)
	}

	docBytes, err := canonical.Marshal(doc)
	if err != nil {
		return helpers.NewErrorDetails(helpers.KindSerialization, err.Error())
	}

	sig, err := base58.Decode(p.ProofValue)
	if err != nil {
		return helpers.NewErrorDetails(helpers.KindInvalidBase64, err.Error())
	}

	if !ed25519.Verify(ed25519.PublicKey(pub), docBytes, sig) {
		return helpers.NewError(helpers.KindSignatureVerify)
	}
	return nil
}
