// Package issuer implements credential and SD-JWT credential minting.
// IssuanceDate is always set from server time: a request's own
// issuanceDate field, if present, is ignored — only this process's
// clock is authoritative.
package issuer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/model"
	"github.com/rmatsuoka744/vc-system/pkg/proof"
	"github.com/rmatsuoka744/vc-system/pkg/schema"
	"github.com/rmatsuoka744/vc-system/pkg/sdjwtengine"
)

// Issuer mints verifiable credentials and SD-JWT credentials using a
// single held keypair.
type Issuer struct {
	log      *logger.Log
	ks       *keystore.KeyStore
	signer   *keystore.Signer
	schemas  *schema.Registry
	issuerID string
	name     string
}

// New creates an Issuer identified by issuerID (e.g. a DID), signing
// with ks and validating credentialSubject payloads against schemas.
func New(log *logger.Log, ks *keystore.KeyStore, schemas *schema.Registry, issuerID, name string) *Issuer {
	return &Issuer{
		log:      log.New("issuer"),
		ks:       ks,
		signer:   keystore.NewSigner(ks, issuerID+"#key-1"),
		schemas:  schemas,
		issuerID: issuerID,
		name:     name,
	}
}

// nonBaseType returns the first entry in types that is not the base
// "VerifiableCredential" marker, failing if every entry is the marker.
func nonBaseType(types []string) (string, error) {
	for _, t := range types {
		if t != model.BaseCredentialType {
			return t, nil
		}
	}
	return "", helpers.NewError(helpers.KindInvalidType)
}

// CreateCredential validates req against its schema and returns a
// signed Ed25519Signature2020 credential.
func (i *Issuer) CreateCredential(ctx context.Context, req model.CredentialRequest) (*model.CredentialResponse, error) {
	i.log.Debug("create credential", "issuer", req.Issuer)

	if !slices.Contains(req.Type, model.BaseCredentialType) {
		return nil, helpers.NewErrorDetails(helpers.KindInvalidType, "type must contain "+model.BaseCredentialType)
	}

	credType, err := nonBaseType(req.Type)
	if err != nil {
		return nil, err
	}

	if !i.schemas.Has(credType) {
		return nil, helpers.NewErrorDetails(helpers.KindInvalidType, "Unsupported credential type: "+credType)
	}

	if err := i.schemas.Validate(credType, req.CredentialSubject); err != nil {
		return nil, err
	}

	cred := &model.CredentialResponse{
		Context:           req.Context,
		ID:                fmt.Sprintf("http://example.edu/credentials/%s", uuid.NewString()),
		Type:              req.Type,
		Issuer:            req.Issuer,
		IssuanceDate:      time.Now().UTC().Format(time.RFC3339),
		CredentialSubject: req.CredentialSubject,
	}

	docForSigning := map[string]any{
		"@context":          cred.Context,
		"id":                cred.ID,
		"type":              cred.Type,
		"issuer":            cred.Issuer,
		"issuanceDate":      cred.IssuanceDate,
		"credentialSubject": cred.CredentialSubject,
	}

	p, err := proof.Sign(docForSigning, i.signer, proof.Options{
		VerificationMethod: i.signer.KeyID(),
		ProofPurpose:        "assertionMethod",
	})
	if err != nil {
		return nil, err
	}
	cred.Proof = p

	i.log.Info("credential signed", "id", cred.ID, "type", credType)
	return cred, nil
}

// CreateSDJWTCredential partitions req.CredentialSubject by
// req.Disclose, signs the resulting plain claims plus _sd digests as
// a compact JWT, and returns the JWT alongside the disclosure strings.
func (i *Issuer) CreateSDJWTCredential(ctx context.Context, req model.SDJWTCredentialRequest) (*model.SDJWTCredentialResponse, error) {
	i.log.Debug("create sd-jwt credential", "issuer", req.Issuer)

	plain, sd, disclosures, err := sdjwtengine.Partition(req.CredentialSubject, req.Disclose)
	if err != nil {
		return nil, err
	}

	compact, err := proof.SignSDJWT(req.Issuer, plain, sd, i.signer)
	if err != nil {
		return nil, err
	}

	i.log.Info("sd-jwt credential signed", "issuer", req.Issuer, "disclosed", len(disclosures))
	return &model.SDJWTCredentialResponse{SDJWT: compact, Disclosures: disclosures}, nil
}

// Metadata returns this issuer's public identity and key material.
func (i *Issuer) Metadata(ctx context.Context) (*model.IssuerMetadata, error) {
	mb, err := i.ks.PublicKeyMultibase()
	if err != nil {
		return nil, helpers.NewErrorDetails(helpers.KindCrypto, err.Error())
	}

	return &model.IssuerMetadata{
		ID:   i.issuerID,
		Name: i.name,
		PublicKey: model.PublicKeyInfo{
			ID:                 i.signer.KeyID(),
			KeyType:            "Ed25519VerificationKey2020",
			PublicKeyMultibase: mb,
		},
	}, nil
}
