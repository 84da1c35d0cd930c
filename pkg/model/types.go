package model

// BaseContext is the mandatory first @context entry for every credential.
const BaseContext = "https://www.w3.org/2018/credentials/v1"

// BaseCredentialType is the type every credential's type array must contain.
const BaseCredentialType = "VerifiableCredential"

// BasePresentationType is the type every presentation's type array must contain.
const BasePresentationType = "VerifiablePresentation"

// CredentialRequest is the issuer's createCredential input.
type CredentialRequest struct {
	Context           []string       `json:"@context" validate:"required,min=1"`
	ID                string         `json:"id,omitempty"`
	Type              []string       `json:"type" validate:"required,min=1"`
	Issuer            string         `json:"issuer" validate:"required"`
	IssuanceDate      string         `json:"issuanceDate,omitempty"`
	CredentialSubject map[string]any `json:"credentialSubject" validate:"required"`
}

// Proof is the Ed25519Signature2020 detached proof object. Domain and
// Challenge are only populated on presentation proofs.
type Proof struct {
	Type               string `json:"type"`
	Created            string `json:"created"`
	VerificationMethod string `json:"verificationMethod"`
	ProofPurpose       string `json:"proofPurpose"`
	ProofValue         string `json:"proofValue"`
	Domain             string `json:"domain,omitempty"`
	Challenge          string `json:"challenge,omitempty"`
}

// CredentialResponse is a signed credential, in either VC or SD-JWT flavor.
type CredentialResponse struct {
	Context           []string       `json:"@context"`
	ID                string         `json:"id,omitempty"`
	Type              []string       `json:"type"`
	Issuer            string         `json:"issuer"`
	IssuanceDate      string         `json:"issuanceDate,omitempty"`
	CredentialSubject map[string]any `json:"credentialSubject"`
	Proof             *Proof         `json:"proof,omitempty"`
	SDJWT             string         `json:"sd_jwt,omitempty"`
	Disclosures       []string       `json:"disclosures,omitempty"`
}

// SDJWTCredentialRequest is the issuer's createSdJwtCredential input.
type SDJWTCredentialRequest struct {
	Issuer            string         `json:"issuer" validate:"required"`
	CredentialSubject map[string]any `json:"credentialSubject" validate:"required"`
	Disclose          []string       `json:"disclose,omitempty"`
}

// SDJWTCredentialResponse carries the compact SD-JWT and its disclosures.
type SDJWTCredentialResponse struct {
	SDJWT       string   `json:"sd_jwt"`
	Disclosures []string `json:"disclosures"`
}

// PublicKeyInfo describes the issuer's active public key.
type PublicKeyInfo struct {
	ID                 string `json:"id"`
	KeyType            string `json:"keyType"`
	PublicKeyMultibase string `json:"publicKeyMultibase"`
}

// IssuerMetadata is the GET /issuer/metadata response.
type IssuerMetadata struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	PublicKey PublicKeyInfo `json:"publicKey"`
}

// PresentationRequest is the holder's createPresentation input.
type PresentationRequest struct {
	VerifiableCredential []string `json:"verifiableCredential" validate:"required,min=1"`
	Domain               string   `json:"domain" validate:"required"`
	Challenge            string   `json:"challenge" validate:"required"`
}

// VerifiablePresentation is a signed bundle of embedded credentials.
type VerifiablePresentation struct {
	Context              []string             `json:"@context"`
	Type                 []string             `json:"type"`
	VerifiableCredential []CredentialResponse `json:"verifiableCredential"`
	Proof                *Proof               `json:"proof,omitempty"`
}

// StoreResult is the holder's POST /holder/credentials response.
type StoreResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// VerificationResult is the verifier's response shape for both endpoints.
type VerificationResult struct {
	Verified bool     `json:"verified"`
	Errors   []string `json:"errors"`
}
