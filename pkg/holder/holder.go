package holder

import (
	"context"

	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/model"
	"github.com/rmatsuoka744/vc-system/pkg/proof"
)

// Holder stores credentials and issues presentations over them.
type Holder struct {
	log    *logger.Log
	store  *Store
	signer *keystore.Signer
}

// New creates a Holder backed by store, signing presentations with signer.
func New(log *logger.Log, store *Store, signer *keystore.Signer) *Holder {
	return &Holder{log: log.New("holder"), store: store, signer: signer}
}

// StoreCredential saves cred and returns its newly assigned id.
func (h *Holder) StoreCredential(_ context.Context, cred model.CredentialResponse) model.StoreResult {
	id := h.store.Put(cred)
	h.log.Info("credential stored", "id", id)
	return model.StoreResult{ID: id, Status: "stored"}
}

// ListCredentials returns every stored credential.
func (h *Holder) ListCredentials(_ context.Context) []model.CredentialResponse {
	return h.store.List()
}

// CreatePresentation bundles the credentials named in req, signs the
// bundle, and binds req.Domain/req.Challenge into the signed payload
// so a verifier can check them against the same signature the
// credentials travel under — not as unauthenticated sidecar fields.
func (h *Holder) CreatePresentation(ctx context.Context, req model.PresentationRequest) (*model.VerifiablePresentation, error) {
	h.log.Debug("create presentation", "count", len(req.VerifiableCredential))

	selected := make([]model.CredentialResponse, 0, len(req.VerifiableCredential))
	for _, id := range req.VerifiableCredential {
		cred, err := h.store.Get(id)
		if err != nil {
			return nil, err
		}
		selected = append(selected, cred)
	}

	pres := &model.VerifiablePresentation{
		Context:              []string{model.BaseContext},
		Type:                 []string{model.BasePresentationType},
		VerifiableCredential: selected,
	}

	docForSigning := map[string]any{
		"@context":             pres.Context,
		"type":                 pres.Type,
		"verifiableCredential": pres.VerifiableCredential,
		"domain":               req.Domain,
		"challenge":            req.Challenge,
	}

	p, err := proof.Sign(docForSigning, h.signer, proof.Options{
		VerificationMethod: h.signer.KeyID(),
		ProofPurpose:        "authentication",
		Domain:              req.Domain,
		Challenge:           req.Challenge,
	})
	if err != nil {
		return nil, err
	}
	pres.Proof = p

	h.log.Info("presentation created", "credentials", len(selected))
	return pres, nil
}
