package holder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/model"
)

func newTestHolder(t *testing.T) *Holder {
	t.Helper()
	ks, err := keystore.Generate(filepath.Join(t.TempDir(), "keys.json"))
	require.NoError(t, err)
	return New(logger.NewSimple("test"), NewStore(), keystore.NewSigner(ks, "did:example:holder#key-1"))
}

func TestStoreAndListCredentials(t *testing.T) {
	h := newTestHolder(t)
	ctx := context.Background()

	cred := model.CredentialResponse{Issuer: "did:example:issuer", ID: "cred-1"}
	res := h.StoreCredential(ctx, cred)
	assert.Equal(t, "stored", res.Status)
	assert.NotEmpty(t, res.ID)

	all := h.ListCredentials(ctx)
	assert.Len(t, all, 1)
	assert.Equal(t, "did:example:issuer", all[0].Issuer)
}

func TestCreatePresentationBindsDomainAndChallenge(t *testing.T) {
	h := newTestHolder(t)
	ctx := context.Background()

	res := h.StoreCredential(ctx, model.CredentialResponse{Issuer: "did:example:issuer", ID: "cred-1"})

	pres, err := h.CreatePresentation(ctx, model.PresentationRequest{
		VerifiableCredential: []string{res.ID},
		Domain:               "example.com",
		Challenge:            "abc123",
	})
	require.NoError(t, err)
	require.NotNil(t, pres.Proof)
	assert.Equal(t, "example.com", pres.Proof.Domain)
	assert.Equal(t, "abc123", pres.Proof.Challenge)
	assert.Len(t, pres.VerifiableCredential, 1)
}

func TestCreatePresentationUnknownCredential(t *testing.T) {
	h := newTestHolder(t)

	_, err := h.CreatePresentation(context.Background(), model.PresentationRequest{
		VerifiableCredential: []string{"does-not-exist"},
		Domain:               "example.com",
		Challenge:            "abc123",
	})
	assert.Error(t, err)
}
