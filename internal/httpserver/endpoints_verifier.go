package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmatsuoka744/vc-system/pkg/model"
)

// endpointVerifyCredential implements spec.md §7's dual contract for
// verification endpoints: a signature/trust/format failure is a
// successful HTTP call carrying verified:false, never an HTTP error.
func (s *Service) endpointVerifyCredential(ctx context.Context, c *gin.Context) (any, int, error) {
	cred := model.CredentialResponse{}
	if err := bindRequest(c, &cred); err != nil {
		return nil, 0, err
	}

	if err := s.verifier.VerifyCredential(ctx, cred); err != nil {
		return model.VerificationResult{Verified: false, Errors: []string{err.Error()}}, http.StatusOK, nil
	}
	return model.VerificationResult{Verified: true, Errors: []string{}}, http.StatusOK, nil
}

func (s *Service) endpointVerifyPresentation(ctx context.Context, c *gin.Context) (any, int, error) {
	pres := model.VerifiablePresentation{}
	if err := bindRequest(c, &pres); err != nil {
		return nil, 0, err
	}

	if err := s.verifier.VerifyPresentation(ctx, pres); err != nil {
		return model.VerificationResult{Verified: false, Errors: []string{err.Error()}}, http.StatusOK, nil
	}
	return model.VerificationResult{Verified: true, Errors: []string{}}, http.StatusOK, nil
}
