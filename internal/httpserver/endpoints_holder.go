package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmatsuoka744/vc-system/pkg/model"
)

func (s *Service) endpointStoreCredential(ctx context.Context, c *gin.Context) (any, int, error) {
	cred := model.CredentialResponse{}
	if err := bindRequest(c, &cred); err != nil {
		return nil, 0, err
	}

	return s.holder.StoreCredential(ctx, cred), http.StatusCreated, nil
}

func (s *Service) endpointListCredentials(ctx context.Context, c *gin.Context) (any, int, error) {
	return s.holder.ListCredentials(ctx), http.StatusOK, nil
}

func (s *Service) endpointCreatePresentation(ctx context.Context, c *gin.Context) (any, int, error) {
	req := model.PresentationRequest{}
	if err := bindRequest(c, &req); err != nil {
		return nil, 0, err
	}

	pres, err := s.holder.CreatePresentation(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	return pres, http.StatusOK, nil
}
