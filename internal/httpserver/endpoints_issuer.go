package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmatsuoka744/vc-system/pkg/model"
)

func (s *Service) endpointCreateCredential(ctx context.Context, c *gin.Context) (any, int, error) {
	req := model.CredentialRequest{}
	if err := bindRequest(c, &req); err != nil {
		return nil, 0, err
	}

	cred, err := s.issuer.CreateCredential(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	return cred, http.StatusOK, nil
}

func (s *Service) endpointCreateSDJWTCredential(ctx context.Context, c *gin.Context) (any, int, error) {
	req := model.SDJWTCredentialRequest{}
	if err := bindRequest(c, &req); err != nil {
		return nil, 0, err
	}

	resp, err := s.issuer.CreateSDJWTCredential(ctx, req)
	if err != nil {
		return nil, 0, err
	}
	return resp, http.StatusOK, nil
}

func (s *Service) endpointIssuerMetadata(ctx context.Context, c *gin.Context) (any, int, error) {
	md, err := s.issuer.Metadata(ctx)
	if err != nil {
		return nil, 0, err
	}
	return md, http.StatusOK, nil
}
