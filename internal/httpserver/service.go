// Package httpserver is the thin HTTP/JSON facade mapping the three
// role APIs (issuer, holder, verifier) to request/response JSON behind
// distinct path prefixes, per spec.md §6. Grounded on
// internal/issuer/httpserver/service.go, trimmed of TLS, SAML, gRPC,
// OpenTelemetry tracing, and Swagger — none of those concerns exist in
// this system's scope.
package httpserver

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rmatsuoka744/vc-system/pkg/helpers"
	"github.com/rmatsuoka744/vc-system/pkg/holder"
	"github.com/rmatsuoka744/vc-system/pkg/issuer"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/model"
	"github.com/rmatsuoka744/vc-system/pkg/verifier"
)

// Service is the gin-backed HTTP facade over the three roles.
type Service struct {
	config   *model.Cfg
	logger   *logger.Log
	server   *http.Server
	gin      *gin.Engine
	issuer   *issuer.Issuer
	holder   *holder.Holder
	verifier *verifier.Verifier
}

// New builds the gin engine, registers every role's routes, and starts
// listening on config.API.Addr in the background.
func New(ctx context.Context, config *model.Cfg, iss *issuer.Issuer, hld *holder.Holder, ver *verifier.Verifier, log *logger.Log) (*Service, error) {
	s := &Service{
		config:   config,
		logger:   log,
		issuer:   iss,
		holder:   hld,
		verifier: ver,
		server:   &http.Server{Addr: config.API.Addr},
	}

	switch s.config.Common.Production {
	case true:
		gin.SetMode(gin.ReleaseMode)
	case false:
		gin.SetMode(gin.DebugMode)
	}

	apiValidator := validator.New(validator.WithRequiredStructEnabled())
	apiValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	binding.Validator = &defaultValidator{Validate: apiValidator}

	s.gin = gin.New()
	s.server.Handler = s.gin
	s.server.ReadTimeout = 5 * time.Second
	s.server.WriteTimeout = 30 * time.Second
	s.server.IdleTimeout = 90 * time.Second

	s.gin.Use(s.middlewareLogger())
	s.gin.Use(gin.Recovery())
	s.gin.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, helpers.Problem404()) })

	rgIssuer := s.gin.Group("/issuer")
	s.regEndpoint(rgIssuer, http.MethodPost, "/credentials", s.endpointCreateCredential)
	s.regEndpoint(rgIssuer, http.MethodGet, "/metadata", s.endpointIssuerMetadata)
	s.regEndpoint(rgIssuer, http.MethodPost, "/sd-jwt-credentials", s.endpointCreateSDJWTCredential)

	rgHolder := s.gin.Group("/holder")
	s.regEndpoint(rgHolder, http.MethodPost, "/credentials", s.endpointStoreCredential)
	s.regEndpoint(rgHolder, http.MethodGet, "/credentials", s.endpointListCredentials)
	s.regEndpoint(rgHolder, http.MethodPost, "/presentations", s.endpointCreatePresentation)

	rgVerifier := s.gin.Group("/verifier")
	s.regEndpoint(rgVerifier, http.MethodPost, "/credentials", s.endpointVerifyCredential)
	s.regEndpoint(rgVerifier, http.MethodPost, "/presentations", s.endpointVerifyPresentation)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error(err, "listen")
		}
	}()

	s.logger.Info("started", "addr", config.API.Addr)
	return s, nil
}

// endpointFunc is the facade's own handler shape: a typed response
// value, the status code to answer with on success, and an error the
// caller maps to a status code, the way
// internal/issuer/httpserver.Service.regEndpoint does for the teacher.
type endpointFunc func(context.Context, *gin.Context) (any, int, error)

func (s *Service) regEndpoint(rg *gin.RouterGroup, method, path string, handler endpointFunc) {
	rg.Handle(method, path, func(c *gin.Context) {
		res, successStatus, err := handler(c.Request.Context(), c)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": helpers.NewErrorFromError(err)})
			return
		}
		c.JSON(successStatus, res)
	})
}

// statusForError maps a typed helpers.Error to an HTTP status per
// spec.md §7's input-shape (400) vs internal (500) split. Semantic
// verification failures never reach this path — the verifier
// endpoints always answer 200 with verified:false (see
// endpoints_verifier.go).
func statusForError(err error) int {
	typed, ok := err.(*helpers.Error)
	if !ok {
		return http.StatusInternalServerError
	}

	switch typed.Title {
	case helpers.KindSchemaValidation,
		helpers.KindCredentialNotFound,
		helpers.KindMissingProof,
		helpers.KindValidation,
		helpers.KindInvalidJSONPayload,
		"json_syntax_error",
		"json_type_error":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Service) middlewareLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Close shuts down the HTTP listener.
func (s *Service) Close(ctx context.Context) error {
	s.logger.Info("stopping")
	return s.server.Shutdown(ctx)
}
