// Command vc-system runs the issuer, holder, and verifier roles as one
// process behind the HTTP facade, per spec.md §1/§6. Grounded on
// cmd/issuer/main.go's wiring/signal-handling shape, trimmed of gRPC,
// SAML, the message queue, and the DB/KV layers that service's other
// roles need but this one does not.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rmatsuoka744/vc-system/pkg/configuration"
	"github.com/rmatsuoka744/vc-system/pkg/holder"
	"github.com/rmatsuoka744/vc-system/pkg/issuer"
	"github.com/rmatsuoka744/vc-system/pkg/keystore"
	"github.com/rmatsuoka744/vc-system/pkg/logger"
	"github.com/rmatsuoka744/vc-system/pkg/schema"
	"github.com/rmatsuoka744/vc-system/pkg/trust"
	"github.com/rmatsuoka744/vc-system/pkg/verifier"

	"github.com/rmatsuoka744/vc-system/internal/httpserver"
)

type service interface {
	Close(ctx context.Context) error
}

func main() {
	ctx := context.Background()

	cfg, err := configuration.New()
	if err != nil {
		panic(err)
	}

	log, err := logger.New("vc_system", cfg.Common.Production)
	if err != nil {
		panic(err)
	}

	ks, err := loadOrGenerateKeyStore(cfg.API.KeyFilePath, log)
	if err != nil {
		panic(err)
	}

	schemas := schema.NewRegistry()
	holderSigner := keystore.NewSigner(ks, "did:example:456#key-1")

	issuerSvc := issuer.New(log, ks, schemas, "did:example:123", "Example University")
	holderSvc := holder.New(log, holder.NewStore(), holderSigner)
	verifierSvc := verifier.New(log, ks, trust.AlwaysTrust{})

	services := make(map[string]service)

	httpSvc, err := httpserver.New(ctx, cfg, issuerSvc, holderSvc, verifierSvc, log.New("httpserver"))
	if err != nil {
		panic(err)
	}
	services["httpserver"] = httpSvc

	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	<-termChan

	mainLog := log.New("main")
	mainLog.Info("halting signal received")

	for name, svc := range services {
		if err := svc.Close(ctx); err != nil {
			mainLog.Error(err, "service close failed", "service", name)
		}
	}

	mainLog.Info("stopped")
}

// loadOrGenerateKeyStore loads the keypair at path, generating a fresh
// one on first run so the service can start with zero external setup —
// matching pkg/configuration.New's "must start with zero external
// configuration" posture.
func loadOrGenerateKeyStore(path string, log *logger.Log) (*keystore.KeyStore, error) {
	if _, err := os.Stat(path); err == nil {
		return keystore.Load(path)
	}

	log.Info("key file not found, generating a new keypair", "path", path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return keystore.Generate(path)
}
