// Package server provides the main orchestration for Herodex.
//
// The server follows a structured lifecycle:
//  1. Catalog signer and client construction
//  2. HTTP server launch
//  3. Graceful shutdown when the context is cancelled
package server

import (
	"context"
	"fmt"

	"herodex/internal/api"
	"herodex/internal/catalog"
	"herodex/internal/config"

	"github.com/rs/zerolog/log"
)

// Server represents the main Herodex orchestrator.
type Server struct {
	cfg     *config.Config
	version string
	client  *catalog.Client
	http    *api.Server
}

// New wires the catalog client and the HTTP server from cfg.
//
// Returns catalog.ErrConfiguration when the API keys are missing.
func New(cfg *config.Config, version string) (*Server, error) {
	signer, err := catalog.NewSigner(catalog.Credentials{
		PublicKey:  cfg.Catalog.PublicKey,
		PrivateKey: cfg.Catalog.PrivateKey,
	}, catalog.ClockFor(cfg.Catalog.Timestamp))
	if err != nil {
		return nil, err
	}

	client := catalog.NewClient(NewClientConfig(cfg.Catalog), signer)

	httpServer, err := api.NewServer(cfg.Server, client, cfg.Catalog.PageSize, version)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}

	return &Server{
		cfg:     cfg,
		version: version,
		client:  client,
		http:    httpServer,
	}, nil
}

// NewClientConfig maps the catalog section of the configuration onto the
// client settings.
func NewClientConfig(c config.CatalogConfig) catalog.ClientConfig {
	return catalog.ClientConfig{
		BaseURL:      c.BaseURL,
		ResourcePath: c.ResourcePath,
		Timeout:      c.Timeout,
		UserAgent:    c.UserAgent,
		MaxBodyBytes: c.MaxBodyBytes,
	}
}

// Start runs the HTTP server and blocks until ctx is cancelled or the
// server fails.
//
// Returns an error if the server fails to start or stop gracefully.
func (s *Server) Start(ctx context.Context) error {
	log.Info().
		Str("version", s.version).
		Str("catalog", s.client.Endpoint()).
		Int("page_size", s.cfg.Catalog.PageSize).
		Msg("Starting Herodex")

	// Buffered so the goroutine can exit even if nobody reads
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.http.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received, starting graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
