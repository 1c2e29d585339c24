// Package api provides the HTTP surface of Herodex using the Gin framework.
//
// It serves the character browser page at "/", a small JSON API under
// "/api" and the embedded static assets.
//
// Example usage:
//
//	server, err := api.NewServer(cfg.Server, client, cfg.Catalog.PageSize, version)
//	err = server.Start()
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"herodex/internal/api/web"
	"herodex/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// Server represents the HTTP server.
type Server struct {
	config   config.ServerConfig
	source   web.Source
	pageSize int
	version  string
	router   *gin.Engine
	handler  http.Handler
	server   *http.Server
}

// NewServer creates a new HTTP server instance.
//
// Parameters:
//   - cfg: Server configuration containing address and timeout settings
//   - source: Catalog used by the page and the JSON API
//   - pageSize: Number of characters per page
//   - version: Build version reported by /api/health
//
// Returns:
//   - *Server: Initialized server instance
//   - error: Template parsing failure
func NewServer(cfg config.ServerConfig, source web.Source, pageSize int, version string) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	server := &Server{
		config:   cfg,
		source:   source,
		pageSize: pageSize,
		version:  version,
		router:   gin.New(),
	}

	server.setupMiddleware()
	if err := server.setupRoutes(); err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}

	server.handler = server.router
	if cfg.EnableCORS {
		server.handler = cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", HeaderRequestID},
			ExposedHeaders: []string{HeaderRequestID},
			MaxAge:         86400,
		}).Handler(server.router)
	}

	server.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return server, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server and blocks until it stops.
//
// Returns:
//   - error: Any error that occurred during server startup
func (s *Server) Start() error {
	log.Info().
		Str("addr", s.server.Addr).
		Bool("cors", s.config.EnableCORS).
		Msg("Starting HTTP server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
//
// Parameters:
//   - ctx: Context for shutdown timeout
//
// Returns:
//   - error: Any error that occurred during shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// setupMiddleware configures middleware for the Gin router.
func (s *Server) setupMiddleware() {
	// Request ID middleware (should be first)
	s.router.Use(RequestID())

	// Logger sits outside recovery so recovered panics are logged as 500s
	s.router.Use(LoggerMiddleware())

	s.router.Use(PanicRecovery())

	s.router.Use(SecurityHeaders())
}
