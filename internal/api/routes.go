package api

import (
	"net/http"

	"herodex/internal/api/types"
	v1 "herodex/internal/api/v1"
	"herodex/internal/api/web"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures page and API routes.
func (s *Server) setupRoutes() error {
	baseHandler := NewHandler(s.version, s.pageSize)

	// Base api router group
	apiGroup := s.router.Group("/api")
	apiGroup.GET("/ping", baseHandler.Ping)
	apiGroup.GET("/health", baseHandler.Health)

	v1Group := apiGroup.Group("/v1")
	v1.SetupRoutes(v1Group, s.source, s.pageSize)

	// Character browser and its static assets
	if err := web.SetupRoutes(s.router, s.source, s.pageSize); err != nil {
		return err
	}

	s.router.NoRoute(func(c *gin.Context) {
		if isAPIPath(c.Request.URL.Path) {
			c.JSON(http.StatusNotFound, types.NotFoundErrorResponse("endpoint"))
			return
		}
		c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	return nil
}
