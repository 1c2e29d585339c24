// Package api provides public endpoints for service health and connectivity.
//
// These endpoints are lightweight and never call the catalog, so load
// balancers and uptime monitors can poll them freely.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler manages public endpoints.
type Handler struct {
	version   string
	pageSize  int
	startTime time.Time
}

// NewHandler initializes a new public API handler.
//
// Parameters:
//   - version: Build version reported by Health
//   - pageSize: Configured catalog page size
func NewHandler(version string, pageSize int) *Handler {
	return &Handler{
		version:   version,
		pageSize:  pageSize,
		startTime: time.Now(),
	}
}

// Ping handles GET /api/ping
//
// Response:
//   - 200 OK with {"message": "pong"}
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// Health handles GET /api/health
//
// Reports process liveness only; the catalog is not probed.
//
// Response:
//   - 200 OK with status, uptime, version and page size
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startTime).String(),
		"version":   h.version,
		"page_size": h.pageSize,
	})
}
