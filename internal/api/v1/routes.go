package v1

import (
	"herodex/internal/api/v1/characters"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures API routes.
func SetupRoutes(routerGroup *gin.RouterGroup, source characters.Source, pageSize int) {
	charactersHandler := characters.NewHandler(source, pageSize)

	charactersGroup := routerGroup.Group("/characters")
	{
		charactersGroup.GET("", charactersHandler.List)
	}
}
