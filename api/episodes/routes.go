package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/episodes/:podcast - Full catalog, newest first
	router.GET("/:podcast", GetCatalog(deps))

	// GET /api/v1/episodes/:podcast/recent - Episodes in the recency window
	router.GET("/:podcast/recent", GetRecent(deps))

	// GET /api/v1/episodes/:podcast/:id - Episode details
	router.GET("/:podcast/:id", GetByID(deps))

	// GET /api/v1/episodes/:podcast/:id/comments - Episode comments
	router.GET("/:podcast/:id/comments", GetComments(deps))
}
