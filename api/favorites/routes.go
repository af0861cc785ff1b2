package favorites

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers favorite routes. The group must already carry
// the auth middleware.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/favorites - Caller's saved episodes
	router.GET("", List(deps))

	// POST /api/v1/favorites - Save an episode
	router.POST("", Add(deps))

	// DELETE /api/v1/favorites - Unsave an episode
	router.DELETE("", Remove(deps))
}
