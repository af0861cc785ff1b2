package likes

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers like routes. The group must already carry the
// auth middleware.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/likes - Like an episode
	router.POST("", Add(deps))

	// DELETE /api/v1/likes - Remove a like
	router.DELETE("", Remove(deps))
}
