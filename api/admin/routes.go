package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers admin routes. The group must already carry the
// auth and admin-only middleware.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/admin/stats - Catalog and engagement totals
	router.GET("/stats", Stats(deps))

	// GET /api/v1/admin/episodes/:podcast - Paged episode table
	router.GET("/episodes/:podcast", ListEpisodes(deps))

	// PUT /api/v1/admin/episodes/:podcast/:id - Edit an episode
	router.PUT("/episodes/:podcast/:id", UpdateEpisode(deps))

	// DELETE /api/v1/admin/episodes/:podcast/:id - Remove an episode
	router.DELETE("/episodes/:podcast/:id", DeleteEpisode(deps))
}
