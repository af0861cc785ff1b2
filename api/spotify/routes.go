package spotify

import (
	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
)

// RegisterRoutes registers Spotify lookup routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/spotify/episode-link - Resolve a title to a Spotify URL
	router.GET("/episode-link", GetEpisodeLink(deps))
}
