package spotify

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
	spotifyService "github.com/axe08/tmasearcher-api/internal/services/spotify"
)

// GetEpisodeLink resolves an episode title to its open.spotify.com URL.
//
// Query parameters: showId (Spotify show ID), title.
func GetEpisodeLink(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Query("title")
		showID := c.Query("showId")
		if title == "" || showID == "" {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("showId and title are required"))
			return
		}

		url, err := deps.SpotifyClient.FindEpisodeURL(c.Request.Context(), showID, title)
		if err != nil {
			switch {
			case errors.Is(err, spotifyService.ErrEpisodeNotFound):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found on Spotify"))
			case errors.Is(err, spotifyService.ErrAuthFailed):
				log.Printf("[ERROR] Spotify auth: %v", err)
				c.JSON(http.StatusBadGateway, types.NewErrorResponse("Spotify authentication failed"))
			default:
				log.Printf("[ERROR] Spotify lookup for %q: %v", title, err)
				c.JSON(http.StatusBadGateway, types.NewErrorResponse("Failed to fetch data from Spotify"))
			}
			return
		}

		c.JSON(http.StatusOK, types.SpotifyLinkResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			SpotifyURL:   url,
		})
	}
}
