package episodes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	episodesService "github.com/axe08/tmasearcher-api/internal/services/episodes"
)

// parseShow resolves the :podcast path segment, writing the error response
// itself on failure.
func parseShow(c *gin.Context) (catalog.Show, bool) {
	show, err := catalog.ParseShow(c.Param("podcast"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
		return "", false
	}
	return show, true
}

func parseEpisodeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid episode ID"))
		return 0, false
	}
	return uint(id), true
}

// GetRecent returns the show's episodes from the recency window
func GetRecent(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, ok := parseShow(c)
		if !ok {
			return
		}

		eps, err := deps.EpisodeService.RecentEpisodes(c.Request.Context(), show)
		if err != nil {
			log.Printf("[ERROR] Recent episodes for %s: %v", show, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch episodes"))
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			Podcast:      string(show),
			Episodes:     eps,
			Count:        len(eps),
		})
	}
}

// GetCatalog returns the show's full episode list, newest first
func GetCatalog(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, ok := parseShow(c)
		if !ok {
			return
		}

		eps, err := deps.EpisodeService.CatalogEpisodes(c.Request.Context(), show)
		if err != nil {
			log.Printf("[ERROR] Catalog for %s: %v", show, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch episodes"))
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			Podcast:      string(show),
			Episodes:     eps,
			Count:        len(eps),
		})
	}
}

// GetByID returns a single episode
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, ok := parseShow(c)
		if !ok {
			return
		}
		id, ok := parseEpisodeID(c)
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.GetEpisodeByID(c.Request.Context(), show, id)
		if err != nil {
			if episodesService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found"))
				return
			}
			log.Printf("[ERROR] Episode %s/%d: %v", show, id, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch episode"))
			return
		}

		c.JSON(http.StatusOK, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			Episode:      episode,
		})
	}
}

// GetComments returns an episode's comments with usernames
func GetComments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, ok := parseShow(c)
		if !ok {
			return
		}
		id, ok := parseEpisodeID(c)
		if !ok {
			return
		}

		rows, err := deps.CommentService.EpisodeComments(c.Request.Context(), show, id)
		if err != nil {
			log.Printf("[ERROR] Comments for %s/%d: %v", show, id, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch comments"))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   types.StatusOK,
			"comments": rows,
			"count":    len(rows),
		})
	}
}
