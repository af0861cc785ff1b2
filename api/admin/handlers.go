package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	episodesService "github.com/axe08/tmasearcher-api/internal/services/episodes"
)

// Stats summarizes the catalog and engagement tables for the dashboard
func Stats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts := make(map[string]int64, len(catalog.All()))
		for _, show := range catalog.All() {
			var n int64
			if err := deps.DB.DB.Table(show.Table()).Count(&n).Error; err != nil {
				log.Printf("[ERROR] Counting %s episodes: %v", show, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to gather stats"))
				return
			}
			counts[string(show)] = n
		}

		var userCount, commentCount, favoriteCount int64
		deps.DB.DB.Model(&models.User{}).Count(&userCount)
		deps.DB.DB.Model(&models.Comment{}).Count(&commentCount)
		deps.DB.DB.Model(&models.Favorite{}).Count(&favoriteCount)

		c.JSON(http.StatusOK, types.AdminStatsResponse{
			BaseResponse:  types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			EpisodeCounts: counts,
			UserCount:     userCount,
			CommentCount:  commentCount,
			FavoriteCount: favoriteCount,
		})
	}
}

// ListEpisodes pages through a show's episodes for the admin table.
//
// Query parameters: search (matches title or date), page, per_page.
func ListEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, err := catalog.ParseShow(c.Param("podcast"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "25"))

		eps, total, err := deps.EpisodeService.ListEpisodes(c.Request.Context(), show, c.Query("search"), page, perPage)
		if err != nil {
			log.Printf("[ERROR] Admin list for %s: %v", show, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to list episodes"))
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			Podcast:      string(show),
			Episodes:     eps,
			Count:        len(eps),
			Total:        total,
		})
	}
}

// UpdateEpisode edits episode fields from the admin screen
func UpdateEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, err := catalog.ParseShow(c.Param("podcast"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid episode ID"))
			return
		}

		var req types.EpisodeUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid request body"))
			return
		}

		episode, err := deps.EpisodeService.GetEpisodeByID(c.Request.Context(), show, uint(id))
		if err != nil {
			if episodesService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found"))
				return
			}
			log.Printf("[ERROR] Admin fetch %s/%d: %v", show, id, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch episode"))
			return
		}

		if req.Title != nil {
			episode.Title = *req.Title
		}
		if req.Date != nil {
			episode.Date = *req.Date
		}
		if req.ShowNotes != nil {
			episode.ShowNotes = *req.ShowNotes
		}
		if req.MP3URL != nil {
			episode.MP3URL = *req.MP3URL
		}

		if err := deps.EpisodeService.UpdateEpisode(c.Request.Context(), show, episode); err != nil {
			log.Printf("[ERROR] Admin update %s/%d: %v", show, id, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to update episode"))
			return
		}

		c.JSON(http.StatusOK, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Episode updated"},
			Episode:      episode,
		})
	}
}

// DeleteEpisode removes an episode from a show's collection
func DeleteEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		show, err := catalog.ParseShow(c.Param("podcast"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid episode ID"))
			return
		}

		if err := deps.EpisodeService.DeleteEpisode(c.Request.Context(), show, uint(id)); err != nil {
			if episodesService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found"))
				return
			}
			log.Printf("[ERROR] Admin delete %s/%d: %v", show, id, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to delete episode"))
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Episode deleted"})
	}
}
