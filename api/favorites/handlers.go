package favorites

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/auth"
	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
	favoritesService "github.com/axe08/tmasearcher-api/internal/services/favorites"
)

// List returns the caller's saved episodes
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		favs, err := deps.FavoriteService.ListFavorites(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[ERROR] Listing favorites for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to fetch favorites"))
			return
		}

		c.JSON(http.StatusOK, types.FavoritesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			Favorites:    favs,
			Count:        len(favs),
		})
	}
}

// Add saves an episode for the caller
func Add(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		var req types.FavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("podcast and episode_id are required"))
			return
		}

		show, err := catalog.ParseShow(req.Podcast)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		err = deps.FavoriteService.AddFavorite(c.Request.Context(), userID, show, req.EpisodeID)
		if err != nil {
			switch {
			case errors.Is(err, favoritesService.ErrAlreadyFavorited):
				c.JSON(http.StatusConflict, types.NewErrorResponse("Episode already favorited"))
			case episodes.IsNotFound(err):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found"))
			default:
				log.Printf("[ERROR] Adding favorite for user %d: %v", userID, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to add favorite"))
			}
			return
		}

		c.JSON(http.StatusCreated, types.BaseResponse{Status: types.StatusOK, Message: "Episode favorited"})
	}
}

// Remove deletes a saved episode for the caller
func Remove(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		var req types.FavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("podcast and episode_id are required"))
			return
		}

		show, err := catalog.ParseShow(req.Podcast)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		err = deps.FavoriteService.RemoveFavorite(c.Request.Context(), userID, show, req.EpisodeID)
		if err != nil {
			if errors.Is(err, favoritesService.ErrFavoriteNotFound) {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Favorite not found"))
				return
			}
			log.Printf("[ERROR] Removing favorite for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to remove favorite"))
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Favorite removed"})
	}
}
