package likes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/auth"
	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
	likesService "github.com/axe08/tmasearcher-api/internal/services/likes"
)

func bindLikeRequest(c *gin.Context) (catalog.Show, uint, bool) {
	var req types.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("podcast and episode_id are required"))
		return "", 0, false
	}

	show, err := catalog.ParseShow(req.Podcast)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
		return "", 0, false
	}
	return show, req.EpisodeID, true
}

// Add likes an episode
func Add(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		show, episodeID, ok := bindLikeRequest(c)
		if !ok {
			return
		}

		err := deps.LikeService.Like(c.Request.Context(), userID, show, episodeID)
		if err != nil {
			switch {
			case errors.Is(err, likesService.ErrAlreadyLiked):
				c.JSON(http.StatusConflict, types.NewErrorResponse("Episode already liked"))
			case episodes.IsNotFound(err):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found"))
			default:
				log.Printf("[ERROR] Liking episode for user %d: %v", userID, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to like episode"))
			}
			return
		}

		c.JSON(http.StatusCreated, types.BaseResponse{Status: types.StatusOK, Message: "Episode liked"})
	}
}

// Remove unlikes an episode
func Remove(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		show, episodeID, ok := bindLikeRequest(c)
		if !ok {
			return
		}

		err := deps.LikeService.Unlike(c.Request.Context(), userID, show, episodeID)
		if err != nil {
			if errors.Is(err, likesService.ErrLikeNotFound) {
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Like not found"))
				return
			}
			log.Printf("[ERROR] Unliking episode for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to unlike episode"))
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Like removed"})
	}
}
