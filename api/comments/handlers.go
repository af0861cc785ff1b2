package comments

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/auth"
	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	commentsService "github.com/axe08/tmasearcher-api/internal/services/comments"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

// Post adds a comment to an episode
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		var req types.CommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("podcast, episode_id, and comment_text are required"))
			return
		}

		show, err := catalog.ParseShow(req.Podcast)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		comment, err := deps.CommentService.AddComment(c.Request.Context(), userID, show, req.EpisodeID, req.CommentText, req.TimestampRef)
		if err != nil {
			switch {
			case errors.Is(err, commentsService.ErrEmptyComment):
				c.JSON(http.StatusBadRequest, types.NewErrorResponse("Comment text must not be empty"))
			case episodes.IsNotFound(err):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Episode not found"))
			default:
				log.Printf("[ERROR] Adding comment for user %d: %v", userID, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to add comment"))
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  types.StatusOK,
			"comment": comment,
		})
	}
}

// Put edits the caller's comment
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)

		commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid comment ID"))
			return
		}

		var req types.CommentEditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("comment_text is required"))
			return
		}

		comment, err := deps.CommentService.EditComment(c.Request.Context(), userID, uint(commentID), req.CommentText)
		if err != nil {
			switch {
			case errors.Is(err, commentsService.ErrCommentNotFound):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Comment not found"))
			case errors.Is(err, commentsService.ErrNotCommentOwner):
				c.JSON(http.StatusForbidden, types.NewErrorResponse("You can only edit your own comments"))
			case errors.Is(err, commentsService.ErrEmptyComment):
				c.JSON(http.StatusBadRequest, types.NewErrorResponse("Comment text must not be empty"))
			default:
				log.Printf("[ERROR] Editing comment %d: %v", commentID, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to edit comment"))
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"comment": comment,
		})
	}
}

// Delete removes a comment; authors delete their own, admins any
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint(auth.ContextUserID)
		isAdmin := c.GetBool(auth.ContextIsAdmin)

		commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Invalid comment ID"))
			return
		}

		err = deps.CommentService.DeleteComment(c.Request.Context(), userID, uint(commentID), isAdmin)
		if err != nil {
			switch {
			case errors.Is(err, commentsService.ErrCommentNotFound):
				c.JSON(http.StatusNotFound, types.NewErrorResponse("Comment not found"))
			case errors.Is(err, commentsService.ErrNotCommentOwner):
				c.JSON(http.StatusForbidden, types.NewErrorResponse("You can only delete your own comments"))
			default:
				log.Printf("[ERROR] Deleting comment %d: %v", commentID, err)
				c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Failed to delete comment"))
			}
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Comment deleted"})
	}
}
