package comments

import (
	"context"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// CommentWithUser is a comment row joined with the author's username for
// display.
type CommentWithUser struct {
	models.Comment
	Username string `json:"username"`
}

// CommentRepository defines storage access for episode comments. Creating
// or deleting a comment also adjusts the episode's comments counter, in the
// same transaction.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment, show catalog.Show) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, comment *models.Comment, show catalog.Show) error
	ListByEpisode(ctx context.Context, show catalog.Show, episodeID uint) ([]CommentWithUser, error)
}

// CommentService is the boundary handlers call.
type CommentService interface {
	AddComment(ctx context.Context, userID uint, show catalog.Show, episodeID uint, text, timestampRef string) (*models.Comment, error)
	EditComment(ctx context.Context, userID, commentID uint, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uint, isAdmin bool) error
	EpisodeComments(ctx context.Context, show catalog.Show, episodeID uint) ([]CommentWithUser, error)
}
