package comments

import (
	"context"
	"fmt"
	"strings"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

const maxCommentChars = 2000

// Service manages episode comments and keeps episode counters in step.
type Service struct {
	repo     CommentRepository
	episodes episodes.EpisodeRepository
}

// Ensure Service implements CommentService interface
var _ CommentService = (*Service)(nil)

func NewService(repo CommentRepository, episodeRepo episodes.EpisodeRepository) *Service {
	return &Service{repo: repo, episodes: episodeRepo}
}

// AddComment posts a comment on an episode. The episode must exist in the
// show's collection.
func (s *Service) AddComment(ctx context.Context, userID uint, show catalog.Show, episodeID uint, text, timestampRef string) (*models.Comment, error) {
	if !show.Valid() {
		return nil, fmt.Errorf("unknown show %q", show)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	if len(text) > maxCommentChars {
		return nil, fmt.Errorf("comment exceeds %d characters", maxCommentChars)
	}
	if _, err := s.episodes.GetEpisodeByID(ctx, show, episodeID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:       userID,
		Show:         string(show),
		EpisodeID:    episodeID,
		CommentText:  text,
		TimestampRef: strings.TrimSpace(timestampRef),
	}
	if err := s.repo.Create(ctx, comment, show); err != nil {
		return nil, err
	}
	return comment, nil
}

// EditComment rewrites a comment's text. Only the author may edit.
func (s *Service) EditComment(ctx context.Context, userID, commentID uint, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, ErrNotCommentOwner
	}

	comment.CommentText = text
	comment.IsEdited = true
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The author can delete their own;
// admins can delete any.
func (s *Service) DeleteComment(ctx context.Context, userID, commentID uint, isAdmin bool) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID && !isAdmin {
		return ErrNotCommentOwner
	}
	return s.repo.Delete(ctx, comment, catalog.Show(comment.Show))
}

func (s *Service) EpisodeComments(ctx context.Context, show catalog.Show, episodeID uint) ([]CommentWithUser, error) {
	if !show.Valid() {
		return nil, fmt.Errorf("unknown show %q", show)
	}
	return s.repo.ListByEpisode(ctx, show, episodeID)
}
