package comments

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements CommentRepository interface
var _ CommentRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the comment and bumps the episode's counter atomically.
func (r *Repository) Create(ctx context.Context, comment *models.Comment, show catalog.Show) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("creating comment: %w", err)
		}
		if err := tx.Table(show.Table()).
			Where("id = ?", comment.EpisodeID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error; err != nil {
			return fmt.Errorf("incrementing comments count: %w", err)
		}
		return nil
	})
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("getting comment: %w", err)
	}
	return &comment, nil
}

func (r *Repository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).
		Model(comment).
		Updates(map[string]any{
			"comment_text": comment.CommentText,
			"is_edited":    true,
		}).Error; err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	return nil
}

// Delete removes the comment and decrements the episode's counter.
func (r *Repository) Delete(ctx context.Context, comment *models.Comment, show catalog.Show) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Comment{}, comment.ID)
		if result.Error != nil {
			return fmt.Errorf("deleting comment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCommentNotFound
		}
		if err := tx.Table(show.Table()).
			Where("id = ? AND comments_count > 0", comment.EpisodeID).
			Update("comments_count", gorm.Expr("comments_count - 1")).Error; err != nil {
			return fmt.Errorf("decrementing comments count: %w", err)
		}
		return nil
	})
}

func (r *Repository) ListByEpisode(ctx context.Context, show catalog.Show, episodeID uint) ([]CommentWithUser, error) {
	var rows []CommentWithUser
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Select("comments.*, users.username AS username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.show = ? AND comments.episode_id = ?", string(show), episodeID).
		Order("comments.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return rows, nil
}
