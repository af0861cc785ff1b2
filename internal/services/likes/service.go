package likes

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

// LikeService is the boundary handlers call.
type LikeService interface {
	Like(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error
	Unlike(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error
	HasLiked(ctx context.Context, userID uint, show catalog.Show, episodeID uint) (bool, error)
}

// Service records per-user likes and keeps the denormalized likes counter
// on the episode row in step.
type Service struct {
	db       *gorm.DB
	episodes episodes.EpisodeRepository
}

// Ensure Service implements LikeService interface
var _ LikeService = (*Service)(nil)

func NewService(db *gorm.DB, episodeRepo episodes.EpisodeRepository) *Service {
	return &Service{db: db, episodes: episodeRepo}
}

func (s *Service) Like(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error {
	if !show.Valid() {
		return fmt.Errorf("unknown show %q", show)
	}
	if _, err := s.episodes.GetEpisodeByID(ctx, show, episodeID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Like{}).
			Where("user_id = ? AND show = ? AND episode_id = ?", userID, string(show), episodeID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking like: %w", err)
		}
		if count > 0 {
			return ErrAlreadyLiked
		}

		like := models.Like{UserID: userID, Show: string(show), EpisodeID: episodeID}
		if err := tx.Create(&like).Error; err != nil {
			return fmt.Errorf("creating like: %w", err)
		}

		if err := tx.Table(show.Table()).
			Where("id = ?", episodeID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
			return fmt.Errorf("incrementing likes count: %w", err)
		}
		return nil
	})
}

func (s *Service) Unlike(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error {
	if !show.Valid() {
		return fmt.Errorf("unknown show %q", show)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND show = ? AND episode_id = ?", userID, string(show), episodeID).
			Delete(&models.Like{})
		if result.Error != nil {
			return fmt.Errorf("deleting like: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrLikeNotFound
		}

		if err := tx.Table(show.Table()).
			Where("id = ? AND likes_count > 0", episodeID).
			Update("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
			return fmt.Errorf("decrementing likes count: %w", err)
		}
		return nil
	})
}

func (s *Service) HasLiked(ctx context.Context, userID uint, show catalog.Show, episodeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND show = ? AND episode_id = ?", userID, string(show), episodeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking like: %w", err)
	}
	return count > 0, nil
}
