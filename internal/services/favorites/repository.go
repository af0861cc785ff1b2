package favorites

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

// Ensure Repository implements FavoriteRepository interface
var _ FavoriteRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts the favorite row and bumps the episode's counter atomically.
func (r *Repository) Add(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Favorite{}).
			Where("user_id = ? AND show = ? AND episode_id = ?", userID, string(show), episodeID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking favorite: %w", err)
		}
		if count > 0 {
			return ErrAlreadyFavorited
		}

		fav := models.Favorite{UserID: userID, Show: string(show), EpisodeID: episodeID}
		if err := tx.Create(&fav).Error; err != nil {
			return fmt.Errorf("creating favorite: %w", err)
		}

		if err := tx.Table(show.Table()).
			Where("id = ?", episodeID).
			Update("favorites_count", gorm.Expr("favorites_count + 1")).Error; err != nil {
			return fmt.Errorf("incrementing favorites count: %w", err)
		}
		return nil
	})
}

// Remove deletes the favorite row and decrements the episode's counter.
func (r *Repository) Remove(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND show = ? AND episode_id = ?", userID, string(show), episodeID).
			Delete(&models.Favorite{})
		if result.Error != nil {
			return fmt.Errorf("deleting favorite: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrFavoriteNotFound
		}

		if err := tx.Table(show.Table()).
			Where("id = ? AND favorites_count > 0", episodeID).
			Update("favorites_count", gorm.Expr("favorites_count - 1")).Error; err != nil {
			return fmt.Errorf("decrementing favorites count: %w", err)
		}
		return nil
	})
}

func (r *Repository) Exists(ctx context.Context, userID uint, show catalog.Show, episodeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND show = ? AND episode_id = ?", userID, string(show), episodeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error) {
	var favs []models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	return favs, nil
}
