package episodes

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

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateEpisode(ctx context.Context, show catalog.Show, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Table(show.Table()).Create(episode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("episode with URL %s already exists", episode.URL)
		}
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

func (r *Repository) ExistsByURL(ctx context.Context, show catalog.Show, url string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("url = ?", url).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking episode existence: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) GetEpisodeByID(ctx context.Context, show catalog.Show, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("id = ?", id).
		First(&episode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("episode", id)
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

func (r *Repository) ListRecent(ctx context.Context, show catalog.Show, since string) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("date >= ?", since).
		Order("date DESC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("getting recent episodes: %w", err)
	}
	return episodes, nil
}

func (r *Repository) ListAll(ctx context.Context, show catalog.Show) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Table(show.Table()).
		Order("date DESC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	return episodes, nil
}

// List returns one admin page of episodes, optionally filtered by a simple
// title-or-date substring.
func (r *Repository) List(ctx context.Context, show catalog.Show, search string, page, limit int) ([]models.Episode, int64, error) {
	query := r.db.WithContext(ctx).Table(show.Table())
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR date LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting episodes: %w", err)
	}

	var episodes []models.Episode
	offset := (page - 1) * limit
	if err := query.
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&episodes).Error; err != nil {
		return nil, 0, fmt.Errorf("getting episodes: %w", err)
	}

	return episodes, total, nil
}

func (r *Repository) UpdateEpisode(ctx context.Context, show catalog.Show, episode *models.Episode) error {
	result := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("id = ?", episode.ID).
		Updates(map[string]any{
			"title":      episode.Title,
			"date":       episode.Date,
			"url":        episode.URL,
			"show_notes": episode.ShowNotes,
			"mp3url":     episode.MP3URL,
		})
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("episode", episode.ID)
	}
	return nil
}

func (r *Repository) DeleteEpisode(ctx context.Context, show catalog.Show, id uint) error {
	result := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("id = ?", id).
		Delete(&models.Episode{})
	if result.Error != nil {
		return fmt.Errorf("deleting episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("episode", id)
	}
	return nil
}

// AdjustCounter applies an atomic increment to one engagement counter.
func (r *Repository) AdjustCounter(ctx context.Context, show catalog.Show, id uint, counter Counter, delta int) error {
	column := counter.column()
	if column == "" {
		return NewValidationError("counter", "unknown counter")
	}

	result := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("adjusting %s for episode %d: %w", column, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return NewNotFoundError("episode", id)
	}
	return nil
}
