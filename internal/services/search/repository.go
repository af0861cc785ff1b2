package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeSearcher interface
var _ EpisodeSearcher = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Search counts and fetches one page of matching episodes, most recent
// first. Rows sharing a date keep storage order; no secondary sort key is
// defined.
func (r *Repository) Search(ctx context.Context, show catalog.Show, filter *Filter, page, perPage int) ([]models.Episode, int64, error) {
	var total int64
	if err := filter.Scope(r.db.WithContext(ctx).Table(show.Table())).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting search results: %w", err)
	}

	var episodes []models.Episode
	offset := (page - 1) * perPage
	if err := filter.Scope(r.db.WithContext(ctx).Table(show.Table())).
		Order("date DESC").
		Limit(perPage).
		Offset(offset).
		Find(&episodes).Error; err != nil {
		return nil, 0, fmt.Errorf("searching episodes: %w", err)
	}

	return episodes, total, nil
}
