package reconcile

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

// Ensure Repository implements EpisodeMatcher interface
var _ EpisodeMatcher = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByNormalizedTitle(ctx context.Context, show catalog.Show, normTitle, date string) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("LOWER(TRIM(title)) = ? AND date = ?", normTitle, date).
		Order("id ASC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("finding episode by normalized title: %w", err)
	}
	return episodes, nil
}

func (r *Repository) ListByDate(ctx context.Context, show catalog.Show, date string) ([]models.Episode, error) {
	var episodes []models.Episode
	if err := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("date = ?", date).
		Order("id ASC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes for date %s: %w", date, err)
	}
	return episodes, nil
}

// SetAudioURL is a check-and-set in one statement: the write only lands
// when the column is still empty, so concurrent runs cannot clobber each
// other and repeated runs are no-ops.
func (r *Repository) SetAudioURL(ctx context.Context, show catalog.Show, id uint, url string) (bool, error) {
	result := r.db.WithContext(ctx).
		Table(show.Table()).
		Where("id = ? AND (mp3url IS NULL OR mp3url = '')", id).
		Update("mp3url", url)
	if result.Error != nil {
		return false, fmt.Errorf("updating mp3url for episode %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
