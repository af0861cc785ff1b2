package episodes

import (
	"context"
	"time"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// Constants for default configuration
const (
	DefaultRecentWindowDays = 30
)

// Service implements the EpisodeService interface with business logic
type Service struct {
	repo             EpisodeRepository
	recentWindowDays int
	now              func() time.Time
}

var _ EpisodeService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithRecentWindow sets the trailing window for RecentEpisodes.
func WithRecentWindow(days int) ServiceOption {
	return func(s *Service) {
		if days > 0 {
			s.recentWindowDays = days
		}
	}
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new episode service with optional configuration
func NewService(repo EpisodeRepository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:             repo,
		recentWindowDays: DefaultRecentWindowDays,
		now:              time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) GetEpisodeByID(ctx context.Context, show catalog.Show, id uint) (*models.Episode, error) {
	if !show.Valid() {
		return nil, NewValidationError("podcast", "unknown podcast identifier")
	}
	return s.repo.GetEpisodeByID(ctx, show, id)
}

// RecentEpisodes returns the trailing window of episodes, most recent
// first.
func (s *Service) RecentEpisodes(ctx context.Context, show catalog.Show) ([]models.Episode, error) {
	if !show.Valid() {
		return nil, NewValidationError("podcast", "unknown podcast identifier")
	}
	since := s.now().AddDate(0, 0, -s.recentWindowDays).Format("2006-01-02")
	return s.repo.ListRecent(ctx, show, since)
}

// CatalogEpisodes returns the show's full catalog, most recent first.
func (s *Service) CatalogEpisodes(ctx context.Context, show catalog.Show) ([]models.Episode, error) {
	if !show.Valid() {
		return nil, NewValidationError("podcast", "unknown podcast identifier")
	}
	return s.repo.ListAll(ctx, show)
}

func (s *Service) ListEpisodes(ctx context.Context, show catalog.Show, search string, page, limit int) ([]models.Episode, int64, error) {
	if !show.Valid() {
		return nil, 0, NewValidationError("podcast", "unknown podcast identifier")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 30
	}
	return s.repo.List(ctx, show, search, page, limit)
}

func (s *Service) UpdateEpisode(ctx context.Context, show catalog.Show, episode *models.Episode) error {
	if !show.Valid() {
		return NewValidationError("podcast", "unknown podcast identifier")
	}
	if episode.Title == "" {
		return NewValidationError("title", "title must not be empty")
	}
	return s.repo.UpdateEpisode(ctx, show, episode)
}

func (s *Service) DeleteEpisode(ctx context.Context, show catalog.Show, id uint) error {
	if !show.Valid() {
		return NewValidationError("podcast", "unknown podcast identifier")
	}
	return s.repo.DeleteEpisode(ctx, show, id)
}
