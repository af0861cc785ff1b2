package episodes

import (
	"context"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// Counter names one of the denormalized engagement counters on an episode
// row. The column mapping is a fixed switch, never caller text.
type Counter string

const (
	CounterFavorites Counter = "favorites"
	CounterComments  Counter = "comments"
	CounterLikes     Counter = "likes"
	CounterStreams   Counter = "streams"
)

func (c Counter) column() string {
	switch c {
	case CounterFavorites:
		return "favorites_count"
	case CounterComments:
		return "comments_count"
	case CounterLikes:
		return "likes_count"
	case CounterStreams:
		return "streams_count"
	}
	return ""
}

// EpisodeRepository defines storage access for episode records.
type EpisodeRepository interface {
	CreateEpisode(ctx context.Context, show catalog.Show, episode *models.Episode) error
	ExistsByURL(ctx context.Context, show catalog.Show, url string) (bool, error)
	GetEpisodeByID(ctx context.Context, show catalog.Show, id uint) (*models.Episode, error)
	ListRecent(ctx context.Context, show catalog.Show, since string) ([]models.Episode, error)
	ListAll(ctx context.Context, show catalog.Show) ([]models.Episode, error)
	List(ctx context.Context, show catalog.Show, search string, page, limit int) ([]models.Episode, int64, error)
	UpdateEpisode(ctx context.Context, show catalog.Show, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, show catalog.Show, id uint) error
	AdjustCounter(ctx context.Context, show catalog.Show, id uint, counter Counter, delta int) error
}

// EpisodeService is the boundary handlers call for catalog reads and admin
// edits.
type EpisodeService interface {
	GetEpisodeByID(ctx context.Context, show catalog.Show, id uint) (*models.Episode, error)
	RecentEpisodes(ctx context.Context, show catalog.Show) ([]models.Episode, error)
	CatalogEpisodes(ctx context.Context, show catalog.Show) ([]models.Episode, error)
	ListEpisodes(ctx context.Context, show catalog.Show, search string, page, limit int) ([]models.Episode, int64, error)
	UpdateEpisode(ctx context.Context, show catalog.Show, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, show catalog.Show, id uint) error
}
