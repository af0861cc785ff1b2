package search

import (
	"context"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// EpisodeSearcher runs a compiled filter against one show's episode
// collection and returns a page of matches plus the total match count.
type EpisodeSearcher interface {
	Search(ctx context.Context, show catalog.Show, filter *Filter, page, perPage int) ([]models.Episode, int64, error)
}

// EpisodeSearchService is the boundary the serving layer calls.
type EpisodeSearchService interface {
	Search(ctx context.Context, show catalog.Show, q Query) (*Result, error)
}
