package reconcile

import (
	"context"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// EpisodeMatcher is the store access the reconciler needs: normalized title
// lookups, a date-scoped rescan, and the conditional audio URL write.
type EpisodeMatcher interface {
	// FindByNormalizedTitle returns episodes whose lower-trimmed stored
	// title equals normTitle on the given date, in primary key order.
	FindByNormalizedTitle(ctx context.Context, show catalog.Show, normTitle, date string) ([]models.Episode, error)

	// ListByDate returns every episode stored under the given date.
	ListByDate(ctx context.Context, show catalog.Show, date string) ([]models.Episode, error)

	// SetAudioURL writes url into the episode's mp3url column only if it
	// is currently empty. Returns true when a row was updated.
	SetAudioURL(ctx context.Context, show catalog.Show, id uint, url string) (bool, error)
}

// EpisodeReconciler is the boundary the scheduler and CLI call.
type EpisodeReconciler interface {
	Reconcile(ctx context.Context, show catalog.Show, entries []RssEntry, lookbackDays int) (int, error)
}
