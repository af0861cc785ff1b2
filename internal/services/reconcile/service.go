package reconcile

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/pkg/normalize"
)

// Service matches freshly published RSS entries against already-stored
// scraped episodes and backfills the audio URL the scrape cannot see. Only
// the mp3url field is ever written; records are never created or deleted
// here.
type Service struct {
	repo EpisodeMatcher
	now  func() time.Time
}

var _ EpisodeReconciler = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithClock overrides the time source, used by tests to pin the lookback
// window.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new reconcile service
func NewService(repo EpisodeMatcher, opts ...ServiceOption) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// pubDateLayouts are the RFC-822 style layouts feeds actually emit.
var pubDateLayouts = []string{
	time.RFC1123Z, // Mon, 02 Jan 2006 15:04:05 -0700
	time.RFC1123,  // Mon, 02 Jan 2006 15:04:05 MST
	"02 Jan 2006 15:04:05 -0700",
	"02 Jan 2006 15:04:05 MST",
}

// parsePubDate converts an RFC-822 published string to the stored
// YYYY-MM-DD form.
func parsePubDate(published string) (string, error) {
	for _, layout := range pubDateLayouts {
		if ts, err := time.Parse(layout, published); err == nil {
			return ts.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized published date %q", published)
}

// Reconcile processes the feed entries published within the trailing
// lookback window and returns how many stored episodes received an audio
// URL. Individual entry failures are logged and skipped; they never abort
// the batch.
func (s *Service) Reconcile(ctx context.Context, show catalog.Show, entries []RssEntry, lookbackDays int) (int, error) {
	if !show.Valid() {
		return 0, fmt.Errorf("unknown show %q", string(show))
	}
	if lookbackDays < 0 {
		return 0, fmt.Errorf("lookback days must not be negative")
	}

	cutoff := s.now().AddDate(0, 0, -lookbackDays).Format("2006-01-02")

	var updated int
	for _, entry := range entries {
		pubDate, err := parsePubDate(entry.Published)
		if err != nil {
			log.Printf("[WARN] Skipping entry %q: %v", entry.Title, err)
			continue
		}

		// Historical episodes are already covered by the scraper; the
		// feed is only consulted for recent backfill.
		if pubDate < cutoff {
			continue
		}

		normTitle := normalize.Title(entry.Title)

		match, err := s.findMatch(ctx, show, normTitle, pubDate)
		if err != nil {
			log.Printf("[ERROR] Lookup failed for %q on %s: %v", normTitle, pubDate, err)
			continue
		}
		if match == nil {
			log.Printf("[INFO] No match found for RSS title %q on date %s", normTitle, pubDate)
			continue
		}

		if entry.AudioURL == "" || match.MP3URL != "" {
			// Nothing to write: the feed has no enclosure, or an earlier
			// run already set the URL (first write wins).
			continue
		}

		wrote, err := s.repo.SetAudioURL(ctx, show, match.ID, entry.AudioURL)
		if err != nil {
			log.Printf("[ERROR] Failed to update mp3url for episode %d: %v", match.ID, err)
			continue
		}
		if wrote {
			log.Printf("[INFO] Updated mp3url for %q (%s)", match.Title, pubDate)
			updated++
		}
	}

	return updated, nil
}

// findMatch locates the stored episode for a normalized title and date.
// The store-side lookup only lower-trims, so a feed title whose dash or
// apostrophe glyphs differ from the scraped one falls through to a rescan
// of that date's rows with full normalization applied on both sides.
func (s *Service) findMatch(ctx context.Context, show catalog.Show, normTitle, date string) (*models.Episode, error) {
	matches, err := s.repo.FindByNormalizedTitle(ctx, show, normTitle, date)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		sameDay, err := s.repo.ListByDate(ctx, show, date)
		if err != nil {
			return nil, err
		}
		for i := range sameDay {
			if normalize.Title(sameDay[i].Title) == normTitle {
				matches = append(matches, sameDay[i])
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
	default:
		// No tie-break is defined for duplicate titles on the same day;
		// the first row wins and the collision is surfaced in the log.
		log.Printf("[WARN] %d episodes share title %q on %s, updating the first", len(matches), normTitle, date)
	}

	return &matches[0], nil
}
