// Package rss fetches the show's podcast feed and flattens it into the
// entries the reconciler consumes.
package rss

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/axe08/tmasearcher-api/internal/services/reconcile"
)

const defaultTimeout = 30 * time.Second

// Fetcher downloads and parses a podcast RSS feed.
type Fetcher struct {
	parser    *gofeed.Parser
	userAgent string
}

// FetcherOption is a functional option for configuring the fetcher
type FetcherOption func(*Fetcher)

// WithUserAgent sets the User-Agent sent to the feed host.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{parser: gofeed.NewParser()}

	for _, opt := range opts {
		opt(f)
	}

	if f.userAgent != "" {
		f.parser.UserAgent = f.userAgent
	}
	return f
}

// Fetch downloads the feed and returns one entry per item. The published
// date is passed through raw; the reconciler owns date parsing. Items
// without an enclosure still come back, with an empty AudioURL.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]reconcile.RssEntry, error) {
	if strings.TrimSpace(feedURL) == "" {
		return nil, fmt.Errorf("feed URL must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", feedURL, err)
	}

	entries := make([]reconcile.RssEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, reconcile.RssEntry{
			Title:     item.Title,
			Published: item.Published,
			AudioURL:  enclosureURL(item),
		})
	}
	return entries, nil
}

// enclosureURL prefers an audio enclosure, falling back to the first one.
func enclosureURL(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "audio/") {
			return enc.URL
		}
	}
	if len(item.Enclosures) > 0 {
		return item.Enclosures[0].URL
	}
	return ""
}
