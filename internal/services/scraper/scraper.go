// Package scraper pulls episode listings off the station site and inserts
// new episodes into the show's collection.
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

const (
	// listingDateLayout matches the byline on the station's episode cards.
	listingDateLayout = "January 2, 2006"

	// adChoicesBoilerplate is appended to every set of show notes by the
	// feed host; it carries no episode information.
	adChoicesBoilerplate = "Learn more about your ad choices. Visit megaphone.fm/adchoices"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:94.0) Gecko/20100101 Firefox/94.0"
	defaultPageDelay = 3 * time.Second
)

// Scraper fetches episode listing pages and records new episodes.
type Scraper struct {
	repo      episodes.EpisodeRepository
	client    *http.Client
	baseURL   string
	userAgent string
	pageDelay time.Duration
}

// ScraperOption is a functional option for configuring the scraper
type ScraperOption func(*Scraper)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) ScraperOption {
	return func(s *Scraper) {
		if client != nil {
			s.client = client
		}
	}
}

// WithUserAgent sets the User-Agent sent to the station site.
func WithUserAgent(ua string) ScraperOption {
	return func(s *Scraper) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// WithPageDelay sets the pause between listing pages.
func WithPageDelay(d time.Duration) ScraperOption {
	return func(s *Scraper) {
		if d >= 0 {
			s.pageDelay = d
		}
	}
}

// NewScraper creates a new scraper rooted at baseURL, e.g.
// "https://www.tmastl.com".
func NewScraper(repo episodes.EpisodeRepository, baseURL string, opts ...ScraperOption) *Scraper {
	s := &Scraper{
		repo:      repo,
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		pageDelay: defaultPageDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Result summarizes one scrape run.
type Result struct {
	PagesFetched int
	Seen         int
	Inserted     int
}

// Scrape walks up to maxPages listing pages for the show, newest first, and
// inserts episodes not yet recorded. The episode URL is the dedup key, so
// re-running over pages already scraped is harmless. A page that fails to
// fetch ends the run with whatever was inserted so far.
func (s *Scraper) Scrape(ctx context.Context, show catalog.Show, maxPages int) (*Result, error) {
	if !show.Valid() {
		return nil, fmt.Errorf("unknown show %q", show)
	}
	if maxPages < 1 {
		maxPages = 1
	}

	result := &Result{}
	for pageNum := 1; pageNum <= maxPages; pageNum++ {
		if pageNum > 1 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.pageDelay):
			}
		}

		pageURL := fmt.Sprintf("%s/podcasts/%s/?episode_page=%d", s.baseURL, show.Slug(), pageNum)
		doc, err := s.fetchPage(ctx, pageURL)
		if err != nil {
			log.Printf("[ERROR] Scrape %s page %d: %v", show, pageNum, err)
			return result, err
		}
		result.PagesFetched++

		cards := doc.Find("div.col-10.px-3.align-self-center")
		if cards.Length() == 0 {
			// Past the last page of listings.
			break
		}

		cards.Each(func(_ int, card *goquery.Selection) {
			episode, err := parseCard(card)
			if err != nil {
				log.Printf("[WARN] Skipping episode card on page %d: %v", pageNum, err)
				return
			}
			result.Seen++

			exists, err := s.repo.ExistsByURL(ctx, show, episode.URL)
			if err != nil {
				log.Printf("[ERROR] Checking %s: %v", episode.URL, err)
				return
			}
			if exists {
				return
			}

			if err := s.repo.CreateEpisode(ctx, show, episode); err != nil {
				log.Printf("[ERROR] Inserting %q: %v", episode.Title, err)
				return
			}
			result.Inserted++
			log.Printf("[INFO] Scraped new episode: %s (%s)", episode.Title, episode.Date)
		})
	}

	log.Printf("[INFO] Scrape %s finished: %d pages, %d seen, %d inserted",
		show, result.PagesFetched, result.Seen, result.Inserted)
	return result, nil
}

func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pageURL, err)
	}
	return doc, nil
}

// parseCard extracts one episode from a listing card.
func parseCard(card *goquery.Selection) (*models.Episode, error) {
	link := card.Find(".post-title a").First()
	title := strings.TrimSpace(link.Text())
	href, ok := link.Attr("href")
	if title == "" || !ok || href == "" {
		return nil, fmt.Errorf("card has no title link")
	}

	rawDate := strings.TrimSpace(card.Find(".byline time").First().Text())
	date, err := convertListingDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("episode %q: %w", title, err)
	}

	notes := cleanShowNotes(card.Find(".the_content").First())

	return &models.Episode{
		Title:     title,
		Date:      date,
		URL:       href,
		ShowNotes: notes,
	}, nil
}

// convertListingDate turns "May 10, 2023" into "2023-05-10".
func convertListingDate(raw string) (string, error) {
	t, err := time.Parse(listingDateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", raw, err)
	}
	return t.Format("2006-01-02"), nil
}

// cleanShowNotes flattens the notes block to newline-separated text and
// strips the ad-choices boilerplate.
func cleanShowNotes(content *goquery.Selection) string {
	var lines []string
	content.Find("p, li").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	notes := strings.Join(lines, "\n")
	if notes == "" {
		notes = strings.TrimSpace(content.Text())
	}
	notes = strings.ReplaceAll(notes, adChoicesBoilerplate, "")
	return strings.TrimSpace(notes)
}
