package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

const listingPage = `<html><body>
<div class="col-10 px-3 align-self-center">
  <h2 class="post-title"><a href="https://www.tmastl.com/episode/hour-1">Hour 1: Opening Segment</a></h2>
  <div class="byline"><time>May 10, 2023</time></div>
  <div class="the_content">
    <p>Opening segment notes.</p>
    <p>Learn more about your ad choices. Visit megaphone.fm/adchoices</p>
  </div>
</div>
<div class="col-10 px-3 align-self-center">
  <h2 class="post-title"><a href="https://www.tmastl.com/episode/hour-2">Hour 2: The Big Story</a></h2>
  <div class="byline"><time>May 10, 2023</time></div>
  <div class="the_content"><p>Big story notes.</p></div>
</div>
<div class="col-10 px-3 align-self-center">
  <h2 class="post-title"><a href="https://www.tmastl.com/episode/broken">Broken Card</a></h2>
  <div class="byline"><time>not a date</time></div>
  <div class="the_content"><p>Never inserted.</p></div>
</div>
</body></html>`

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	for _, show := range catalog.All() {
		require.NoError(t, db.Table(show.Table()).AutoMigrate(&models.Episode{}))
	}
	return db
}

func TestScraper_Scrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/podcasts/the-morning-after/")
		if r.URL.Query().Get("episode_page") != "1" {
			fmt.Fprint(w, "<html><body></body></html>")
			return
		}
		fmt.Fprint(w, listingPage)
	}))
	defer server.Close()

	db := setupTestDB(t)
	repo := episodes.NewRepository(db)
	scraper := NewScraper(repo, server.URL, WithPageDelay(0))

	result, err := scraper.Scrape(context.Background(), catalog.ShowTMA, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PagesFetched)
	assert.Equal(t, 2, result.Seen) // broken card is skipped before counting
	assert.Equal(t, 2, result.Inserted)

	eps, err := repo.ListAll(context.Background(), catalog.ShowTMA)
	require.NoError(t, err)
	require.Len(t, eps, 2)

	byURL := map[string]models.Episode{}
	for _, ep := range eps {
		byURL[ep.URL] = ep
	}

	hour1 := byURL["https://www.tmastl.com/episode/hour-1"]
	assert.Equal(t, "Hour 1: Opening Segment", hour1.Title)
	assert.Equal(t, "2023-05-10", hour1.Date)
	assert.Equal(t, "Opening segment notes.", hour1.ShowNotes)
	assert.NotContains(t, hour1.ShowNotes, "ad choices")

	// Re-running inserts nothing new.
	result, err = scraper.Scrape(context.Background(), catalog.ShowTMA, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 2, result.Seen)
}

func TestScraper_Scrape_EmptyPageStops(t *testing.T) {
	var pagesServed int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		fmt.Fprint(w, "<html><body></body></html>")
	}))
	defer server.Close()

	db := setupTestDB(t)
	scraper := NewScraper(episodes.NewRepository(db), server.URL, WithPageDelay(0))

	result, err := scraper.Scrape(context.Background(), catalog.ShowTMA, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, pagesServed)
	assert.Equal(t, 1, result.PagesFetched)
	assert.Equal(t, 0, result.Inserted)
}

func TestScraper_Scrape_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	db := setupTestDB(t)
	scraper := NewScraper(episodes.NewRepository(db), server.URL, WithPageDelay(0))

	_, err := scraper.Scrape(context.Background(), catalog.ShowTMA, 1)
	assert.Error(t, err)
}

func TestScraper_Scrape_InvalidShow(t *testing.T) {
	db := setupTestDB(t)
	scraper := NewScraper(episodes.NewRepository(db), "http://example.com")

	_, err := scraper.Scrape(context.Background(), catalog.Show("nope"), 1)
	assert.Error(t, err)
}
