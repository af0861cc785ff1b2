package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>TMA</title>
    <item>
      <title>Hour 1: Opening Segment</title>
      <pubDate>Wed, 10 May 2023 11:00:00 -0500</pubDate>
      <enclosure url="https://cdn.example.com/ep1.mp3" type="audio/mpeg" length="1234"/>
    </item>
    <item>
      <title>Hour 2: No Audio Yet</title>
      <pubDate>Wed, 10 May 2023 12:00:00 -0500</pubDate>
    </item>
  </channel>
</rss>`

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	fetcher := NewFetcher(WithUserAgent("tmasearcher-test"))
	entries, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Hour 1: Opening Segment", entries[0].Title)
	assert.Equal(t, "Wed, 10 May 2023 11:00:00 -0500", entries[0].Published)
	assert.Equal(t, "https://cdn.example.com/ep1.mp3", entries[0].AudioURL)

	// Items without an enclosure still come through for logging.
	assert.Equal(t, "Hour 2: No Audio Yet", entries[1].Title)
	assert.Empty(t, entries[1].AudioURL)
}

func TestFetcher_Fetch_BadURL(t *testing.T) {
	fetcher := NewFetcher()

	_, err := fetcher.Fetch(context.Background(), "")
	assert.Error(t, err)

	_, err = fetcher.Fetch(context.Background(), "http://127.0.0.1:1/feed")
	assert.Error(t, err)
}
