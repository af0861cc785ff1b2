package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartialRatio(t *testing.T) {
	assert.Equal(t, 100, partialRatio("hour 1", "hour 1"))
	// Substring of the longer title scores perfect.
	assert.Equal(t, 100, partialRatio("hour 1: opening segment", "hour 1"))
	assert.Greater(t, partialRatio("hour 1: opening segment", "hour 1: opening segmnt"), 80)
	assert.Less(t, partialRatio("hour 1: opening segment", "completely different"), 50)
	assert.Equal(t, 0, partialRatio("", "anything"))
}

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	tokenRequests := new(int)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		*tokenRequests++
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"access_token":"tok","expires_in":3600}`)
	})
	mux.HandleFunc("/shows/abc123/episodes", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"items":[
			{"id":"e1","name":"Hour 1: Opening Segment","release_date":"2023-05-10","external_urls":{"spotify":"https://open.spotify.com/episode/e1"}},
			{"id":"e2","name":"Hour 2: The Big Story","release_date":"2023-05-10","external_urls":{"spotify":"https://open.spotify.com/episode/e2"}}
		]}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, tokenRequests
}

func newTestClient(server *httptest.Server) *Client {
	return NewClient("id", "secret",
		WithAPIURL(server.URL),
		WithAuthURL(server.URL+"/api/token"),
	)
}

func TestClient_FindEpisodeURL(t *testing.T) {
	server, tokenRequests := newTestServer(t)
	client := newTestClient(server)

	url, err := client.FindEpisodeURL(context.Background(), "abc123", "Hour 1")
	require.NoError(t, err)
	assert.Equal(t, "https://open.spotify.com/episode/e1", url)

	_, err = client.FindEpisodeURL(context.Background(), "abc123", "Nothing Like This Title")
	assert.ErrorIs(t, err, ErrEpisodeNotFound)

	// Token is fetched once and reused.
	assert.Equal(t, 1, *tokenRequests)
}

func TestClient_AuthFailure(t *testing.T) {
	server, _ := newTestServer(t)
	client := NewClient("id", "wrong",
		WithAPIURL(server.URL),
		WithAuthURL(server.URL+"/api/token"),
	)

	_, err := client.FindEpisodeURL(context.Background(), "abc123", "Hour 1")
	assert.ErrorIs(t, err, ErrAuthFailed)
}
