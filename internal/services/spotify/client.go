// Package spotify resolves episode links through the Spotify Web API using
// app-level client-credentials auth.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// matchThreshold is the minimum fuzzy score for an episode title to
	// count as the same episode.
	matchThreshold = 80

	defaultEpisodeLimit = 50
)

var (
	ErrEpisodeNotFound = fmt.Errorf("episode not found on Spotify")
	ErrAuthFailed      = fmt.Errorf("spotify authentication failed")
)

// Episode is the slice of the Spotify episode object we use.
type Episode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	Description string `json:"description"`
	ExternalURL struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

// Client talks to the Spotify Web API. Tokens are cached until shortly
// before expiry.
type Client struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	apiURL       string
	authURL      string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithAPIURL overrides the Web API base URL.
func WithAPIURL(apiURL string) ClientOption {
	return func(c *Client) {
		if apiURL != "" {
			c.apiURL = strings.TrimRight(apiURL, "/")
		}
	}
}

// WithAuthURL overrides the token endpoint.
func WithAuthURL(authURL string) ClientOption {
	return func(c *Client) {
		if authURL != "" {
			c.authURL = authURL
		}
	}
}

func NewClient(clientID, clientSecret string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		clientID:     clientID,
		clientSecret: clientSecret,
		apiURL:       "https://api.spotify.com/v1",
		authURL:      "https://accounts.spotify.com/api/token",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// accessToken returns a cached token or fetches a fresh one with the
// client-credentials grant.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", ErrAuthFailed
	}

	c.token = payload.AccessToken
	// Renew a minute early so in-flight requests never carry a stale token.
	c.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - time.Minute)
	return c.token, nil
}

// ShowEpisodes lists up to limit episodes of a Spotify show, newest first.
func (c *Client) ShowEpisodes(ctx context.Context, showID string, limit int) ([]Episode, error) {
	if limit < 1 || limit > defaultEpisodeLimit {
		limit = defaultEpisodeLimit
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/shows/%s/episodes?market=US&limit=%d", c.apiURL, url.PathEscape(showID), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building episodes request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching episodes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching episodes: status %d", resp.StatusCode)
	}

	var payload struct {
		Items []Episode `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding episodes response: %w", err)
	}
	return payload.Items, nil
}

// FindEpisodeURL looks for an episode of the show whose name fuzzily
// matches title and returns its open.spotify.com link. Returns
// ErrEpisodeNotFound when nothing clears the match threshold.
func (c *Client) FindEpisodeURL(ctx context.Context, showID, title string) (string, error) {
	items, err := c.ShowEpisodes(ctx, showID, defaultEpisodeLimit)
	if err != nil {
		return "", err
	}

	needle := strings.ToLower(title)
	for _, item := range items {
		if partialRatio(strings.ToLower(item.Name), needle) > matchThreshold {
			return item.ExternalURL.Spotify, nil
		}
	}
	return "", ErrEpisodeNotFound
}
