package types

import "github.com/axe08/tmasearcher-api/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewErrorResponse builds the standard error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}

// SearchResponse for the episode search endpoint
type SearchResponse struct {
	BaseResponse
	Podcast    string           `json:"podcast"`
	Episodes   []models.Episode `json:"episodes"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Podcast  string           `json:"podcast"`
	Episodes []models.Episode `json:"episodes"`
	Count    int              `json:"count"`
	Total    int64            `json:"total,omitempty"`
}

// SingleEpisodeResponse for getting a single episode
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *models.Episode `json:"episode"`
}

// AuthResponse for register and login
type AuthResponse struct {
	BaseResponse
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// FavoritesResponse for a user's saved episodes
type FavoritesResponse struct {
	BaseResponse
	Favorites []models.Favorite `json:"favorites"`
	Count     int               `json:"count"`
}

// SpotifyLinkResponse for the episode link lookup
type SpotifyLinkResponse struct {
	BaseResponse
	SpotifyURL string `json:"spotifyUrl"`
}

// AdminStatsResponse summarizes the catalog for the admin dashboard
type AdminStatsResponse struct {
	BaseResponse
	EpisodeCounts map[string]int64 `json:"episode_counts"`
	UserCount     int64            `json:"user_count"`
	CommentCount  int64            `json:"comment_count"`
	FavoriteCount int64            `json:"favorite_count"`
}
