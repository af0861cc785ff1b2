package types

// RegisterRequest creates a new account
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FavoriteRequest marks or unmarks an episode
type FavoriteRequest struct {
	Podcast   string `json:"podcast" binding:"required"`
	EpisodeID uint   `json:"episode_id" binding:"required"`
}

// CommentRequest posts a comment on an episode
type CommentRequest struct {
	Podcast      string `json:"podcast" binding:"required"`
	EpisodeID    uint   `json:"episode_id" binding:"required"`
	CommentText  string `json:"comment_text" binding:"required"`
	TimestampRef string `json:"timestamp_ref"`
}

// CommentEditRequest rewrites an existing comment
type CommentEditRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}

// LikeRequest likes or unlikes an episode
type LikeRequest struct {
	Podcast   string `json:"podcast" binding:"required"`
	EpisodeID uint   `json:"episode_id" binding:"required"`
}

// EpisodeUpdateRequest edits episode fields from the admin screen
type EpisodeUpdateRequest struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	ShowNotes *string `json:"show_notes"`
	MP3URL    *string `json:"mp3url"`
}
