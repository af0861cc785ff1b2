package models

import (
	"time"

	"gorm.io/gorm"
)

// Episode is one scraped podcast episode. Each show keeps its own episode
// table (TMA, Balloon, TMShow) with this layout; repositories select the
// table through catalog.Show, so the model carries no TableName of its own.
type Episode struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Title     string `json:"title" gorm:"not null"`
	Date      string `json:"date" gorm:"not null;index"` // YYYY-MM-DD
	URL       string `json:"url" gorm:"not null;unique"` // dedup key for ingestion
	ShowNotes string `json:"show_notes" gorm:"type:text"`

	// MP3URL is backfilled by the reconciler once the RSS feed publishes
	// the episode. Empty means not yet reconciled.
	MP3URL string `json:"mp3url" gorm:"column:mp3url"`

	// Engagement counters, maintained by the favorites/comments/likes
	// services via atomic increments.
	FavoritesCount int `json:"favorites_count" gorm:"default:0"`
	CommentsCount  int `json:"comments_count" gorm:"default:0"`
	LikesCount     int `json:"likes_count" gorm:"default:0"`
	StreamsCount   int `json:"streams_count" gorm:"default:0"`

	// ProcessedDate marks whether the tagging pipeline has consumed this
	// record. Owned by the tagger, not by this service.
	ProcessedDate *time.Time `json:"processed_date,omitempty"`
}

// User represents a user account
type User struct {
	gorm.Model
	Username     string     `json:"username" gorm:"uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	IsAdmin      bool       `json:"is_admin" gorm:"default:false"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Favorite marks an episode a user has saved.
type Favorite struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_fav_user_episode"`
	Show      string `json:"show" gorm:"not null;uniqueIndex:idx_fav_user_episode"`
	EpisodeID uint   `json:"episode_id" gorm:"not null;uniqueIndex:idx_fav_user_episode"`
	User      User   `json:"-" gorm:"foreignKey:UserID"`
}

// TableName keeps the table the admin tooling already knows.
func (Favorite) TableName() string { return "user_favorites" }

// Comment is a user comment on an episode.
type Comment struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	Show         string `json:"show" gorm:"not null;index"`
	EpisodeID    uint   `json:"episode_id" gorm:"not null;index"`
	CommentText  string `json:"comment_text" gorm:"type:text;not null"`
	TimestampRef string `json:"timestamp_ref"` // optional mm:ss position in the episode
	IsEdited     bool   `json:"is_edited" gorm:"default:false"`
	User         User   `json:"-" gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string { return "comments" }

// Like is a user like on an episode.
type Like struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_like_user_episode"`
	Show      string `json:"show" gorm:"not null;uniqueIndex:idx_like_user_episode"`
	EpisodeID uint   `json:"episode_id" gorm:"not null;uniqueIndex:idx_like_user_episode"`
	User      User   `json:"-" gorm:"foreignKey:UserID"`
}

func (Like) TableName() string { return "episode_likes" }
