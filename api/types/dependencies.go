package types

import (
	"github.com/axe08/tmasearcher-api/internal/database"
	"github.com/axe08/tmasearcher-api/internal/services/comments"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
	"github.com/axe08/tmasearcher-api/internal/services/favorites"
	"github.com/axe08/tmasearcher-api/internal/services/likes"
	"github.com/axe08/tmasearcher-api/internal/services/search"
	"github.com/axe08/tmasearcher-api/internal/services/spotify"
	"github.com/axe08/tmasearcher-api/internal/services/users"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	EpisodeService  episodes.EpisodeService
	SearchService   search.EpisodeSearchService
	UserService     *users.Service
	FavoriteService favorites.FavoriteService
	CommentService  comments.CommentService
	LikeService     likes.LikeService
	SpotifyClient   *spotify.Client
}
