package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/admin"
	"github.com/axe08/tmasearcher-api/api/auth"
	"github.com/axe08/tmasearcher-api/api/comments"
	"github.com/axe08/tmasearcher-api/api/episodes"
	"github.com/axe08/tmasearcher-api/api/favorites"
	"github.com/axe08/tmasearcher-api/api/health"
	"github.com/axe08/tmasearcher-api/api/likes"
	"github.com/axe08/tmasearcher-api/api/search"
	"github.com/axe08/tmasearcher-api/api/spotify"
	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/api/version"
	commentsService "github.com/axe08/tmasearcher-api/internal/services/comments"
	episodesService "github.com/axe08/tmasearcher-api/internal/services/episodes"
	favoritesService "github.com/axe08/tmasearcher-api/internal/services/favorites"
	likesService "github.com/axe08/tmasearcher-api/internal/services/likes"
	searchService "github.com/axe08/tmasearcher-api/internal/services/search"
	spotifyService "github.com/axe08/tmasearcher-api/internal/services/spotify"
	usersService "github.com/axe08/tmasearcher-api/internal/services/users"
	"github.com/axe08/tmasearcher-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is required")
	}

	initializeServices(deps, cfg)

	v1 := engine.Group("/api/v1")

	// Search carries its own tighter rate limit (5 req/s, burst of 10)
	searchGroup := v1.Group("/search")
	searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	search.RegisterRoutes(searchGroup, deps)

	generalLimit := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)

	episodeGroup := v1.Group("/episodes")
	episodeGroup.Use(generalLimit)
	episodes.RegisterRoutes(episodeGroup, deps)

	authGroup := v1.Group("/auth")
	authGroup.Use(generalLimit)
	auth.RegisterRoutes(authGroup, deps)

	// Everything below requires a bearer token
	authed := auth.Middleware(deps)

	favoriteGroup := v1.Group("/favorites")
	favoriteGroup.Use(generalLimit, authed)
	favorites.RegisterRoutes(favoriteGroup, deps)

	commentGroup := v1.Group("/comments")
	commentGroup.Use(generalLimit, authed)
	comments.RegisterRoutes(commentGroup, deps)

	likeGroup := v1.Group("/likes")
	likeGroup.Use(generalLimit, authed)
	likes.RegisterRoutes(likeGroup, deps)

	// Spotify lookups hit an external API, keep them slow (2 req/s)
	spotifyGroup := v1.Group("/spotify")
	spotifyGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 2, 4))
	spotify.RegisterRoutes(spotifyGroup, deps)

	adminGroup := v1.Group("/admin")
	adminGroup.Use(generalLimit, authed, auth.AdminOnly())
	admin.RegisterRoutes(adminGroup, deps)

	return nil
}

// initializeServices fills in any services the caller did not inject.
func initializeServices(deps *types.Dependencies, cfg *config.Config) {
	db := deps.DB.DB

	if deps.EpisodeService == nil {
		deps.EpisodeService = episodesService.NewService(episodesService.NewRepository(db))
	}

	if deps.SearchService == nil {
		deps.SearchService = searchService.NewService(
			searchService.NewRepository(db),
			searchService.WithDefaultPerPage(cfg.Search.DefaultPerPage),
			searchService.WithMaxPerPage(cfg.Search.MaxPerPage),
		)
	}

	if deps.UserService == nil {
		deps.UserService = usersService.NewService(
			usersService.NewRepository(db),
			cfg.Auth.JWTSecret,
			usersService.WithTokenTTL(cfg.Auth.TokenTTL),
		)
	}

	episodeRepo := episodesService.NewRepository(db)
	if deps.FavoriteService == nil {
		deps.FavoriteService = favoritesService.NewService(favoritesService.NewRepository(db), episodeRepo)
	}
	if deps.CommentService == nil {
		deps.CommentService = commentsService.NewService(commentsService.NewRepository(db), episodeRepo)
	}
	if deps.LikeService == nil {
		deps.LikeService = likesService.NewService(db, episodeRepo)
	}

	if deps.SpotifyClient == nil {
		deps.SpotifyClient = spotifyService.NewClient(
			cfg.Spotify.ClientID,
			cfg.Spotify.ClientSecret,
			spotifyService.WithAPIURL(cfg.Spotify.APIURL),
			spotifyService.WithAuthURL(cfg.Spotify.AuthURL),
		)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
