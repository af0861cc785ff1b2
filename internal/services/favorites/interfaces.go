package favorites

import (
	"context"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// FavoriteRepository defines storage access for user favorites. Adding or
// removing a favorite also adjusts the episode's favorites counter, in the
// same transaction.
type FavoriteRepository interface {
	Add(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error
	Remove(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error
	Exists(ctx context.Context, userID uint, show catalog.Show, episodeID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Favorite, error)
}

// FavoriteService is the boundary handlers call.
type FavoriteService interface {
	AddFavorite(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error
	RemoveFavorite(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error
	ListFavorites(ctx context.Context, userID uint) ([]models.Favorite, error)
}
