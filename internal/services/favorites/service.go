package favorites

import (
	"context"
	"fmt"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

// Service manages user favorites and keeps episode counters in step.
type Service struct {
	repo     FavoriteRepository
	episodes episodes.EpisodeRepository
}

// Ensure Service implements FavoriteService interface
var _ FavoriteService = (*Service)(nil)

func NewService(repo FavoriteRepository, episodeRepo episodes.EpisodeRepository) *Service {
	return &Service{repo: repo, episodes: episodeRepo}
}

// AddFavorite saves an episode for a user. The episode must exist in the
// show's collection.
func (s *Service) AddFavorite(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error {
	if !show.Valid() {
		return fmt.Errorf("unknown show %q", show)
	}
	if _, err := s.episodes.GetEpisodeByID(ctx, show, episodeID); err != nil {
		return err
	}
	return s.repo.Add(ctx, userID, show, episodeID)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID uint, show catalog.Show, episodeID uint) error {
	if !show.Valid() {
		return fmt.Errorf("unknown show %q", show)
	}
	return s.repo.Remove(ctx, userID, show, episodeID)
}

func (s *Service) ListFavorites(ctx context.Context, userID uint) ([]models.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}
