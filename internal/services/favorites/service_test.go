package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/internal/services/episodes"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	for _, show := range catalog.All() {
		require.NoError(t, db.Table(show.Table()).AutoMigrate(&models.Episode{}))
	}
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Favorite{}))

	return db
}

func seedEpisode(t *testing.T, db *gorm.DB, show catalog.Show, url string) *models.Episode {
	ep := &models.Episode{Title: "Seeded", Date: "2023-05-10", URL: url}
	require.NoError(t, db.Table(show.Table()).Create(ep).Error)
	return ep
}

func TestService_AddAndRemoveFavorite(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), episodes.NewRepository(db))
	ep := seedEpisode(t, db, catalog.ShowTMA, "u1")

	err := svc.AddFavorite(context.Background(), 1, catalog.ShowTMA, ep.ID)
	require.NoError(t, err)

	// Duplicate add is rejected, counter stays at one.
	err = svc.AddFavorite(context.Background(), 1, catalog.ShowTMA, ep.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	var got models.Episode
	require.NoError(t, db.Table(catalog.ShowTMA.Table()).First(&got, ep.ID).Error)
	assert.Equal(t, 1, got.FavoritesCount)

	favs, err := svc.ListFavorites(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, ep.ID, favs[0].EpisodeID)
	assert.Equal(t, string(catalog.ShowTMA), favs[0].Show)

	require.NoError(t, svc.RemoveFavorite(context.Background(), 1, catalog.ShowTMA, ep.ID))
	require.NoError(t, db.Table(catalog.ShowTMA.Table()).First(&got, ep.ID).Error)
	assert.Equal(t, 0, got.FavoritesCount)

	err = svc.RemoveFavorite(context.Background(), 1, catalog.ShowTMA, ep.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestService_AddFavorite_MissingEpisode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), episodes.NewRepository(db))

	err := svc.AddFavorite(context.Background(), 1, catalog.ShowTMA, 999)
	assert.True(t, episodes.IsNotFound(err))

	err = svc.AddFavorite(context.Background(), 1, catalog.Show("nope"), 1)
	assert.Error(t, err)
}

func TestService_FavoritesScopedPerShow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db), episodes.NewRepository(db))

	tma := seedEpisode(t, db, catalog.ShowTMA, "u1")
	balloon := seedEpisode(t, db, catalog.ShowBalloon, "u1")

	// Same episode id in two shows is two distinct favorites.
	require.NoError(t, svc.AddFavorite(context.Background(), 1, catalog.ShowTMA, tma.ID))
	require.NoError(t, svc.AddFavorite(context.Background(), 1, catalog.ShowBalloon, balloon.ID))

	favs, err := svc.ListFavorites(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, favs, 2)
}
