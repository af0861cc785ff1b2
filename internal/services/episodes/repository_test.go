package episodes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	for _, show := range catalog.All() {
		err = db.Table(show.Table()).AutoMigrate(&models.Episode{})
		require.NoError(t, err)
	}

	return db
}

func TestRepository_CreateAndExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{
		Title:     "Hour 1: Opening Segment",
		Date:      "2023-05-10",
		URL:       "https://example.com/ep1",
		ShowNotes: "Opening segment notes",
	}

	err := repo.CreateEpisode(context.Background(), catalog.ShowTMA, episode)
	require.NoError(t, err)
	assert.NotZero(t, episode.ID)

	exists, err := repo.ExistsByURL(context.Background(), catalog.ShowTMA, "https://example.com/ep1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByURL(context.Background(), catalog.ShowTMA, "https://example.com/other")
	require.NoError(t, err)
	assert.False(t, exists)

	// Same URL, different show: independent collections.
	exists, err = repo.ExistsByURL(context.Background(), catalog.ShowBalloon, "https://example.com/ep1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_GetEpisodeByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{Title: "Get Test", Date: "2023-05-10", URL: "u1"}
	require.NoError(t, repo.CreateEpisode(context.Background(), catalog.ShowTMA, episode))

	retrieved, err := repo.GetEpisodeByID(context.Background(), catalog.ShowTMA, episode.ID)
	require.NoError(t, err)
	assert.Equal(t, episode.Title, retrieved.Title)

	_, err = repo.GetEpisodeByID(context.Background(), catalog.ShowTMA, 999999)
	assert.True(t, IsNotFound(err))
}

func TestRepository_ListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for _, ep := range []models.Episode{
		{Title: "New", Date: "2023-05-10", URL: "u1"},
		{Title: "Older", Date: "2023-05-01", URL: "u2"},
		{Title: "Ancient", Date: "2022-01-01", URL: "u3"},
	} {
		e := ep
		require.NoError(t, repo.CreateEpisode(context.Background(), catalog.ShowTMA, &e))
	}

	episodes, err := repo.ListRecent(context.Background(), catalog.ShowTMA, "2023-04-15")
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, "New", episodes[0].Title)
	assert.Equal(t, "Older", episodes[1].Title)
}

func TestRepository_List_SearchAndPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for _, ep := range []models.Episode{
		{Title: "Cardinals Recap", Date: "2023-05-10", URL: "u1"},
		{Title: "Blues Recap", Date: "2023-05-11", URL: "u2"},
		{Title: "Cardinals Preview", Date: "2023-05-12", URL: "u3"},
	} {
		e := ep
		require.NoError(t, repo.CreateEpisode(context.Background(), catalog.ShowTMA, &e))
	}

	episodes, total, err := repo.List(context.Background(), catalog.ShowTMA, "Cardinals", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, episodes, 2)

	episodes, total, err = repo.List(context.Background(), catalog.ShowTMA, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, episodes, 1)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{Title: "Original", Date: "2023-05-10", URL: "u1"}
	require.NoError(t, repo.CreateEpisode(context.Background(), catalog.ShowTMA, episode))

	episode.Title = "Edited"
	episode.MP3URL = "http://a.mp3"
	require.NoError(t, repo.UpdateEpisode(context.Background(), catalog.ShowTMA, episode))

	retrieved, err := repo.GetEpisodeByID(context.Background(), catalog.ShowTMA, episode.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", retrieved.Title)
	assert.Equal(t, "http://a.mp3", retrieved.MP3URL)

	require.NoError(t, repo.DeleteEpisode(context.Background(), catalog.ShowTMA, episode.ID))
	_, err = repo.GetEpisodeByID(context.Background(), catalog.ShowTMA, episode.ID)
	assert.True(t, IsNotFound(err))

	err = repo.DeleteEpisode(context.Background(), catalog.ShowTMA, episode.ID)
	assert.True(t, IsNotFound(err))
}

func TestRepository_AdjustCounter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	episode := &models.Episode{Title: "Counted", Date: "2023-05-10", URL: "u1"}
	require.NoError(t, repo.CreateEpisode(context.Background(), catalog.ShowTMA, episode))

	require.NoError(t, repo.AdjustCounter(context.Background(), catalog.ShowTMA, episode.ID, CounterLikes, 1))
	require.NoError(t, repo.AdjustCounter(context.Background(), catalog.ShowTMA, episode.ID, CounterLikes, 1))
	require.NoError(t, repo.AdjustCounter(context.Background(), catalog.ShowTMA, episode.ID, CounterLikes, -1))

	retrieved, err := repo.GetEpisodeByID(context.Background(), catalog.ShowTMA, episode.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, retrieved.LikesCount)

	err = repo.AdjustCounter(context.Background(), catalog.ShowTMA, episode.ID, Counter("bogus"), 1)
	assert.Error(t, err)
}

func TestService_RecentEpisodesWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	for _, ep := range []models.Episode{
		{Title: "Inside", Date: "2023-05-10", URL: "u1"},
		{Title: "Outside", Date: "2023-03-01", URL: "u2"},
	} {
		e := ep
		require.NoError(t, repo.CreateEpisode(context.Background(), catalog.ShowTMA, &e))
	}

	now, _ := time.Parse("2006-01-02", "2023-05-20")
	svc := NewService(repo, WithClock(func() time.Time { return now }))

	episodes, err := svc.RecentEpisodes(context.Background(), catalog.ShowTMA)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Inside", episodes[0].Title)
}
