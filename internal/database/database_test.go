package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

func TestInitialize(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.HealthCheck())
}

func TestMigrate_CreatesPerShowTables(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())

	for _, show := range catalog.All() {
		assert.True(t, db.Migrator().HasTable(show.Table()), "expected table %s", show.Table())
	}
	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable("user_favorites"))
	assert.True(t, db.Migrator().HasTable("comments"))
	assert.True(t, db.Migrator().HasTable("episode_likes"))
}

func TestMigrate_EpisodeRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := Initialize(dbPath, false)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	ep := models.Episode{
		Title:     "Hour 1: Opening Segment",
		Date:      "2024-01-15",
		URL:       "https://example.com/ep1",
		ShowNotes: "Notes",
	}
	require.NoError(t, db.Table(catalog.ShowTMA.Table()).Create(&ep).Error)
	assert.NotZero(t, ep.ID)

	// The same URL in a different show's table is not a conflict.
	other := models.Episode{Title: "Hour 1: Opening Segment", Date: "2024-01-15", URL: "https://example.com/ep1"}
	assert.NoError(t, db.Table(catalog.ShowBalloon.Table()).Create(&other).Error)

	// A duplicate URL within the same table is.
	dup := models.Episode{Title: "Duplicate", Date: "2024-01-16", URL: "https://example.com/ep1"}
	assert.Error(t, db.Table(catalog.ShowTMA.Table()).Create(&dup).Error)
}
