package reconcile

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

// fixedClock pins "today" so lookback windows are deterministic.
func fixedClock(date string) func() time.Time {
	ts, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return ts }
}

func seed(t *testing.T, db *gorm.DB, eps ...models.Episode) {
	for i := range eps {
		require.NoError(t, db.Table(catalog.ShowTMA.Table()).Create(&eps[i]).Error)
	}
}

func getEpisode(t *testing.T, db *gorm.DB, url string) models.Episode {
	var ep models.Episode
	require.NoError(t, db.Table(catalog.ShowTMA.Table()).Where("url = ?", url).First(&ep).Error)
	return ep
}

func TestReconcile_BackfillsAudioURL(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Episode{Title: "Tim's Big Show", Date: "2023-05-10", URL: "u1"})

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{{
		Title:     "Tim’s Big Show",
		Published: "Wed, 10 May 2023 08:00:00 -0000",
		AudioURL:  "http://a.mp3",
	}}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "http://a.mp3", getEpisode(t, db, "u1").MP3URL)

	// Second identical run makes zero changes.
	updated, err = svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Equal(t, "http://a.mp3", getEpisode(t, db, "u1").MP3URL)
}

func TestReconcile_FirstWriteWins(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Episode{Title: "Hour 1", Date: "2023-05-10", URL: "u1", MP3URL: "http://original.mp3"})

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{{
		Title:     "Hour 1",
		Published: "Wed, 10 May 2023 08:00:00 -0000",
		AudioURL:  "http://different.mp3",
	}}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Equal(t, "http://original.mp3", getEpisode(t, db, "u1").MP3URL)
}

func TestReconcile_LookbackWindow(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Episode{Title: "Recent", Date: "2023-05-18", URL: "u1"},
		models.Episode{Title: "Ancient", Date: "2023-01-01", URL: "u2"},
	)

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{
		{Title: "Recent", Published: "Thu, 18 May 2023 08:00:00 -0000", AudioURL: "http://recent.mp3"},
		{Title: "Ancient", Published: "Sun, 01 Jan 2023 08:00:00 -0000", AudioURL: "http://ancient.mp3"},
	}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "http://recent.mp3", getEpisode(t, db, "u1").MP3URL)
	assert.Empty(t, getEpisode(t, db, "u2").MP3URL)
}

func TestReconcile_NormalizedTitleMatching(t *testing.T) {
	// Stored title uses typographic punctuation, the feed emits ASCII
	// variants. The date-scoped rescan catches what the SQL lookup cannot.
	db := setupTestDB(t)
	seed(t, db, models.Episode{Title: "Don’t Stop — Part 1…", Date: "2023-05-10", URL: "u1"})

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{{
		Title:     "Don't stop - part 1...",
		Published: "Wed, 10 May 2023 08:00:00 -0000",
		AudioURL:  "http://a.mp3",
	}}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "http://a.mp3", getEpisode(t, db, "u1").MP3URL)
}

func TestReconcile_MissIsNotFatal(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Episode{Title: "Stored Episode", Date: "2023-05-10", URL: "u1"})

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{
		{Title: "Never Scraped", Published: "Wed, 10 May 2023 08:00:00 -0000", AudioURL: "http://x.mp3"},
		{Title: "Stored Episode", Published: "Wed, 10 May 2023 08:00:00 -0000", AudioURL: "http://a.mp3"},
	}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestReconcile_UnparseableDateSkipped(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Episode{Title: "Fine", Date: "2023-05-10", URL: "u1"})

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{
		{Title: "Broken", Published: "not a date", AudioURL: "http://x.mp3"},
		{Title: "Fine", Published: "Wed, 10 May 2023 08:00:00 -0000", AudioURL: "http://a.mp3"},
	}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestReconcile_NoEnclosureNoWrite(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Episode{Title: "Hour 1", Date: "2023-05-10", URL: "u1"})

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{{Title: "Hour 1", Published: "Wed, 10 May 2023 08:00:00 -0000"}}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Empty(t, getEpisode(t, db, "u1").MP3URL)
}

func TestReconcile_DuplicateTitlesSameDay(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Episode{Title: "Best Of", Date: "2023-05-10", URL: "u1"},
		models.Episode{Title: "Best Of", Date: "2023-05-10", URL: "u2"},
	)

	svc := NewService(NewRepository(db), WithClock(fixedClock("2023-05-20")))
	entries := []RssEntry{{
		Title:     "Best Of",
		Published: "Wed, 10 May 2023 08:00:00 -0000",
		AudioURL:  "http://a.mp3",
	}}

	updated, err := svc.Reconcile(context.Background(), catalog.ShowTMA, entries, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	// The first row by id receives the URL; the second is untouched.
	assert.Equal(t, "http://a.mp3", getEpisode(t, db, "u1").MP3URL)
	assert.Empty(t, getEpisode(t, db, "u2").MP3URL)
}

func TestReconcile_InvalidShow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(NewRepository(db))

	_, err := svc.Reconcile(context.Background(), catalog.Show("bogus"), nil, 3)
	assert.Error(t, err)
}

func TestParsePubDate(t *testing.T) {
	got, err := parsePubDate("Wed, 10 May 2023 08:00:00 -0000")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-10", got)

	got, err = parsePubDate("Wed, 10 May 2023 08:00:00 GMT")
	require.NoError(t, err)
	assert.Equal(t, "2023-05-10", got)

	_, err = parsePubDate("2023-05-10")
	assert.Error(t, err)
}
