package search

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
	searchService "github.com/axe08/tmasearcher-api/internal/services/search"
)

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	for _, show := range catalog.All() {
		require.NoError(t, db.Table(show.Table()).AutoMigrate(&models.Episode{}))
	}

	for _, ep := range []models.Episode{
		{Title: "Hour 1: Cardinals Recap", Date: "2023-05-10", URL: "u1"},
		{Title: "Hour 2: Blues Talk", Date: "2023-05-10", URL: "u2"},
		{Title: "Hour 1: Cardinals Preview", Date: "2023-06-01", URL: "u3"},
	} {
		e := ep
		require.NoError(t, db.Table(catalog.ShowTMA.Table()).Create(&e).Error)
	}

	deps := &types.Dependencies{
		SearchService: searchService.NewService(searchService.NewRepository(db)),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/search"), deps)
	return router
}

func doSearch(t *testing.T, router *gin.Engine, rawQuery string) (int, types.SearchResponse) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?"+rawQuery, nil)
	router.ServeHTTP(w, req)

	var resp types.SearchResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestGet_TitleSearch(t *testing.T) {
	router := setupRouter(t)

	code, resp := doSearch(t, router, "podcast=TMA&title=cardinals")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), resp.Total)
	assert.Len(t, resp.Episodes, 2)
	// Newest first.
	assert.Equal(t, "2023-06-01", resp.Episodes[0].Date)
}

func TestGet_DateAndPagination(t *testing.T) {
	router := setupRouter(t)

	code, resp := doSearch(t, router, "podcast=TMA&date=2023-05&per_page=1&page=2")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(2), resp.Total)
	assert.Len(t, resp.Episodes, 1)
	assert.Equal(t, 2, resp.TotalPages)
	assert.True(t, resp.HasPrev)
	assert.False(t, resp.HasNext)
}

func TestGet_LegacyPodcastParam(t *testing.T) {
	router := setupRouter(t)

	// Display name through the legacy parameter still resolves.
	code, resp := doSearch(t, router, "currentPodcast=The+Morning+After&title=blues")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "TMA", resp.Podcast)
	assert.Equal(t, int64(1), resp.Total)
}

func TestGet_UnknownPodcast(t *testing.T) {
	router := setupRouter(t)

	code, _ := doSearch(t, router, "podcast=Nonsense&title=x")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGet_PerPageTooLarge(t *testing.T) {
	router := setupRouter(t)

	code, _ := doSearch(t, router, "podcast=TMA&per_page=5000")
	assert.Equal(t, http.StatusBadRequest, code)
}
