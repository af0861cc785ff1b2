package search

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/axe08/tmasearcher-api/api/types"
	"github.com/axe08/tmasearcher-api/internal/catalog"
	searchService "github.com/axe08/tmasearcher-api/internal/services/search"
)

// Get runs an episode search over one show's collection.
//
// Query parameters: podcast (or the legacy currentPodcast), title, notes,
// date, match (all|any|exact), page, per_page.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast := c.Query("podcast")
		if podcast == "" {
			podcast = c.DefaultQuery("currentPodcast", "TMA")
		}

		show, err := catalog.ParseShow(podcast)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.NewErrorResponse("Unknown podcast"))
			return
		}

		mode := c.Query("match")
		if mode == "" {
			mode = c.Query("matchType")
		}

		query := searchService.Query{
			Title:   c.Query("title"),
			Notes:   c.Query("notes"),
			Date:    c.Query("date"),
			Mode:    searchService.ParseMatchMode(mode),
			Page:    intQuery(c, "page"),
			PerPage: intQuery(c, "per_page"),
		}

		result, err := deps.SearchService.Search(c.Request.Context(), show, query)
		if err != nil {
			if searchService.IsInvalidInput(err) {
				c.JSON(http.StatusBadRequest, types.NewErrorResponse(err.Error()))
				return
			}
			log.Printf("[ERROR] Search %s: %v", show, err)
			c.JSON(http.StatusInternalServerError, types.NewErrorResponse("Search failed"))
			return
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "ok"},
			Podcast:      string(show),
			Episodes:     result.Episodes,
			Total:        result.Total,
			Page:         result.Page,
			PerPage:      result.PerPage,
			TotalPages:   result.TotalPages,
			HasNext:      result.HasNext,
			HasPrev:      result.HasPrev,
		})
	}
}

// intQuery parses an integer query parameter, zero when absent or invalid.
func intQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
