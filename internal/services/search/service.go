package search

import (
	"context"

	"github.com/axe08/tmasearcher-api/internal/catalog"
	"github.com/axe08/tmasearcher-api/internal/models"
)

// Constants for default configuration
const (
	DefaultPerPage    = 20
	DefaultMaxPerPage = 100
)

// Result is one page of search matches plus the pagination metadata the
// serving layer needs.
type Result struct {
	Episodes   []models.Episode
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Service implements EpisodeSearchService.
type Service struct {
	repo           EpisodeSearcher
	defaultPerPage int
	maxPerPage     int
}

var _ EpisodeSearchService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithDefaultPerPage sets the page size used when the caller supplies none.
func WithDefaultPerPage(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.defaultPerPage = n
		}
	}
}

// WithMaxPerPage sets the largest page size a caller may request.
func WithMaxPerPage(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxPerPage = n
		}
	}
}

// NewService creates a new search service with optional configuration
func NewService(repo EpisodeSearcher, opts ...ServiceOption) *Service {
	s := &Service{
		repo:           repo,
		defaultPerPage: DefaultPerPage,
		maxPerPage:     DefaultMaxPerPage,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Search validates the request, compiles the filter, and returns one page
// of matches. A store failure aborts this query only; it is never retried
// here. An empty result set is a normal zero-count result, not an error.
func (s *Service) Search(ctx context.Context, show catalog.Show, q Query) (*Result, error) {
	if !show.Valid() {
		return nil, NewValidationError("podcast", "unknown podcast identifier")
	}

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return nil, NewValidationError("page", "page numbers start at 1")
	}
	if q.PerPage == 0 {
		q.PerPage = s.defaultPerPage
	}
	if q.PerPage < 1 || q.PerPage > s.maxPerPage {
		return nil, NewValidationError("per_page", "page size out of range")
	}

	filter := Compile(q)

	episodes, total, err := s.repo.Search(ctx, show, filter, q.Page, q.PerPage)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))

	return &Result{
		Episodes:   episodes,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
	}, nil
}
