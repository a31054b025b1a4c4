package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// Service implements paged search over a single immutable Index.
// It fulfills the services.Searcher interface.
type Service struct {
	index *Index
}

// NewService creates a new search Service.
func NewService(idx *Index) (*Service, error) {
	if idx == nil {
		return nil, fmt.Errorf("index cannot be nil")
	}
	return &Service{index: idx}, nil
}

const defaultPageSize = 10

// Index returns the underlying index.
func (s *Service) Index() *Index {
	return s.index
}

// Settings returns the settings of the underlying index.
func (s *Service) Settings() config.IndexSettings {
	return s.index.Settings()
}

// Search runs the query and returns the requested page of ranked results.
// No match and an empty query are not errors: they produce an empty page.
func (s *Service) Search(query services.SearchQuery) (services.SearchResult, error) {
	startTime := time.Now()

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	hits := s.index.Search(query.QueryString)
	total := len(hits)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return services.SearchResult{
		Hits:     hits[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Took:     time.Since(startTime).Milliseconds(),
		QueryID:  uuid.New().String(),
	}, nil
}
