package search

import (
	"context"
	"fmt"
	"time"

	"github.com/gcbaptista/go-fuzzy-search/services"
)

// MultiSearch executes multiple named search queries in parallel.
// The index is read-only, so the queries share it without locking.
func (s *Service) MultiSearch(ctx context.Context, multiQuery services.MultiSearchQuery) (*services.MultiSearchResult, error) {
	startTime := time.Now()

	if len(multiQuery.Queries) == 0 {
		return nil, fmt.Errorf("at least one query is required")
	}

	seen := make(map[string]bool, len(multiQuery.Queries))
	for _, namedQuery := range multiQuery.Queries {
		if namedQuery.Name == "" {
			return nil, fmt.Errorf("each query must have a non-empty name")
		}
		if seen[namedQuery.Name] {
			return nil, fmt.Errorf("duplicate query name '%s'", namedQuery.Name)
		}
		seen[namedQuery.Name] = true
	}

	type queryResult struct {
		name   string
		result services.SearchResult
		err    error
	}

	resultChan := make(chan queryResult, len(multiQuery.Queries))

	for _, namedQuery := range multiQuery.Queries {
		go func(nq services.NamedSearchQuery) {
			result, err := s.Search(services.SearchQuery{
				QueryString: nq.Query,
				Page:        multiQuery.Page,
				PageSize:    multiQuery.PageSize,
			})
			resultChan <- queryResult{name: nq.Name, result: result, err: err}
		}(namedQuery)
	}

	results := make(map[string]services.SearchResult, len(multiQuery.Queries))
	for i := 0; i < len(multiQuery.Queries); i++ {
		select {
		case qr := <-resultChan:
			if qr.err != nil {
				return nil, fmt.Errorf("error executing query '%s': %w", qr.name, qr.err)
			}
			results[qr.name] = qr.result
		case <-ctx.Done():
			return nil, fmt.Errorf("multi-search cancelled: %w", ctx.Err())
		}
	}

	processingTime := time.Since(startTime)

	return &services.MultiSearchResult{
		Results:          results,
		TotalQueries:     len(multiQuery.Queries),
		ProcessingTimeMs: float64(processingTime.Nanoseconds()) / 1e6,
	}, nil
}
