package services

import (
	"context"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/model"
)

// Range is an inclusive span of rune indexes in a field value, usable for highlighting.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FieldMatch describes how a single field of a record matched the query.
type FieldMatch struct {
	Field  string  `json:"field"`
	Value  string  `json:"value"`
	Score  float64 `json:"score"`
	Ranges []Range `json:"ranges,omitempty"`
}

// MatchResult is a single ranked record.
// Score is in [0,1): 0 is a perfect match, lower is better.
type MatchResult struct {
	Record  model.Record `json:"record"`
	Score   float64      `json:"score"`
	Matches []FieldMatch `json:"matches,omitempty"`
}

type SearchResult struct {
	Hits     []MatchResult `json:"hits"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Took     int64         `json:"took"`     // milliseconds
	QueryID  string        `json:"query_id"` // unique UUID for this search query
}

type SearchQuery struct {
	QueryString string `json:"query"`
	Page        int    `json:"page,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// MultiSearchQuery represents a request to execute multiple named search queries
type MultiSearchQuery struct {
	Queries  []NamedSearchQuery `json:"queries"`
	Page     int                `json:"page,omitempty"`
	PageSize int                `json:"page_size,omitempty"`
}

// NamedSearchQuery represents a single named search query within a multi-search request
type NamedSearchQuery struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// MultiSearchResult represents the response from a multi-search operation
type MultiSearchResult struct {
	Results          map[string]SearchResult `json:"results"`
	TotalQueries     int                     `json:"total_queries"`
	ProcessingTimeMs float64                 `json:"processing_time_ms"`
}

// Searcher defines operations for querying an index
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
}

// IndexManager manages the lifecycle of named indexes
type IndexManager interface {
	CreateIndex(settings config.IndexSettings, records []model.Record) error
	GetIndex(name string) (IndexAccessor, error)
	GetIndexSettings(name string) (config.IndexSettings, error)
	ReplaceRecords(name string, records []model.Record) error
	UpdateIndexSettings(name string, settings config.IndexSettings) error
	RenameIndex(oldName, newName string) error
	DeleteIndex(name string) error
	ListIndexes() []string
}

// IndexAccessor gives read access to one index.
type IndexAccessor interface {
	Searcher
	MultiSearch(ctx context.Context, query MultiSearchQuery) (*MultiSearchResult, error)
	Settings() config.IndexSettings
	RecordCount() int
}
