package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/search"
	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// IndexInstance holds the current searcher for a single named index.
// It implements the services.IndexAccessor interface.
//
// The searcher is replaced as a whole, never mutated: a search that loaded
// the previous one finishes against it undisturbed.
type IndexInstance struct {
	name     atomic.Value // string
	searcher atomic.Pointer[search.Service]

	writeMu sync.Mutex // serializes rebuilds
}

// NewIndexInstance builds the index for settings and records.
func NewIndexInstance(settings config.IndexSettings, records []model.Record) (*IndexInstance, error) {
	if settings.Name == "" {
		return nil, fmt.Errorf("index name cannot be empty in settings")
	}

	searcher, err := buildSearcher(settings, records)
	if err != nil {
		return nil, err
	}

	instance := &IndexInstance{}
	instance.name.Store(settings.Name)
	instance.searcher.Store(searcher)
	return instance, nil
}

func buildSearcher(settings config.IndexSettings, records []model.Record) (*search.Service, error) {
	idx, err := search.BuildIndex(records, settings)
	if err != nil {
		return nil, err
	}
	return search.NewService(idx)
}

// Name returns the current index name.
func (i *IndexInstance) Name() string {
	return i.name.Load().(string)
}

// Search delegates to the current search service.
// This satisfies a part of the services.IndexAccessor interface.
func (i *IndexInstance) Search(query services.SearchQuery) (services.SearchResult, error) {
	searcher := i.searcher.Load()
	if searcher == nil {
		return services.SearchResult{}, fmt.Errorf("search service not initialized for index '%s'", i.Name())
	}
	return searcher.Search(query)
}

// MultiSearch delegates to the current search service.
// All queries of one request run against the same index snapshot.
func (i *IndexInstance) MultiSearch(ctx context.Context, query services.MultiSearchQuery) (*services.MultiSearchResult, error) {
	searcher := i.searcher.Load()
	if searcher == nil {
		return nil, fmt.Errorf("search service not initialized for index '%s'", i.Name())
	}
	return searcher.MultiSearch(ctx, query)
}

// Settings returns the configuration settings for this index.
func (i *IndexInstance) Settings() config.IndexSettings {
	settings := i.searcher.Load().Settings()
	settings.Name = i.Name()
	return settings
}

// RecordCount returns the number of records in the current snapshot.
func (i *IndexInstance) RecordCount() int {
	return i.searcher.Load().Index().Len()
}

// records returns the records of the current snapshot.
func (i *IndexInstance) records() []model.Record {
	return i.searcher.Load().Index().Records()
}

// swap builds a new searcher and publishes it. Callers hold writeMu.
func (i *IndexInstance) swap(settings config.IndexSettings, records []model.Record) error {
	settings.Name = i.Name()
	searcher, err := buildSearcher(settings, records)
	if err != nil {
		return err
	}
	i.searcher.Store(searcher)
	return nil
}
