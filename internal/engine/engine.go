package engine

import (
	"log"
	"sort"
	"sync"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/errors"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// Engine manages multiple named fuzzy search indexes held in memory.
// It implements the services.IndexManager interface.
//
// The registry lock only guards the name -> instance map. Searches never
// take it for longer than the lookup: each instance publishes an immutable
// index that is swapped atomically when records or settings change.
type Engine struct {
	mu      sync.RWMutex
	indexes map[string]*IndexInstance
}

// NewEngine creates a new search engine orchestrator.
func NewEngine() *Engine {
	log.Printf("Initializing in-memory fuzzy search engine")
	return &Engine{
		indexes: make(map[string]*IndexInstance),
	}
}

// GetIndex retrieves an index by name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, errors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// GetIndexSettings retrieves the settings for a specific index.
func (e *Engine) GetIndexSettings(name string) (config.IndexSettings, error) {
	accessor, err := e.GetIndex(name)
	if err != nil {
		return config.IndexSettings{}, err
	}
	return accessor.Settings(), nil
}

// ListIndexes returns the names of all indexes, sorted.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
