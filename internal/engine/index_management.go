package engine

import (
	"fmt"
	"log"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/errors"
	"github.com/gcbaptista/go-fuzzy-search/model"
)

// CreateIndex builds a new index from settings and records and registers it.
// Invalid settings yield a *errors.ConfigurationError and nothing is registered.
func (e *Engine) CreateIndex(settings config.IndexSettings, records []model.Record) error {
	if settings.Name == "" {
		return errors.NewConfigurationError("", "Index name is required")
	}

	e.mu.RLock()
	_, exists := e.indexes[settings.Name]
	e.mu.RUnlock()
	if exists {
		return errors.NewIndexAlreadyExistsError(settings.Name)
	}

	// Build outside the registry lock; large record sets take a while.
	instance, err := NewIndexInstance(settings, records)
	if err != nil {
		return fmt.Errorf("failed to create index '%s': %w", settings.Name, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.indexes[settings.Name]; exists {
		return errors.NewIndexAlreadyExistsError(settings.Name)
	}
	e.indexes[settings.Name] = instance

	log.Printf("Index '%s' created with %d records.", settings.Name, len(records))
	return nil
}

// ReplaceRecords rebuilds the named index over records. Searches running
// during the rebuild see the previous records; later searches see the new ones.
func (e *Engine) ReplaceRecords(name string, records []model.Record) error {
	instance, err := e.instance(name)
	if err != nil {
		return err
	}

	instance.writeMu.Lock()
	defer instance.writeMu.Unlock()

	if err := instance.swap(instance.Settings(), records); err != nil {
		return fmt.Errorf("failed to replace records of index '%s': %w", name, err)
	}

	log.Printf("Index '%s' now holds %d records.", name, len(records))
	return nil
}

// DeleteIndex removes an index.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[name]; !exists {
		return errors.NewIndexNotFoundError(name)
	}
	delete(e.indexes, name)

	log.Printf("Index '%s' deleted successfully.", name)
	return nil
}

// RenameIndex renames an index.
func (e *Engine) RenameIndex(oldName, newName string) error {
	if newName == "" {
		return errors.NewValidationError("new_name", "new index name cannot be empty")
	}
	if oldName == newName {
		return errors.NewSameNameError(oldName)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	instance, exists := e.indexes[oldName]
	if !exists {
		return errors.NewIndexNotFoundError(oldName)
	}
	if _, exists := e.indexes[newName]; exists {
		return errors.NewIndexAlreadyExistsError(newName)
	}

	instance.name.Store(newName)
	e.indexes[newName] = instance
	delete(e.indexes, oldName)

	log.Printf("Index renamed from '%s' to '%s' successfully.", oldName, newName)
	return nil
}

func (e *Engine) instance(name string) (*IndexInstance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, errors.NewIndexNotFoundError(name)
	}
	return instance, nil
}
