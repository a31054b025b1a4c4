package engine

import (
	"fmt"
	"log"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/errors"
)

// UpdateIndexSettings rebuilds the named index with new settings over its
// current records. The index name cannot be changed here; use RenameIndex.
// When the new settings are invalid the index keeps its previous settings.
func (e *Engine) UpdateIndexSettings(name string, settings config.IndexSettings) error {
	instance, err := e.instance(name)
	if err != nil {
		return err
	}

	if settings.Name != "" && settings.Name != name {
		return errors.NewValidationError("name", "index name cannot be changed via settings update (use rename instead)")
	}

	instance.writeMu.Lock()
	defer instance.writeMu.Unlock()

	if err := instance.swap(settings, instance.records()); err != nil {
		return fmt.Errorf("failed to update settings of index '%s': %w", name, err)
	}

	log.Printf("Settings for index '%s' updated; %d records re-indexed.", name, instance.RecordCount())
	return nil
}
