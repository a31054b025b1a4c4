// Package api provides the HTTP surface of the fuzzy search engine.
package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"

	"github.com/gcbaptista/go-fuzzy-search/config"
)

const maxPageSize = 100

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateIndexName validates an index name parameter
func ValidateIndexName(indexName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if indexName == "" {
		result.AddError("indexName", "Index name is required")
		return result
	}

	if strings.TrimSpace(indexName) != indexName {
		result.AddError("indexName", "Index name cannot have leading or trailing whitespace")
	}

	return result
}

// ValidateIndexSettings checks what the engine cannot: the name. Field,
// threshold and weight problems are reported by the index build itself.
func ValidateIndexSettings(settings *config.IndexSettings) *ValidationResult {
	if settings == nil {
		result := &ValidationResult{Valid: true}
		result.AddError("settings", "Index settings are required")
		return result
	}

	result := ValidateIndexName(settings.Name)
	for i := range result.Errors {
		result.Errors[i].Field = "name"
	}
	return result
}

// ValidateRecords checks that every record is a JSON object whose "id",
// when present, is a non-blank string.
func ValidateRecords(records []json.RawMessage) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, raw := range records {
		field := fmt.Sprintf("records[%d]", i)

		if !gjson.ValidBytes(raw) {
			result.AddError(field, "Record is not valid JSON")
			continue
		}
		parsed := gjson.ParseBytes(raw)
		if !parsed.IsObject() {
			result.AddError(field, "Record must be a JSON object")
			continue
		}

		id := parsed.Get("id")
		if !id.Exists() {
			continue
		}
		if id.Type != gjson.String {
			result.AddError(field+".id", "Record ID must be a string")
			continue
		}
		if strings.TrimSpace(id.String()) == "" {
			result.AddError(field+".id", "Record ID cannot be empty or whitespace-only")
		}
	}

	return result
}

// ValidatePagination applies pagination defaults and limits
func ValidatePagination(page, pageSize int) (int, int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if page < 0 {
		result.AddError("page", "Page number cannot be negative")
	}
	if pageSize < 0 {
		result.AddError("page_size", "Page size cannot be negative")
	}

	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 10
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize, result
}

// ValidateRenameRequest validates a rename index request
func ValidateRenameRequest(oldName, newName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if oldName == "" {
		result.AddError("oldName", "Current index name is required")
	}

	if newName == "" {
		result.AddError("new_name", "New name is required and cannot be empty")
	}

	if strings.TrimSpace(newName) != newName {
		result.AddError("new_name", "New name cannot have leading or trailing whitespace")
	}

	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// ValidateJSONBinding validates JSON binding and returns a standardized error
func ValidateJSONBinding(c *gin.Context, target interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(target); err != nil {
		result.AddError("request_body", "Invalid request body: "+err.Error())
	}

	return result
}
