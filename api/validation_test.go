package api

import (
	"encoding/json"
	"testing"

	"github.com/gcbaptista/go-fuzzy-search/config"
)

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}

	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}

	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}

	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateIndexName(t *testing.T) {
	tests := []struct {
		name      string
		indexName string
		wantValid bool
		wantError string
	}{
		{
			name:      "valid index name",
			indexName: "test-index",
			wantValid: true,
		},
		{
			name:      "empty index name",
			indexName: "",
			wantValid: false,
			wantError: "Index name is required",
		},
		{
			name:      "index name with leading whitespace",
			indexName: " test-index",
			wantValid: false,
			wantError: "Index name cannot have leading or trailing whitespace",
		},
		{
			name:      "index name with trailing whitespace",
			indexName: "test-index ",
			wantValid: false,
			wantError: "Index name cannot have leading or trailing whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexName(tt.indexName)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateIndexName() Valid = %v, want %v", result.Valid, tt.wantValid)
			}

			if !tt.wantValid && len(result.Errors) > 0 {
				if result.Errors[0].Message != tt.wantError {
					t.Errorf("ValidateIndexName() error = %v, want %v", result.Errors[0].Message, tt.wantError)
				}
			}
		})
	}
}

func TestValidateIndexSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  *config.IndexSettings
		wantValid bool
		wantField string
	}{
		{
			name:      "nil settings",
			settings:  nil,
			wantValid: false,
			wantField: "settings",
		},
		{
			name:      "missing name",
			settings:  &config.IndexSettings{Fields: []config.FieldSettings{{Name: "title"}}},
			wantValid: false,
			wantField: "name",
		},
		{
			name:      "fields are left to the index build",
			settings:  &config.IndexSettings{Name: "courses"},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexSettings(tt.settings)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateIndexSettings() Valid = %v, want %v", result.Valid, tt.wantValid)
			}
			if !tt.wantValid && (len(result.Errors) == 0 || result.Errors[0].Field != tt.wantField) {
				t.Errorf("ValidateIndexSettings() errors = %v, want field %s", result.Errors, tt.wantField)
			}
		})
	}
}

func TestValidateRecords(t *testing.T) {
	tests := []struct {
		name       string
		records    []string
		wantErrors int
		wantField  string
	}{
		{
			name:       "objects with and without ids",
			records:    []string{`{"id":"c1","name":"Intro to Biology"}`, `{"name":"Biology Lab"}`},
			wantErrors: 0,
		},
		{
			name:       "no records",
			records:    nil,
			wantErrors: 0,
		},
		{
			name:       "array instead of object",
			records:    []string{`{"id":"c1"}`, `["not","an","object"]`},
			wantErrors: 1,
			wantField:  "records[1]",
		},
		{
			name:       "numeric id",
			records:    []string{`{"id":42,"name":"Biology"}`},
			wantErrors: 1,
			wantField:  "records[0].id",
		},
		{
			name:       "blank id",
			records:    []string{`{"id":"  ","name":"Biology"}`},
			wantErrors: 1,
			wantField:  "records[0].id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]json.RawMessage, len(tt.records))
			for i, r := range tt.records {
				raw[i] = json.RawMessage(r)
			}

			result := ValidateRecords(raw)

			if len(result.Errors) != tt.wantErrors {
				t.Fatalf("ValidateRecords() errors = %v, want %d", result.Errors, tt.wantErrors)
			}
			if tt.wantErrors > 0 && result.Errors[0].Field != tt.wantField {
				t.Errorf("ValidateRecords() field = %s, want %s", result.Errors[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
		wantValid    bool
	}{
		{
			name:         "valid pagination",
			page:         2,
			pageSize:     20,
			wantPage:     2,
			wantPageSize: 20,
			wantValid:    true,
		},
		{
			name:         "zero page defaults to 1",
			page:         0,
			pageSize:     20,
			wantPage:     1,
			wantPageSize: 20,
			wantValid:    true,
		},
		{
			name:         "zero page size defaults to 10",
			page:         1,
			pageSize:     0,
			wantPage:     1,
			wantPageSize: 10,
			wantValid:    true,
		},
		{
			name:         "negative page is rejected",
			page:         -1,
			pageSize:     10,
			wantPage:     -1,
			wantPageSize: 10,
			wantValid:    false,
		},
		{
			name:         "page size over 100 capped to 100",
			page:         1,
			pageSize:     150,
			wantPage:     1,
			wantPageSize: 100,
			wantValid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPage, gotPageSize, result := ValidatePagination(tt.page, tt.pageSize)

			if gotPage != tt.wantPage {
				t.Errorf("ValidatePagination() page = %v, want %v", gotPage, tt.wantPage)
			}

			if gotPageSize != tt.wantPageSize {
				t.Errorf("ValidatePagination() pageSize = %v, want %v", gotPageSize, tt.wantPageSize)
			}

			if result.Valid != tt.wantValid {
				t.Errorf("ValidatePagination() Valid = %v, want %v", result.Valid, tt.wantValid)
			}
		})
	}
}

func TestValidateRenameRequest(t *testing.T) {
	tests := []struct {
		name      string
		oldName   string
		newName   string
		wantValid bool
		wantError string
	}{
		{
			name:      "valid rename",
			oldName:   "old-index",
			newName:   "new-index",
			wantValid: true,
		},
		{
			name:      "empty old name",
			oldName:   "",
			newName:   "new-index",
			wantValid: false,
			wantError: "Current index name is required",
		},
		{
			name:      "empty new name",
			oldName:   "old-index",
			newName:   "",
			wantValid: false,
			wantError: "New name is required and cannot be empty",
		},
		{
			name:      "new name with whitespace",
			oldName:   "old-index",
			newName:   " new-index ",
			wantValid: false,
			wantError: "New name cannot have leading or trailing whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRenameRequest(tt.oldName, tt.newName)

			if result.Valid != tt.wantValid {
				t.Errorf("ValidateRenameRequest() Valid = %v, want %v", result.Valid, tt.wantValid)
			}

			if !tt.wantValid && len(result.Errors) > 0 {
				found := false
				for _, err := range result.Errors {
					if err.Message == tt.wantError {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("ValidateRenameRequest() expected error '%v' not found in %v", tt.wantError, result.Errors)
				}
			}
		})
	}
}
