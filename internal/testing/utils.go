// Package testing provides utilities and helpers for testing the fuzzy search engine.
package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/engine"
	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// CreateTestEngine creates a new, empty engine instance for testing.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.NewEngine()
}

// CourseDocuments returns a small set of classroom courses.
func CourseDocuments() []model.Document {
	return []model.Document{
		{"id": "c1", "name": "Intro to Biology", "section": "Period 1", "courseState": "ACTIVE"},
		{"id": "c2", "name": "Advanced Chemistry", "section": "Period 3", "courseState": "ACTIVE"},
		{"id": "c3", "name": "Biology Lab", "section": "Period 5", "courseState": "ARCHIVED"},
	}
}

// CourseRecords wraps CourseDocuments as records; IDs come from the "id" field.
func CourseRecords() []model.Record {
	docs := CourseDocuments()
	records := make([]model.Record, len(docs))
	for i, doc := range docs {
		records[i] = model.Record{Data: doc}
	}
	return records
}

// CreateTestIndex creates a course index searching the "name" field.
func CreateTestIndex(t *testing.T, eng *engine.Engine, indexName string) config.IndexSettings {
	t.Helper()

	settings := config.IndexSettings{
		Name:   indexName,
		Fields: []config.FieldSettings{{Name: "name"}},
	}

	err := eng.CreateIndex(settings, CourseRecords())
	require.NoError(t, err, "Failed to create test index")

	return settings
}

// SearchTestCase represents a test case for search operations
type SearchTestCase struct {
	Name          string
	Query         services.SearchQuery
	ExpectedCount int
	ExpectedFirst string // Expected first result record ID
	ValidateFunc  func(t *testing.T, results *services.SearchResult)
}

// RunSearchTests runs a suite of search tests against an index
func RunSearchTests(t *testing.T, indexAccessor services.IndexAccessor, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			results, err := indexAccessor.Search(tt.Query)
			require.NoError(t, err, "Search should not fail")

			assert.Equal(t, tt.ExpectedCount, results.Total, "Result count should match")

			if tt.ExpectedFirst != "" {
				require.NotEmpty(t, results.Hits, "Expected at least one hit")
				assert.Equal(t, tt.ExpectedFirst, results.Hits[0].Record.ID, "First result should match expected")
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, &results)
			}
		})
	}
}
