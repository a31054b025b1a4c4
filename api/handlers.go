package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-search/internal/analytics"
	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// API holds dependencies for API handlers, primarily the index manager.
type API struct {
	engine    services.IndexManager
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager) *API {
	return &API{
		engine:    engine,
		analytics: analytics.NewService(engine),
	}
}

// SetupRoutes defines all the API routes for the fuzzy search engine.
func SetupRoutes(router *gin.Engine, engine services.IndexManager) {
	apiHandler := NewAPI(engine)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Index management routes
	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)                              // Create and build a new index
		indexRoutes.GET("", apiHandler.ListIndexesHandler)                               // List all indexes
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)                       // Get settings and record count
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler)                 // Delete an index
		indexRoutes.PATCH("/:indexName/settings", apiHandler.UpdateIndexSettingsHandler) // Rebuild with new settings
		indexRoutes.POST("/:indexName/rename", apiHandler.RenameIndexHandler)            // Rename an index
		indexRoutes.PUT("/:indexName/records", apiHandler.ReplaceRecordsHandler)         // Replace all records

		// Search routes per index
		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
		indexRoutes.POST("/:indexName/_multi_search", apiHandler.MultiSearchHandler)
	}
}

// toRecords wraps raw JSON objects as records. Field values are read
// straight from the raw bytes; the ID comes from the "id" member.
func toRecords(raw []json.RawMessage) []model.Record {
	records := make([]model.Record, len(raw))
	for i, r := range raw {
		records[i] = model.Record{Data: r}
	}
	return records
}
