package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-search/internal/analytics"
	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// MultiSearchRequest represents the JSON request for multi-search
type MultiSearchRequest struct {
	Queries  []NamedSearchRequest `json:"queries" binding:"required"`
	Page     int                  `json:"page,omitempty"`
	PageSize int                  `json:"page_size,omitempty"`
}

// NamedSearchRequest represents a single named search query in the request
type NamedSearchRequest struct {
	Name  string `json:"name" binding:"required"`
	Query string `json:"query"`
}

// SearchHandler handles search requests to an index.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendEngineError(c, "get index", indexName, err)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	page, pageSize, validation := ValidatePagination(req.Page, req.PageSize)
	if validation.HasErrors() {
		SendValidationError(c, validation)
		return
	}

	results, err := indexAccessor.Search(services.SearchQuery{
		QueryString: req.Query,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		SendSearchError(c, indexName, err)
		return
	}

	api.trackSearch(indexName, req.Query, results, time.Since(startTime))

	c.JSON(http.StatusOK, results)
}

// MultiSearchHandler handles multi-query search requests to an index.
// Request Body: MultiSearchRequest
func (api *API) MultiSearchHandler(c *gin.Context) {
	startTime := time.Now()
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendEngineError(c, "get index", indexName, err)
		return
	}

	var req MultiSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Queries) == 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "At least one query is required")
		return
	}

	queryNames := make(map[string]bool)
	for _, namedQuery := range req.Queries {
		if namedQuery.Name == "" {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "All queries must have a non-empty name")
			return
		}
		if queryNames[namedQuery.Name] {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Query names must be unique: '"+namedQuery.Name+"' appears multiple times")
			return
		}
		queryNames[namedQuery.Name] = true
	}

	page, pageSize, validation := ValidatePagination(req.Page, req.PageSize)
	if validation.HasErrors() {
		SendValidationError(c, validation)
		return
	}

	multiSearchQuery := services.MultiSearchQuery{
		Page:     page,
		PageSize: pageSize,
	}
	for _, namedReq := range req.Queries {
		multiSearchQuery.Queries = append(multiSearchQuery.Queries, services.NamedSearchQuery{
			Name:  namedReq.Name,
			Query: namedReq.Query,
		})
	}

	results, err := indexAccessor.MultiSearch(c.Request.Context(), multiSearchQuery)
	if err != nil {
		SendSearchError(c, indexName, err)
		return
	}

	elapsed := time.Since(startTime)
	for _, namedReq := range req.Queries {
		api.trackSearch(indexName, namedReq.Query, results.Results[namedReq.Name], elapsed)
	}

	c.JSON(http.StatusOK, results)
}

// trackSearch records an analytics event for a finished search.
func (api *API) trackSearch(indexName, query string, results services.SearchResult, responseTime time.Duration) {
	event := model.SearchEvent{
		IndexName:    indexName,
		Query:        query,
		SearchType:   analytics.ClassifySearch(results),
		ResponseTime: responseTime,
		ResultCount:  results.Total,
	}
	if len(results.Hits) > 0 {
		event.BestScore = results.Hits[0].Score
	}

	if err := api.analytics.TrackSearchEvent(event); err != nil {
		log.Printf("Warning: Failed to track search event: %v", err)
	}
}
