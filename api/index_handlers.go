package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-search/config"
	internalErrors "github.com/gcbaptista/go-fuzzy-search/internal/errors"
)

// CreateIndexRequest is the settings of a new index plus the records it is built over.
type CreateIndexRequest struct {
	config.IndexSettings
	Records []json.RawMessage `json:"records"`
}

// IndexDetails is the response of GetIndexHandler.
type IndexDetails struct {
	Settings    config.IndexSettings `json:"settings"`
	RecordCount int                  `json:"record_count"`
}

// ReplaceRecordsRequest carries the full new record set of an index.
type ReplaceRecordsRequest struct {
	Records []json.RawMessage `json:"records"`
}

// CreateIndexHandler handles the request to create a new index.
// Request Body: CreateIndexRequest
func (api *API) CreateIndexHandler(c *gin.Context) {
	var req CreateIndexRequest

	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidateIndexSettings(&req.IndexSettings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidateRecords(req.Records); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateIndex(req.IndexSettings, toRecords(req.Records)); err != nil {
		if errors.Is(err, internalErrors.ErrIndexAlreadyExists) {
			SendIndexExistsError(c, req.Name)
			return
		}
		SendEngineError(c, "create index", req.Name, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Index '" + req.Name + "' created successfully",
		"record_count": len(req.Records),
	})
}

// ListIndexesHandler lists all available indexes.
func (api *API) ListIndexesHandler(c *gin.Context) {
	names := api.engine.ListIndexes()
	c.JSON(http.StatusOK, gin.H{"indexes": names, "count": len(names)})
}

// GetIndexHandler retrieves the settings and size of a specific index.
func (api *API) GetIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendEngineError(c, "get index", indexName, err)
		return
	}
	c.JSON(http.StatusOK, IndexDetails{
		Settings:    indexAccessor.Settings(),
		RecordCount: indexAccessor.RecordCount(),
	})
}

// DeleteIndexHandler handles deleting an index.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	if err := api.engine.DeleteIndex(indexName); err != nil {
		SendEngineError(c, "delete index", indexName, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Index '" + indexName + "' deleted successfully"})
}

// RenameIndexRequest defines the structure for renaming an index
type RenameIndexRequest struct {
	NewName string `json:"new_name" binding:"required"`
}

// RenameIndexHandler handles requests to rename an index
func (api *API) RenameIndexHandler(c *gin.Context) {
	oldName := c.Param("indexName")

	var req RenameIndexRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidateRenameRequest(oldName, req.NewName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.RenameIndex(oldName, req.NewName); err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrIndexAlreadyExists):
			SendIndexExistsError(c, req.NewName)
		case errors.Is(err, internalErrors.ErrSameName):
			SendSameNameError(c, req.NewName)
		default:
			SendEngineError(c, "rename index", oldName, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Index renamed successfully",
		"old_name": oldName,
		"new_name": req.NewName,
	})
}

// UpdateIndexSettingsHandler rebuilds an index with the given settings.
// Keys absent from the body keep their current value.
func (api *API) UpdateIndexSettingsHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	settings, err := api.engine.GetIndexSettings(indexName)
	if err != nil {
		SendEngineError(c, "get index settings", indexName, err)
		return
	}

	// Decoding over the current settings only overwrites keys that are present.
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if err := api.engine.UpdateIndexSettings(indexName, settings); err != nil {
		SendEngineError(c, "update settings", indexName, err)
		return
	}

	updated, err := api.engine.GetIndexSettings(indexName)
	if err != nil {
		SendEngineError(c, "get index settings", indexName, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings for index '" + indexName + "' updated successfully",
		"settings": updated,
	})
}

// ReplaceRecordsHandler swaps the full record set of an index.
// Request Body: ReplaceRecordsRequest
func (api *API) ReplaceRecordsHandler(c *gin.Context) {
	indexName := c.Param("indexName")

	var req ReplaceRecordsRequest
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if result := ValidateRecords(req.Records); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.ReplaceRecords(indexName, toRecords(req.Records)); err != nil {
		SendEngineError(c, "replace records", indexName, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Records of index '" + indexName + "' replaced successfully",
		"record_count": len(req.Records),
	})
}
