package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-fuzzy-search/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
	ErrorCodeIndexNotFound        ErrorCode = "INDEX_NOT_FOUND"
	ErrorCodeIndexExists          ErrorCode = "INDEX_ALREADY_EXISTS"
	ErrorCodeInvalidJSON          ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidQuery         ErrorCode = "INVALID_QUERY"
	ErrorCodeSameName             ErrorCode = "SAME_NAME_PROVIDED"
	ErrorCodeRateLimited          ErrorCode = "RATE_LIMITED"

	// Server Error Codes (5xx)
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrorCodeIndexingFailed ErrorCode = "INDEXING_FAILED"
	ErrorCodeSearchFailed   ErrorCode = "SEARCH_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with one detail per problem
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendConfigurationError reports every problem of a rejected index configuration
func SendConfigurationError(c *gin.Context, configErr *internalErrors.ConfigurationError) {
	details := make([]ErrorDetail, len(configErr.Problems))
	for i, problem := range configErr.Problems {
		details[i] = ErrorDetail{Field: "settings", Message: problem, Code: "CONFIGURATION_ERROR"}
	}
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidConfiguration, configErr.Error(), details...)
}

// SendIndexNotFoundError sends a standardized index not found error
func SendIndexNotFoundError(c *gin.Context, indexName string) {
	SendError(c, http.StatusNotFound, ErrorCodeIndexNotFound,
		"Index '"+indexName+"' not found")
}

// SendIndexExistsError sends a standardized index already exists error
func SendIndexExistsError(c *gin.Context, indexName string) {
	SendError(c, http.StatusConflict, ErrorCodeIndexExists,
		"Index '"+indexName+"' already exists")
}

// SendSameNameError sends a standardized same name error
func SendSameNameError(c *gin.Context, name string) {
	SendError(c, http.StatusBadRequest, ErrorCodeSameName,
		"New name '"+name+"' is the same as the current name")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendSearchError sends a standardized search error
func SendSearchError(c *gin.Context, indexName string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed,
		"Search failed on index '"+indexName+"': "+err.Error())
}

// SendEngineError maps an error returned by the index manager to a response.
// indexName names the index the request addressed.
func SendEngineError(c *gin.Context, operation, indexName string, err error) {
	var configErr *internalErrors.ConfigurationError
	switch {
	case errors.As(err, &configErr):
		SendConfigurationError(c, configErr)
	case errors.Is(err, internalErrors.ErrIndexNotFound):
		SendIndexNotFoundError(c, indexName)
	case errors.Is(err, internalErrors.ErrIndexAlreadyExists):
		SendError(c, http.StatusConflict, ErrorCodeIndexExists, err.Error())
	case errors.Is(err, internalErrors.ErrSameName):
		SendSameNameError(c, indexName)
	case errors.Is(err, internalErrors.ErrInvalidInput):
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeIndexingFailed,
			"Indexing operation failed ("+operation+"): "+err.Error())
	}
}
