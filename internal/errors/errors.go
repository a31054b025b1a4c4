package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrIndexNotFound is returned when an index is not found
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexAlreadyExists is returned when trying to create an index that already exists
	ErrIndexAlreadyExists = errors.New("index already exists")

	// ErrInvalidConfiguration is returned when index settings cannot be used to build an index
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSameName is returned when trying to rename to the same name
	ErrSameName = errors.New("same name provided")
)

// IndexNotFoundError represents an index not found error with context
type IndexNotFoundError struct {
	IndexName string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("index named '%s' not found", e.IndexName)
}

func (e *IndexNotFoundError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// NewIndexNotFoundError creates a new IndexNotFoundError
func NewIndexNotFoundError(indexName string) *IndexNotFoundError {
	return &IndexNotFoundError{IndexName: indexName}
}

// IndexAlreadyExistsError represents an index already exists error with context
type IndexAlreadyExistsError struct {
	IndexName string
}

func (e *IndexAlreadyExistsError) Error() string {
	return fmt.Sprintf("index named '%s' already exists", e.IndexName)
}

func (e *IndexAlreadyExistsError) Is(target error) bool {
	return target == ErrIndexAlreadyExists
}

// NewIndexAlreadyExistsError creates a new IndexAlreadyExistsError
func NewIndexAlreadyExistsError(indexName string) *IndexAlreadyExistsError {
	return &IndexAlreadyExistsError{IndexName: indexName}
}

// ConfigurationError reports every problem found in index settings at build time
type ConfigurationError struct {
	IndexName string
	Problems  []string
}

func (e *ConfigurationError) Error() string {
	detail := strings.Join(e.Problems, "; ")
	if e.IndexName != "" {
		return fmt.Sprintf("invalid configuration for index '%s': %s", e.IndexName, detail)
	}
	return fmt.Sprintf("invalid configuration: %s", detail)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(indexName string, problems ...string) *ConfigurationError {
	return &ConfigurationError{IndexName: indexName, Problems: problems}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// SameNameError represents an error when trying to rename to the same name
type SameNameError struct {
	Name string
}

func (e *SameNameError) Error() string {
	return fmt.Sprintf("new name '%s' is the same as the current name", e.Name)
}

func (e *SameNameError) Is(target error) bool {
	return target == ErrSameName
}

// NewSameNameError creates a new SameNameError
func NewSameNameError(name string) *SameNameError {
	return &SameNameError{Name: name}
}
