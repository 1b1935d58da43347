// Package api provides validation utilities for API request handling.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-text-toolkit/model"
)

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

// ValidateLimit checks an optional limit against the configured cap.
// Negative limits are accepted; they produce empty results.
func ValidateLimit(result *ValidationResult, field string, limit *int, maxLimit int) {
	if limit != nil && *limit > maxLimit {
		result.AddError(field, fmt.Sprintf("%s must not exceed %d", field, maxLimit))
	}
}

// ValidateSearchRequest validates a search request
func ValidateSearchRequest(req *model.SearchRequest, maxLimit int) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.Candidates == nil {
		result.AddError("candidates", "Candidates are required (an empty list is allowed)")
	}
	ValidateLimit(result, "max_results", req.MaxResults, maxLimit)

	return result
}

// ValidateTextRequest validates a text analysis request
func ValidateTextRequest(req *model.TextRequest, maxLimit int) *ValidationResult {
	result := &ValidationResult{Valid: true}
	ValidateLimit(result, "limit", req.Limit, maxLimit)
	return result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}

// bindJSON binds the request body into target and sends the matching error
// response on failure. It reports whether the handler should continue.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendRequestTooLargeError(c, tooLarge.Limit)
			return false
		}
		SendInvalidJSONError(c, err)
		return false
	}
	return true
}
