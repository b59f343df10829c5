// Package response defines consistent HTTP response structures.
// Success bodies are written as-is; every error uses the Error envelope.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clans/src/core/domain"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with body.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with body.
func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

func abort(c *gin.Context, status int, detail ErrorDetail) {
	c.AbortWithStatusJSON(status, Error{Error: detail})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, field, message, requestID string) {
	abort(c, http.StatusBadRequest, ErrorDetail{
		Code:      "BAD_REQUEST",
		Message:   message,
		Field:     field,
		RequestID: requestID,
	})
}

// ValidationError sends a 422 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	abort(c, http.StatusUnprocessableEntity, ErrorDetail{
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Field:     field,
		RequestID: requestID,
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	abort(c, http.StatusNotFound, ErrorDetail{
		Code:      "NOT_FOUND",
		Message:   message,
		RequestID: requestID,
	})
}

// DatabaseError sends a 500 response with the driver message appended.
func DatabaseError(c *gin.Context, message, requestID string) {
	abort(c, http.StatusInternalServerError, ErrorDetail{
		Code:      "DATABASE_ERROR",
		Message:   "DB error: " + message,
		RequestID: requestID,
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	abort(c, http.StatusInternalServerError, ErrorDetail{
		Code:      "INTERNAL_ERROR",
		Message:   "An unexpected error occurred",
		RequestID: requestID,
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// The error is also attached to the gin context for the access log.
func FromDomainError(c *gin.Context, err error, requestID string) {
	_ = c.Error(err)

	var domErr *domain.DomainError
	if !errors.As(err, &domErr) {
		InternalError(c, requestID)
		return
	}

	switch {
	case domain.IsNotFound(err):
		NotFound(c, domErr.Message, requestID)
	case domain.IsValidationError(err):
		ValidationError(c, domErr.Field, domErr.Message, requestID)
	case domain.IsInvalidParameter(err):
		BadRequest(c, domErr.Field, domErr.Message, requestID)
	case domain.IsDatabaseError(err):
		DatabaseError(c, domErr.Message, requestID)
	default:
		InternalError(c, requestID)
	}
}
