package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("report request", "42")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "report request not found: 42", err.Message)
	assert.Equal(t, "NOT_FOUND", err.Code)

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "report request", resource)
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("search analytic lines", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, "DATABASE_ERROR", err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "search analytic lines")
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestNewDatabaseError_DeadlineBecomesTimeout(t *testing.T) {
	err := NewDatabaseError("search analytic lines", fmt.Errorf("query: %w", context.DeadlineExceeded))

	assert.Equal(t, ErrorTypeTimeout, err.Type)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAppError_Is(t *testing.T) {
	err := NewNotFoundError("employee", "7")

	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}))
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeDatabase, Code: "DATABASE_ERROR"}))
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("load report: %w", NewInvalidInputError("user_id", 0, "must be positive"))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeInvalidInput, appErr.Type)
	assert.True(t, IsErrorType(wrapped, ErrorTypeInvalidInput))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeInvalidInput))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", NewValidationError("to date must not be before from date", nil), "to date must not be before from date"},
		{"not found", NewNotFoundError("report request", "3"), "report request not found: 3"},
		{"database", NewDatabaseError("open database", errors.New("locked")), "A database error occurred. Please try again."},
		{"timeout", NewTimeoutError("search", nil), "The operation timed out. Please try again."},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "INVALID_INPUT", GetErrorCode(NewInvalidInputError("hours", -1, "negative")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("employee", "1")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", errors.New("x"))))
	assert.True(t, ShouldLogError(errors.New("plain")))
}
