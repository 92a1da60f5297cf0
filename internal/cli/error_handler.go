package cli

import (
	stderrors "errors"
	"fmt"

	"timesheet-report/internal/errors"
	"timesheet-report/internal/validation"
)

// userError carries a terminal message while keeping the original error
// reachable through errors.As.
type userError struct {
	message string
	cause   error
}

func (e *userError) Error() string { return e.message }

func (e *userError) Unwrap() error { return e.cause }

// ErrorHandler turns API errors into messages fit for the terminal.
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user-facing message of err with the failed operation.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &userError{message: fmt.Sprintf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage()), cause: err}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &userError{message: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)), cause: err}
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple returns the user-facing message of err without context.
func (eh *ErrorHandler) HandleSimple(err error) error {
	var handled *userError
	if stderrors.As(err, &handled) {
		return handled
	}

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// ShouldLog reports whether err is a system failure worth logging rather
// than a rejected input or a missing record.
func (eh *ErrorHandler) ShouldLog(err error) bool {
	if err == nil || eh.IsValidationError(err) || eh.IsNotFoundError(err) {
		return false
	}
	return errors.ShouldLogError(err)
}
