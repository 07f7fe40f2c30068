// Package errors defines the application's typed error.
// AppError carries a type classification alongside the wrapped cause.
package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a classified failure
type AppError struct {
	Type    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeNetworkOrStatus      = "NETWORK_OR_STATUS"
	ErrorTypeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrorTypeInvalidID            = "INVALID_ID"
	ErrorTypeStorageFailure       = "STORAGE_FAILURE"
)

// NewAppError creates a new AppError
func NewAppError(errorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *AppError {
	return NewAppError(ErrorTypeConfigurationInvalid, message, cause)
}

// NewCatalogError creates a transport or non-2xx status error from the catalog API
func NewCatalogError(message string, cause error) *AppError {
	return NewAppError(ErrorTypeNetworkOrStatus, message, cause)
}

// NewStatusError reports a non-2xx response from endpoint
func NewStatusError(endpoint string, status int) *AppError {
	return NewAppError(ErrorTypeNetworkOrStatus, fmt.Sprintf("%s returned status %d", endpoint, status), nil)
}

// NewInvalidCredentialsError is returned by the login gate
func NewInvalidCredentialsError() *AppError {
	return NewAppError(ErrorTypeInvalidCredentials, "invalid credentials", nil)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *AppError {
	return NewAppError(ErrorTypeInvalidID, fmt.Sprintf("invalid movie id: %s", id), nil)
}

// NewStorageError wraps a persistence failure
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrorTypeStorageFailure, message, cause)
}

// IsType reports whether any error in err's chain is an AppError of errorType.
func IsType(err error, errorType string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
