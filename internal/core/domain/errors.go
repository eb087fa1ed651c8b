package domain

// ErrorCode represents categorized error types.
// These codes are stable and can be used for programmatic error handling.
type ErrorCode string

const (
	ErrCodeConfigInvalid  ErrorCode = "config_invalid"
	ErrCodeMetadataLookup ErrorCode = "metadata_lookup"
	ErrCodeInternal       ErrorCode = "internal_error"
)

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// AppError is a structured error with code, message, and optional cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ConfigError creates a configuration error. Configuration errors surface
// only at step construction, never per-request.
func ConfigError(message string) *AppError {
	return &AppError{Code: ErrCodeConfigInvalid, Message: message}
}

// LookupError creates a metadata-lookup error with its cause. Lookup errors
// are fatal to the current request's processing.
func LookupError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeMetadataLookup, Message: message, Cause: cause}
}

// InternalError creates an internal fault error.
func InternalError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Cause: cause}
}
