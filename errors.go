package caddyaffiliation

import "github.com/rciam/caddy-affiliation/internal/core/domain"

// Re-export structured error types and constructors
type (
	AppError  = domain.AppError
	ErrorCode = domain.ErrorCode
)

const (
	ErrCodeConfigInvalid  = domain.ErrCodeConfigInvalid
	ErrCodeMetadataLookup = domain.ErrCodeMetadataLookup
	ErrCodeInternal       = domain.ErrCodeInternal
)

var (
	ConfigError = domain.ConfigError
	LookupError = domain.LookupError
)
