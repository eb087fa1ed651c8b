package metadata

import "go.uber.org/zap"

// DirectoryOption is a functional option for configuring metadata
// directories.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	signatureVerifier SignatureVerifier
	logger            *zap.Logger
}

// WithSignatureVerifier returns an option that enables signature
// verification. When set, metadata is verified against the trusted
// certificates before parsing.
func WithSignatureVerifier(verifier SignatureVerifier) DirectoryOption {
	return func(o *directoryOptions) {
		o.signatureVerifier = verifier
	}
}

// WithLogger returns an option that sets the directory's logger.
func WithLogger(logger *zap.Logger) DirectoryOption {
	return func(o *directoryOptions) {
		o.logger = logger
	}
}
