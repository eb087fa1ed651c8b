package metadata

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// FileDirectory loads party metadata from a local SAML metadata file and
// serves lookups from memory. Supports both single EntityDescriptor and
// aggregate EntitiesDescriptor formats.
//
// All records are served under a single category (typically
// domain.CategoryRemoteIdentityProvider); lookups for any other category
// return absent.
type FileDirectory struct {
	path              string
	category          string
	signatureVerifier SignatureVerifier
	logger            *zap.Logger

	mu      sync.RWMutex
	parties map[string]domain.PartyMetadata
}

// NewFileDirectory creates a FileDirectory serving records from path under
// the given category. Call Load before first use.
func NewFileDirectory(path, category string, opts ...DirectoryOption) *FileDirectory {
	options := &directoryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileDirectory{
		path:              path,
		category:          category,
		signatureVerifier: options.signatureVerifier,
		logger:            logger,
	}
}

// Load reads and parses the metadata file.
// This should be called during initialization.
func (d *FileDirectory) Load() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read metadata file: %w", err)
	}

	// Verify signature if verifier is configured
	if d.signatureVerifier != nil {
		data, err = d.signatureVerifier.Verify(data)
		if err != nil {
			return err
		}
	}

	parties, err := ParseMetadata(data)
	if err != nil {
		return fmt.Errorf("parse metadata file %s: %w", d.path, err)
	}

	byID := make(map[string]domain.PartyMetadata, len(parties))
	for _, p := range parties {
		byID[p.EntityID] = p
	}

	d.mu.Lock()
	d.parties = byID
	d.mu.Unlock()

	d.logger.Debug("metadata directory loaded",
		zap.String("path", d.path),
		zap.String("category", d.category),
		zap.Int("party_count", len(byID)))
	return nil
}

// GetMetadata returns the record for the party, or (nil, nil) if the party
// or category is not in the directory.
func (d *FileDirectory) GetMetadata(entityID, category string) (*domain.PartyMetadata, error) {
	if category != d.category {
		return nil, nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if md, ok := d.parties[entityID]; ok {
		// Return a copy to prevent mutation
		return &md, nil
	}
	return nil, nil
}

// Ensure FileDirectory implements ports.MetadataDirectory
var _ ports.MetadataDirectory = (*FileDirectory)(nil)
