package metadata

import (
	"sync"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// InMemoryDirectory is a simple in-memory metadata directory, keyed by
// category and entity ID. Suitable for testing and config-inlined parties.
type InMemoryDirectory struct {
	mu      sync.RWMutex
	entries map[string]map[string]domain.PartyMetadata // category -> entityID -> record
}

// NewInMemoryDirectory creates an empty InMemoryDirectory.
func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{
		entries: make(map[string]map[string]domain.PartyMetadata),
	}
}

// Add stores a metadata record under the given category, keyed by its
// entity ID. Existing records are replaced.
func (d *InMemoryDirectory) Add(category string, md domain.PartyMetadata) {
	d.mu.Lock()
	defer d.mu.Unlock()

	byID, ok := d.entries[category]
	if !ok {
		byID = make(map[string]domain.PartyMetadata)
		d.entries[category] = byID
	}
	byID[md.EntityID] = md
}

// GetMetadata returns the record for the party, or (nil, nil) if the party
// is not in the directory.
func (d *InMemoryDirectory) GetMetadata(entityID, category string) (*domain.PartyMetadata, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if md, ok := d.entries[category][entityID]; ok {
		// Return a copy to prevent mutation
		return &md, nil
	}
	return nil, nil
}

// Ensure InMemoryDirectory implements ports.MetadataDirectory
var _ ports.MetadataDirectory = (*InMemoryDirectory)(nil)
