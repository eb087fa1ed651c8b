package ports

import "github.com/rciam/caddy-affiliation/internal/core/domain"

// MetadataDirectory is the port interface for looking up party metadata.
// Implementations must be safe for concurrent use.
type MetadataDirectory interface {
	// GetMetadata returns the metadata record for a party in the given
	// category (e.g. domain.CategoryRemoteIdentityProvider).
	//
	// A party that is simply not in the directory yields (nil, nil);
	// a non-nil error means the directory itself failed and the current
	// request's processing must halt.
	GetMetadata(entityID, category string) (*domain.PartyMetadata, error)
}
