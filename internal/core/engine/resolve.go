package engine

import (
	"fmt"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// resolveRespondingParty returns the effective responding-party entity ID
// and its metadata record for a request.
//
// In the bridging scenario (state.BridgedParty set) the bridged party
// overrides the recorded responding party and its metadata is looked up in
// the directory under the remote identity-provider category. Otherwise the
// request's own identifier and inline metadata are used directly.
//
// A party absent from the directory yields nil metadata; a directory fault
// is returned as a lookup error, fatal to the current request.
func resolveRespondingParty(state *domain.RequestState, directory ports.MetadataDirectory) (string, *domain.PartyMetadata, error) {
	if state.BridgedParty == "" {
		return state.RespondingParty, state.RespondingPartyMetadata, nil
	}

	if directory == nil {
		return state.BridgedParty, nil, nil
	}

	md, err := directory.GetMetadata(state.BridgedParty, domain.CategoryRemoteIdentityProvider)
	if err != nil {
		return "", nil, domain.LookupError(
			fmt.Sprintf("look up metadata for bridged party %q", state.BridgedParty), err)
	}
	return state.BridgedParty, md, nil
}
