package ports

import "github.com/rciam/caddy-affiliation/internal/core/domain"

// StateProcessor is the capability contract for a pipeline step: it inspects
// the request state and annotates it in place.
//
// Process is synchronous and single-pass; expected "nothing to do"
// conditions return nil without mutation. A non-nil error is an unexpected
// fault, fatal to the current request and reported exactly once by the host.
type StateProcessor interface {
	Process(state *domain.RequestState) error
}
