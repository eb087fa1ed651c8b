package domain

// RequestState is the per-request record the enrichment steps mutate in
// place. It is created by the pipeline host before invocation and never
// shared between concurrent requests.
type RequestState struct {
	// Attributes maps attribute names (OID form) to ordered value lists.
	// Iteration order of a value list is the tie-breaking order for
	// multi-valued scoped affiliations.
	Attributes map[string][]string `json:"attributes"`

	// RequestingParty is the entity ID of the relying party (SP) for this
	// request. Optional.
	RequestingParty string `json:"requesting_party,omitempty"`

	// RespondingParty is the entity ID of the asserting party (IdP) that
	// produced the attributes. Optional.
	RespondingParty string `json:"responding_party,omitempty"`

	// RespondingPartyMetadata is the inline metadata record of the
	// responding party, when the host already has it. Optional.
	RespondingPartyMetadata *PartyMetadata `json:"responding_party_metadata,omitempty"`

	// BridgedParty is set in bridging (IdP-proxy) deployments: it overrides
	// RespondingParty as the party whose metadata describes the subject's
	// home organization. Its metadata is never inline and must be looked up
	// in the metadata directory.
	BridgedParty string `json:"bridged_party,omitempty"`
}

// Values returns the value list for an attribute, or nil if absent.
func (s *RequestState) Values(name string) []string {
	if s.Attributes == nil {
		return nil
	}
	return s.Attributes[name]
}

// HasValues reports whether an attribute is present with at least one value.
func (s *RequestState) HasValues(name string) bool {
	return len(s.Values(name)) > 0
}

// SetDerived writes a derived attribute. Derivation always yields exactly one
// value, so the attribute is replaced with a fresh single-element list.
func (s *RequestState) SetDerived(name, value string) {
	if s.Attributes == nil {
		s.Attributes = make(map[string][]string)
	}
	s.Attributes[name] = []string{value}
}
