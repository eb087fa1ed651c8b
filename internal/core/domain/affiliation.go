package domain

import "strings"

// AffiliationMember is the normalized affiliation written for roles that
// belong to the membership taxonomy.
const AffiliationMember = "member"

// memberRoles is the fixed membership taxonomy. A scoped-affiliation role in
// this set collapses to "member"; any other role is carried through unchanged.
// Matching is case-sensitive with no normalization.
var memberRoles = map[string]bool{
	"faculty":  true,
	"staff":    true,
	"student":  true,
	"employee": true,
	"member":   true,
}

// IsMemberRole reports whether role belongs to the membership taxonomy.
//
// This is a pure function with no side effects or I/O.
func IsMemberRole(role string) bool {
	return memberRoles[role]
}

// ScopedValue is a parsed scoped-affiliation value of the form "role@scope".
type ScopedValue struct {
	// Role is the portion before the first "@", e.g. "student".
	Role string

	// Scope is the portion after the first "@", e.g. "example.org".
	// A value containing further "@" characters is kept as-is.
	Scope string
}

// ParseScopedValue splits a raw attribute value at the first "@" delimiter.
// Returns ok=false for values with no delimiter; such values are not scoped
// and callers skip them rather than treating them as errors.
//
// This is a total function over any string input, including empty strings.
func ParseScopedValue(value string) (ScopedValue, bool) {
	idx := strings.Index(value, "@")
	if idx == -1 {
		return ScopedValue{}, false
	}
	return ScopedValue{
		Role:  value[:idx],
		Scope: value[idx+1:],
	}, true
}

// ClassifyRole maps a scoped-affiliation role to the primary-affiliation
// value to write: "member" for taxonomy roles, the role itself otherwise.
func ClassifyRole(role string) string {
	if IsMemberRole(role) {
		return AffiliationMember
	}
	return role
}
