package domain

import "strings"

// Well-known attribute names used as defaults by the enrichment steps.
const (
	// AttrScopedAffiliation is eduPersonScopedAffiliation (multi-valued,
	// values of the form "role@scope").
	AttrScopedAffiliation = "urn:oid:1.3.6.1.4.1.5923.1.1.1.9"

	// AttrPrimaryAffiliation is eduPersonPrimaryAffiliation.
	AttrPrimaryAffiliation = "urn:oid:1.3.6.1.4.1.5923.1.1.1.5"

	// AttrOrganization is the RFC 4519 "o" attribute.
	AttrOrganization = "urn:oid:2.5.4.10"
)

// oidRegistry maps OIDs to their friendly names and vice versa.
// This is a pure domain component with no external dependencies.
var oidRegistry = map[string]string{
	// eduPerson attributes
	"urn:oid:1.3.6.1.4.1.5923.1.1.1.1": "eduPersonAffiliation",
	"eduPersonAffiliation":             "urn:oid:1.3.6.1.4.1.5923.1.1.1.1",
	"urn:oid:1.3.6.1.4.1.5923.1.1.1.5": "eduPersonPrimaryAffiliation",
	"eduPersonPrimaryAffiliation":      "urn:oid:1.3.6.1.4.1.5923.1.1.1.5",
	"urn:oid:1.3.6.1.4.1.5923.1.1.1.6": "eduPersonPrincipalName",
	"eduPersonPrincipalName":           "urn:oid:1.3.6.1.4.1.5923.1.1.1.6",
	"urn:oid:1.3.6.1.4.1.5923.1.1.1.9": "eduPersonScopedAffiliation",
	"eduPersonScopedAffiliation":       "urn:oid:1.3.6.1.4.1.5923.1.1.1.9",

	// Standard LDAP attributes
	"urn:oid:2.5.4.10": "o",
	"o":                "urn:oid:2.5.4.10",
	"urn:oid:2.5.4.11": "ou",
	"ou":               "urn:oid:2.5.4.11",

	// SCHAC attributes
	"urn:oid:1.3.6.1.4.1.25178.1.2.9": "schacHomeOrganization",
	"schacHomeOrganization":           "urn:oid:1.3.6.1.4.1.25178.1.2.9",
}

// ResolveAttributeName resolves an attribute name to both its OID and friendly name.
// If the input is a known OID, returns the OID and its friendly name.
// If the input is a known friendly name, returns the OID and friendly name.
// If the input is unknown, returns it unchanged for both OID and friendly name.
//
// This is a pure function with no side effects or I/O.
func ResolveAttributeName(name string) (oid, friendlyName string) {
	if name == "" {
		return "", ""
	}

	if resolved, ok := oidRegistry[name]; ok {
		if strings.HasPrefix(name, "urn:oid:") {
			return name, resolved
		}
		return resolved, name
	}

	// Unknown name passes through unchanged
	return name, name
}

// CanonicalAttributeName returns the OID form of an attribute name when it is
// known to the registry, or the input unchanged otherwise. Configuration may
// spell attribute names either way; attribute maps always use the OID form.
func CanonicalAttributeName(name string) string {
	oid, _ := ResolveAttributeName(name)
	return oid
}
