package domain

import "strings"

// CategoryRemoteIdentityProvider is the metadata-directory category for
// remote identity-provider records, queried in bridging deployments.
const CategoryRemoteIdentityProvider = "saml20-idp-remote"

// DefaultLanguage is the language tag preferred when extracting a display
// name from localized metadata fields.
const DefaultLanguage = "en"

// PartyMetadata is the descriptive metadata record of a federation party.
// This is the core domain model - it has no external dependencies.
type PartyMetadata struct {
	// EntityID is the unique identifier for this party.
	EntityID string `json:"entity_id"`

	// DisplayNames contains the mdui:DisplayName language variants.
	// Key is the language code (e.g., "en", "de").
	DisplayNames map[string]string `json:"display_names,omitempty"`

	// Names contains the md:OrganizationDisplayName / md:OrganizationName
	// language variants. Key is the language code.
	Names map[string]string `json:"names,omitempty"`

	// Name is a plain, non-localized name for the party. Consulted only
	// when no localized name matches.
	Name string `json:"name,omitempty"`
}

// LocalizedValue represents an element with xml:lang attribute.
type LocalizedValue struct {
	Lang  string `xml:"lang,attr"`
	Value string `xml:",chardata"`
}

// LocalizedValuesToMap converts a slice of LocalizedValue to a map
// keyed by language code.
func LocalizedValuesToMap(values []LocalizedValue) map[string]string {
	if len(values) == 0 {
		return nil
	}
	m := make(map[string]string, len(values))
	for _, v := range values {
		m[v.Lang] = strings.TrimSpace(v.Value)
	}
	return m
}

// OrganizationName extracts an organization name from a metadata record.
// Lookup precedence, first non-empty match wins:
//
//  1. the localized display-name entry for lang
//  2. the localized plain-name entry for lang
//  3. the plain Name field
//
// Returns ok=false when nothing matches. Absence is never an error.
//
// This is a pure function with no side effects or I/O.
func OrganizationName(md *PartyMetadata, lang string) (string, bool) {
	if md == nil {
		return "", false
	}

	if name := md.DisplayNames[lang]; name != "" {
		return name, true
	}
	if name := md.Names[lang]; name != "" {
		return name, true
	}
	if md.Name != "" {
		return md.Name, true
	}

	return "", false
}
