package caddy

import (
	"fmt"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

// Step modes. ModeClassify runs the affiliation classifier (scoped-attribute
// scan with metadata fallback); ModeOrganization runs the standalone
// organization resolver.
const (
	ModeClassify     = "classify"
	ModeOrganization = "organization"
)

// Default header names for the attribute bridge.
const (
	DefaultIdPHeader         = "X-Saml-Idp"
	DefaultBridgedIdPHeader  = "X-Saml-Bridged-Idp"
	DefaultOrgHeader         = "X-Organization"
	DefaultAffiliationHeader = "X-Primary-Affiliation"
)

// Config holds the configuration for the affiliation enrichment handler.
type Config struct {
	// Mode selects the enrichment step: "classify" (default) or
	// "organization".
	Mode string `json:"mode,omitempty"`

	// EntityID is the entity ID of the relying party this handler protects.
	// Used for the requesting-party exclusion check.
	EntityID string `json:"entity_id,omitempty"`

	// ScopedAffiliation is the attribute read for scoped values.
	// Accepts OID or friendly name. Defaults to eduPersonScopedAffiliation.
	ScopedAffiliation string `json:"scoped_affiliation,omitempty"`

	// OAttribute is the attribute written with the derived organization.
	// Defaults to the RFC 4519 "o" OID.
	OAttribute string `json:"o_attribute,omitempty"`

	// PrimaryAffiliationAttribute is the attribute written with the derived
	// affiliation. Defaults to eduPersonPrimaryAffiliation.
	PrimaryAffiliationAttribute string `json:"primary_affiliation_attribute,omitempty"`

	// SPBlacklist lists relying-party entity IDs for which the step is
	// skipped entirely.
	SPBlacklist []string `json:"sp_blacklist,omitempty"`

	// IdPBlacklist lists asserting-party entity IDs for which metadata
	// fallback resolution is skipped.
	IdPBlacklist []string `json:"idp_blacklist,omitempty"`

	// SetDefaultAffiliation makes the organization mode also write a
	// "member" primary affiliation. Ignored in classify mode.
	SetDefaultAffiliation bool `json:"set_default_affiliation,omitempty"`

	// PreferredLanguage selects the language variant of localized metadata
	// names. Defaults to "en".
	PreferredLanguage string `json:"preferred_language,omitempty"`

	// MetadataFile is the path to a SAML metadata file (single entity or
	// aggregate) used as the remote identity-provider directory for
	// bridging deployments. Optional.
	MetadataFile string `json:"metadata_file,omitempty"`

	// VerifyMetadataSignature enables enveloped-signature verification of
	// the metadata file against MetadataSigningCert.
	VerifyMetadataSignature bool `json:"verify_metadata_signature,omitempty"`

	// MetadataSigningCert is the path to the PEM certificate(s) trusted to
	// sign the metadata file. Required when VerifyMetadataSignature is set.
	MetadataSigningCert string `json:"metadata_signing_cert,omitempty"`

	// EnableMetrics registers Prometheus counters for enrichment outcomes.
	EnableMetrics bool `json:"enable_metrics,omitempty"`

	// AttributeHeaders maps inbound request headers to the attributes the
	// steps read. At least the scoped-affiliation attribute must be mapped
	// for classify mode to see any scoped values.
	AttributeHeaders []HeaderAttribute `json:"attribute_headers,omitempty"`

	// IdPHeader is the request header carrying the responding party's
	// entity ID, set by the SAML SP layer. Defaults to "X-Saml-Idp".
	IdPHeader string `json:"idp_header,omitempty"`

	// BridgedIdPHeader is the request header carrying the bridged (home)
	// IdP's entity ID in proxy deployments. Defaults to
	// "X-Saml-Bridged-Idp".
	BridgedIdPHeader string `json:"bridged_idp_header,omitempty"`

	// OrgHeader is the request header the derived organization is written
	// to for the upstream. Defaults to "X-Organization".
	OrgHeader string `json:"org_header,omitempty"`

	// AffiliationHeader is the request header the derived primary
	// affiliation is written to. Defaults to "X-Primary-Affiliation".
	AffiliationHeader string `json:"affiliation_header,omitempty"`
}

// SetDefaults fills in default values for unset fields.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ModeClassify
	}
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = domain.DefaultLanguage
	}
	if c.IdPHeader == "" {
		c.IdPHeader = DefaultIdPHeader
	}
	if c.BridgedIdPHeader == "" {
		c.BridgedIdPHeader = DefaultBridgedIdPHeader
	}
	if c.OrgHeader == "" {
		c.OrgHeader = DefaultOrgHeader
	}
	if c.AffiliationHeader == "" {
		c.AffiliationHeader = DefaultAffiliationHeader
	}
}

// Validate checks the configuration. Called after SetDefaults; this is the
// only place configuration errors surface.
func (c *Config) Validate() error {
	if c.Mode != ModeClassify && c.Mode != ModeOrganization {
		return domain.ConfigError(fmt.Sprintf("invalid mode %q: must be %q or %q", c.Mode, ModeClassify, ModeOrganization))
	}

	for _, h := range []string{c.IdPHeader, c.BridgedIdPHeader, c.OrgHeader, c.AffiliationHeader} {
		if !IsValidHeaderName(h) {
			return domain.ConfigError(fmt.Sprintf("invalid header name %q: must start with X- and contain only A-Za-z0-9-", h))
		}
	}

	for _, m := range c.AttributeHeaders {
		if !IsValidHeaderName(m.Header) {
			return domain.ConfigError(fmt.Sprintf("invalid attribute header name %q: must start with X- and contain only A-Za-z0-9-", m.Header))
		}
		if m.Attribute == "" {
			return domain.ConfigError(fmt.Sprintf("attribute header %q is missing an attribute name", m.Header))
		}
	}

	if c.VerifyMetadataSignature && c.MetadataSigningCert == "" {
		return domain.ConfigError("verify_metadata_signature requires metadata_signing_cert")
	}
	if c.VerifyMetadataSignature && c.MetadataFile == "" {
		return domain.ConfigError("verify_metadata_signature requires metadata_file")
	}

	return nil
}
