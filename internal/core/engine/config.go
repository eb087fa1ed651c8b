// Package engine implements the attribute enrichment rules: the affiliation
// classifier and the organization-from-metadata resolver. Both are pure,
// synchronous, single-pass transforms over a request-scoped state record;
// one instance of each is shared across many requests.
package engine

import (
	"go.uber.org/zap"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// ClassifierConfig configures an affiliation Classifier. It is validated
// once at construction and read-only afterwards.
type ClassifierConfig struct {
	// ScopedAffiliationAttribute is the attribute read for scoped values.
	// Defaults to eduPersonScopedAffiliation.
	ScopedAffiliationAttribute string

	// OrganizationAttribute is the attribute written with the derived
	// organization. Defaults to the RFC 4519 "o" OID.
	OrganizationAttribute string

	// PrimaryAffiliationAttribute is the attribute written with the derived
	// affiliation. Defaults to eduPersonPrimaryAffiliation.
	PrimaryAffiliationAttribute string

	// ExcludedRequestingParties lists relying-party entity IDs for which
	// the step is a no-op.
	ExcludedRequestingParties []string

	// ExcludedRespondingParties lists asserting-party entity IDs for which
	// the metadata fallback is skipped.
	ExcludedRespondingParties []string

	// PreferredLanguage selects the language variant of localized metadata
	// names. Defaults to "en".
	PreferredLanguage string
}

// SetDefaults fills in default values for unset fields and canonicalizes
// attribute names to their OID form.
func (c *ClassifierConfig) SetDefaults() {
	if c.ScopedAffiliationAttribute == "" {
		c.ScopedAffiliationAttribute = domain.AttrScopedAffiliation
	}
	if c.OrganizationAttribute == "" {
		c.OrganizationAttribute = domain.AttrOrganization
	}
	if c.PrimaryAffiliationAttribute == "" {
		c.PrimaryAffiliationAttribute = domain.AttrPrimaryAffiliation
	}
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = domain.DefaultLanguage
	}
	c.ScopedAffiliationAttribute = domain.CanonicalAttributeName(c.ScopedAffiliationAttribute)
	c.OrganizationAttribute = domain.CanonicalAttributeName(c.OrganizationAttribute)
	c.PrimaryAffiliationAttribute = domain.CanonicalAttributeName(c.PrimaryAffiliationAttribute)
}

func (c *ClassifierConfig) validate() error {
	if c.OrganizationAttribute == c.PrimaryAffiliationAttribute {
		return domain.ConfigError("organization and primary-affiliation attributes must differ")
	}
	return nil
}

// OrgResolverConfig configures a standalone OrgResolver.
type OrgResolverConfig struct {
	// OrganizationAttribute is the attribute written with the resolved
	// organization. Defaults to the RFC 4519 "o" OID.
	OrganizationAttribute string

	// PrimaryAffiliationAttribute is the attribute written when
	// SetDefaultAffiliation is enabled. Defaults to
	// eduPersonPrimaryAffiliation.
	PrimaryAffiliationAttribute string

	// SetDefaultAffiliation additionally writes a "member" primary
	// affiliation whenever an organization is resolved. Off by default.
	SetDefaultAffiliation bool

	// ExcludedRequestingParties lists relying-party entity IDs for which
	// the step is a no-op.
	ExcludedRequestingParties []string

	// ExcludedRespondingParties lists asserting-party entity IDs for which
	// resolution is skipped.
	ExcludedRespondingParties []string

	// PreferredLanguage selects the language variant of localized metadata
	// names. Defaults to "en".
	PreferredLanguage string
}

// SetDefaults fills in default values for unset fields and canonicalizes
// attribute names to their OID form.
func (c *OrgResolverConfig) SetDefaults() {
	if c.OrganizationAttribute == "" {
		c.OrganizationAttribute = domain.AttrOrganization
	}
	if c.PrimaryAffiliationAttribute == "" {
		c.PrimaryAffiliationAttribute = domain.AttrPrimaryAffiliation
	}
	if c.PreferredLanguage == "" {
		c.PreferredLanguage = domain.DefaultLanguage
	}
	c.OrganizationAttribute = domain.CanonicalAttributeName(c.OrganizationAttribute)
	c.PrimaryAffiliationAttribute = domain.CanonicalAttributeName(c.PrimaryAffiliationAttribute)
}

func (c *OrgResolverConfig) validate() error {
	if c.SetDefaultAffiliation && c.OrganizationAttribute == c.PrimaryAffiliationAttribute {
		return domain.ConfigError("organization and primary-affiliation attributes must differ")
	}
	return nil
}

// Option is a functional option for configuring engine components.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	metrics ports.MetricsRecorder
}

// WithLogger returns an option that sets the component's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics returns an option that sets the component's metrics recorder.
func WithMetrics(recorder ports.MetricsRecorder) Option {
	return func(o *options) {
		o.metrics = recorder
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

func stringSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
