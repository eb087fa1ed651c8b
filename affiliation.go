// Package caddyaffiliation enriches a federated identity's attribute set
// with a normalized primary-affiliation and a home-organization attribute.
//
// The affiliation is derived from eduPersonScopedAffiliation values of the
// form "role@scope": roles in the membership taxonomy (faculty, staff,
// student, employee, member) collapse to "member", any other role is carried
// through unchanged, and the scope becomes the organization. When no scoped
// value is present, the organization falls back to the asserting party's
// metadata display name.
//
// The package is consumed either as a library (engine components over a
// request state record) or as the Caddy HTTP handler module "affiliation"
// registered by importing this package.
package caddyaffiliation

import (
	drivenmetadata "github.com/rciam/caddy-affiliation/internal/adapters/driven/metadata"
	drivenmetrics "github.com/rciam/caddy-affiliation/internal/adapters/driven/metrics"
	caddyadapter "github.com/rciam/caddy-affiliation/internal/adapters/driving/caddy"
	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/engine"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// Re-export core domain types
type (
	RequestState  = domain.RequestState
	PartyMetadata = domain.PartyMetadata
	ScopedValue   = domain.ScopedValue
)

// Re-export engine components and configuration
type (
	Classifier        = engine.Classifier
	ClassifierConfig  = engine.ClassifierConfig
	OrgResolver       = engine.OrgResolver
	OrgResolverConfig = engine.OrgResolverConfig
	Option            = engine.Option
)

// Re-export port interfaces
type (
	MetadataDirectory = ports.MetadataDirectory
	MetricsRecorder   = ports.MetricsRecorder
	StateProcessor    = ports.StateProcessor
)

// Re-export adapters commonly wired by hosts
type (
	InMemoryDirectory = drivenmetadata.InMemoryDirectory
	FileDirectory     = drivenmetadata.FileDirectory
	HeaderAttribute   = caddyadapter.HeaderAttribute
)

var (
	NewClassifier  = engine.NewClassifier
	NewOrgResolver = engine.NewOrgResolver
	WithLogger     = engine.WithLogger
	WithMetrics    = engine.WithMetrics

	NewInMemoryDirectory         = drivenmetadata.NewInMemoryDirectory
	NewFileDirectory             = drivenmetadata.NewFileDirectory
	NewNoopMetricsRecorder       = drivenmetrics.NewNoopMetricsRecorder
	NewPrometheusMetricsRecorder = drivenmetrics.NewPrometheusMetricsRecorder

	ParseScopedValue     = domain.ParseScopedValue
	IsMemberRole         = domain.IsMemberRole
	ClassifyRole         = domain.ClassifyRole
	ResolveAttributeName = domain.ResolveAttributeName
	OrganizationName     = domain.OrganizationName
)

// Re-export well-known constants
const (
	AffiliationMember              = domain.AffiliationMember
	AttrScopedAffiliation          = domain.AttrScopedAffiliation
	AttrPrimaryAffiliation         = domain.AttrPrimaryAffiliation
	AttrOrganization               = domain.AttrOrganization
	CategoryRemoteIdentityProvider = domain.CategoryRemoteIdentityProvider
)
