package engine

import (
	"go.uber.org/zap"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// OrgResolver derives the home-organization attribute from responding-party
// metadata as a standalone enrichment step. It never overwrites an already
// populated organization attribute.
//
// A single OrgResolver is safe for concurrent use.
type OrgResolver struct {
	cfg                OrgResolverConfig
	excludedRequesting map[string]struct{}
	excludedResponding map[string]struct{}
	directory          ports.MetadataDirectory
	logger             *zap.Logger
	metrics            ports.MetricsRecorder
}

// NewOrgResolver creates an OrgResolver. The directory may be nil when
// bridging deployments are not in play.
func NewOrgResolver(cfg OrgResolverConfig, directory ports.MetadataDirectory, opts ...Option) (*OrgResolver, error) {
	cfg.SetDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	return &OrgResolver{
		cfg:                cfg,
		excludedRequesting: stringSet(cfg.ExcludedRequestingParties),
		excludedResponding: stringSet(cfg.ExcludedRespondingParties),
		directory:          directory,
		logger:             o.logger,
		metrics:            o.metrics,
	}, nil
}

// Process mutates state.Attributes in place, writing the organization
// attribute from responding-party metadata. Expected no-op conditions
// (excluded party, attribute already populated, metadata without a usable
// name) return nil without mutation; a non-nil error is an unexpected
// fault, fatal to the current request.
func (r *OrgResolver) Process(state *domain.RequestState) error {
	if state == nil {
		return nil
	}

	if state.RequestingParty != "" {
		if _, excluded := r.excludedRequesting[state.RequestingParty]; excluded {
			r.logger.Debug("requesting party excluded, skipping organization resolution",
				zap.String("requesting_party", state.RequestingParty))
			r.recordSkip(skipRequestingPartyExcluded)
			return nil
		}
	}

	if state.HasValues(r.cfg.OrganizationAttribute) {
		r.recordSkip(skipAlreadyPopulated)
		return nil
	}

	respondingParty, metadata, err := resolveRespondingParty(state, r.directory)
	if err != nil {
		r.recordFault()
		return err
	}

	if respondingParty != "" {
		if _, excluded := r.excludedResponding[respondingParty]; excluded {
			r.logger.Debug("responding party excluded, skipping organization resolution",
				zap.String("responding_party", respondingParty))
			r.recordSkip(skipRespondingPartyExcluded)
			return nil
		}
	}

	name, ok := domain.OrganizationName(metadata, r.cfg.PreferredLanguage)
	if !ok {
		r.recordSkip(skipNoMetadataName)
		return nil
	}

	state.SetDerived(r.cfg.OrganizationAttribute, name)
	affiliation := ""
	if r.cfg.SetDefaultAffiliation {
		state.SetDerived(r.cfg.PrimaryAffiliationAttribute, domain.AffiliationMember)
		affiliation = domain.AffiliationMember
	}

	r.logger.Debug("organization resolved from metadata",
		zap.String("responding_party", respondingParty),
		zap.String("organization", name))
	r.recordClassification(sourceMetadata, affiliation)
	return nil
}

func (r *OrgResolver) recordClassification(source, affiliation string) {
	if r.metrics != nil {
		r.metrics.RecordClassification(source, affiliation)
	}
}

func (r *OrgResolver) recordSkip(reason string) {
	if r.metrics != nil {
		r.metrics.RecordSkip(reason)
	}
}

func (r *OrgResolver) recordFault() {
	if r.metrics != nil {
		r.metrics.RecordFault()
	}
}

// Ensure OrgResolver implements ports.StateProcessor
var _ ports.StateProcessor = (*OrgResolver)(nil)
