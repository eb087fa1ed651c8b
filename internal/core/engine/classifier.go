package engine

import (
	"go.uber.org/zap"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// Metric label values for classification sources and skip reasons.
const (
	sourceScopedAffiliation = "scoped_affiliation"
	sourceMetadata          = "metadata"

	skipRequestingPartyExcluded = "requesting_party_excluded"
	skipRespondingPartyExcluded = "responding_party_excluded"
	skipNoMetadataName          = "no_metadata_name"
	skipAlreadyPopulated        = "already_populated"
)

// Classifier derives a primary-affiliation and a home-organization attribute
// from a scoped-affiliation attribute, falling back to party metadata when
// no scoped value is present.
//
// A single Classifier is safe for concurrent use; request state is never
// shared between invocations.
type Classifier struct {
	cfg                ClassifierConfig
	excludedRequesting map[string]struct{}
	excludedResponding map[string]struct{}
	directory          ports.MetadataDirectory
	logger             *zap.Logger
	metrics            ports.MetricsRecorder
}

// NewClassifier creates a Classifier. The directory may be nil when bridging
// deployments are not in play. Configuration errors surface here, never
// per-request.
func NewClassifier(cfg ClassifierConfig, directory ports.MetadataDirectory, opts ...Option) (*Classifier, error) {
	cfg.SetDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	return &Classifier{
		cfg:                cfg,
		excludedRequesting: stringSet(cfg.ExcludedRequestingParties),
		excludedResponding: stringSet(cfg.ExcludedRespondingParties),
		directory:          directory,
		logger:             o.logger,
		metrics:            o.metrics,
	}, nil
}

// Process mutates state.Attributes in place.
//
// Scoped values are scanned in order. The first scoped value always sets
// both target attributes; a taxonomy role collapses to "member" and stops
// the scan, while a non-taxonomy role keeps scanning so a later "member"
// value may overwrite it. When no scoped value exists the organization is
// taken from responding-party metadata with an unconditional "member"
// affiliation.
//
// Expected no-op conditions (excluded party, missing source attribute,
// metadata without a usable name) return nil without mutation. A non-nil
// error is an unexpected fault, fatal to the current request.
func (c *Classifier) Process(state *domain.RequestState) error {
	if state == nil {
		return nil
	}

	if c.isExcludedRequesting(state.RequestingParty) {
		c.logger.Debug("requesting party excluded, skipping affiliation classification",
			zap.String("requesting_party", state.RequestingParty))
		c.recordSkip(skipRequestingPartyExcluded)
		return nil
	}

	respondingParty, metadata, err := resolveRespondingParty(state, c.directory)
	if err != nil {
		c.recordFault()
		return err
	}

	if c.classifyScoped(state) {
		return nil
	}

	return c.fallbackToMetadata(state, respondingParty, metadata)
}

// classifyScoped scans the scoped-affiliation attribute and reports whether
// at least one scoped value was found (in which case the metadata fallback
// must not run).
func (c *Classifier) classifyScoped(state *domain.RequestState) bool {
	found := false
	for _, raw := range state.Values(c.cfg.ScopedAffiliationAttribute) {
		sv, ok := domain.ParseScopedValue(raw)
		if !ok {
			// Not scoped: skip, keep scanning.
			continue
		}
		found = true

		affiliation := domain.ClassifyRole(sv.Role)
		state.SetDerived(c.cfg.OrganizationAttribute, sv.Scope)
		state.SetDerived(c.cfg.PrimaryAffiliationAttribute, affiliation)

		if affiliation == domain.AffiliationMember {
			// "member" wins over any other value, regardless of position.
			break
		}
	}

	if found {
		c.logger.Debug("affiliation derived from scoped attribute",
			zap.Strings("affiliation", state.Values(c.cfg.PrimaryAffiliationAttribute)),
			zap.Strings("organization", state.Values(c.cfg.OrganizationAttribute)))
		c.recordClassification(sourceScopedAffiliation, firstValue(state, c.cfg.PrimaryAffiliationAttribute))
	}
	return found
}

// fallbackToMetadata derives the organization from the responding party's
// metadata record and writes the default "member" affiliation.
func (c *Classifier) fallbackToMetadata(state *domain.RequestState, respondingParty string, metadata *domain.PartyMetadata) error {
	if _, excluded := c.excludedResponding[respondingParty]; excluded && respondingParty != "" {
		c.logger.Debug("responding party excluded, skipping metadata fallback",
			zap.String("responding_party", respondingParty))
		c.recordSkip(skipRespondingPartyExcluded)
		return nil
	}

	name, ok := domain.OrganizationName(metadata, c.cfg.PreferredLanguage)
	if !ok {
		c.logger.Debug("no organization name in responding-party metadata",
			zap.String("responding_party", respondingParty))
		c.recordSkip(skipNoMetadataName)
		return nil
	}

	state.SetDerived(c.cfg.OrganizationAttribute, name)
	state.SetDerived(c.cfg.PrimaryAffiliationAttribute, domain.AffiliationMember)

	c.logger.Debug("affiliation derived from metadata",
		zap.String("responding_party", respondingParty),
		zap.String("organization", name))
	c.recordClassification(sourceMetadata, domain.AffiliationMember)
	return nil
}

func (c *Classifier) isExcludedRequesting(party string) bool {
	if party == "" {
		return false
	}
	_, ok := c.excludedRequesting[party]
	return ok
}

func (c *Classifier) recordClassification(source, affiliation string) {
	if c.metrics != nil {
		c.metrics.RecordClassification(source, affiliation)
	}
}

func (c *Classifier) recordSkip(reason string) {
	if c.metrics != nil {
		c.metrics.RecordSkip(reason)
	}
}

func (c *Classifier) recordFault() {
	if c.metrics != nil {
		c.metrics.RecordFault()
	}
}

func firstValue(state *domain.RequestState, name string) string {
	values := state.Values(name)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Ensure Classifier implements ports.StateProcessor
var _ ports.StateProcessor = (*Classifier)(nil)
