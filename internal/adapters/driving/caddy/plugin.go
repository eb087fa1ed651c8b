package caddy

import (
	"fmt"
	"net/http"

	"github.com/caddyserver/caddy/v2"
	"github.com/caddyserver/caddy/v2/caddyconfig/httpcaddyfile"
	"github.com/caddyserver/caddy/v2/modules/caddyhttp"
	"go.uber.org/zap"

	"github.com/rciam/caddy-affiliation/internal/adapters/driven/metadata"
	"github.com/rciam/caddy-affiliation/internal/adapters/driven/metrics"
	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/engine"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

func init() {
	caddy.RegisterModule(Affiliation{})
	httpcaddyfile.RegisterHandlerDirective("affiliation", ParseCaddyfile)
}

// Affiliation is a Caddy HTTP handler module that enriches identity
// attributes conveyed in request headers with a derived home-organization
// and primary-affiliation attribute.
//
// It is meant to run behind a SAML SP handler that authenticates the user
// and exposes the asserted attributes as X- headers; the derived attributes
// are written back as headers for the upstream.
type Affiliation struct {
	Config

	// Runtime state (not serialized)
	processor ports.StateProcessor
	directory ports.MetadataDirectory
	logger    *zap.Logger
}

// CaddyModule returns the Caddy module information.
func (Affiliation) CaddyModule() caddy.ModuleInfo {
	return caddy.ModuleInfo{
		ID:  "http.handlers.affiliation",
		New: func() caddy.Module { return new(Affiliation) },
	}
}

// Provision sets up the module.
func (a *Affiliation) Provision(ctx caddy.Context) error {
	a.logger = ctx.Logger()
	a.logger.Debug("provisioning affiliation enrichment handler")

	a.Config.SetDefaults()
	if err := a.Config.Validate(); err != nil {
		return err
	}

	if a.MetadataFile != "" {
		var dirOpts []metadata.DirectoryOption
		if a.VerifyMetadataSignature {
			certs, err := metadata.LoadSigningCertificates(a.MetadataSigningCert)
			if err != nil {
				return fmt.Errorf("load metadata signing certificate: %w", err)
			}
			dirOpts = append(dirOpts, metadata.WithSignatureVerifier(metadata.NewXMLDsigVerifier(certs)))
			a.logger.Info("metadata signature verification enabled",
				zap.String("cert_file", a.MetadataSigningCert),
				zap.Int("cert_count", len(certs)))
		}
		dirOpts = append(dirOpts, metadata.WithLogger(a.logger))

		dir := metadata.NewFileDirectory(a.MetadataFile, domain.CategoryRemoteIdentityProvider, dirOpts...)
		if err := dir.Load(); err != nil {
			return fmt.Errorf("load metadata directory: %w", err)
		}
		a.directory = dir
	}

	var recorder ports.MetricsRecorder = metrics.NewNoopMetricsRecorder()
	if a.EnableMetrics {
		recorder = metrics.NewPrometheusMetricsRecorder()
	}

	processor, err := a.buildProcessor(recorder)
	if err != nil {
		return err
	}
	a.processor = processor

	a.logger.Info("affiliation enrichment handler provisioned",
		zap.String("mode", a.Mode),
		zap.Int("attribute_headers", len(a.AttributeHeaders)),
		zap.Bool("metadata_directory", a.directory != nil))
	return nil
}

func (a *Affiliation) buildProcessor(recorder ports.MetricsRecorder) (ports.StateProcessor, error) {
	opts := []engine.Option{engine.WithLogger(a.logger), engine.WithMetrics(recorder)}

	switch a.Mode {
	case ModeOrganization:
		return engine.NewOrgResolver(engine.OrgResolverConfig{
			OrganizationAttribute:       a.OAttribute,
			PrimaryAffiliationAttribute: a.PrimaryAffiliationAttribute,
			SetDefaultAffiliation:       a.SetDefaultAffiliation,
			ExcludedRequestingParties:   a.SPBlacklist,
			ExcludedRespondingParties:   a.IdPBlacklist,
			PreferredLanguage:           a.PreferredLanguage,
		}, a.directory, opts...)
	default:
		return engine.NewClassifier(engine.ClassifierConfig{
			ScopedAffiliationAttribute:  a.ScopedAffiliation,
			OrganizationAttribute:       a.OAttribute,
			PrimaryAffiliationAttribute: a.PrimaryAffiliationAttribute,
			ExcludedRequestingParties:   a.SPBlacklist,
			ExcludedRespondingParties:   a.IdPBlacklist,
			PreferredLanguage:           a.PreferredLanguage,
		}, a.directory, opts...)
	}
}

// Validate validates the module configuration after provisioning.
func (a *Affiliation) Validate() error {
	if a.processor == nil {
		return domain.ConfigError("affiliation handler not provisioned")
	}
	return nil
}

// ServeHTTP implements caddyhttp.MiddlewareHandler.
func (a *Affiliation) ServeHTTP(w http.ResponseWriter, r *http.Request, next caddyhttp.Handler) error {
	state := &domain.RequestState{
		Attributes:      attributesFromHeaders(r, a.AttributeHeaders),
		RequestingParty: a.EntityID,
		RespondingParty: r.Header.Get(a.IdPHeader),
		BridgedParty:    r.Header.Get(a.BridgedIdPHeader),
	}

	if err := a.processor.Process(state); err != nil {
		// Fatal for this request: report once and halt without further
		// attribute mutation.
		a.logger.Error("affiliation enrichment failed",
			zap.String("responding_party", state.RespondingParty),
			zap.Error(err))
		return caddyhttp.Error(http.StatusInternalServerError, err)
	}

	orgAttr := domain.CanonicalAttributeName(a.OAttribute)
	if orgAttr == "" {
		orgAttr = domain.AttrOrganization
	}
	affiliationAttr := domain.CanonicalAttributeName(a.PrimaryAffiliationAttribute)
	if affiliationAttr == "" {
		affiliationAttr = domain.AttrPrimaryAffiliation
	}

	setDerivedHeader(r, a.OrgHeader, state.Values(orgAttr))
	setDerivedHeader(r, a.AffiliationHeader, state.Values(affiliationAttr))

	return next.ServeHTTP(w, r)
}

// Interface guards
var (
	_ caddy.Provisioner           = (*Affiliation)(nil)
	_ caddy.Validator             = (*Affiliation)(nil)
	_ caddyhttp.MiddlewareHandler = (*Affiliation)(nil)
)
