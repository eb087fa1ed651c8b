package caddy

import (
	"github.com/caddyserver/caddy/v2/caddyconfig/caddyfile"
	"github.com/caddyserver/caddy/v2/caddyconfig/httpcaddyfile"
	"github.com/caddyserver/caddy/v2/modules/caddyhttp"
)

// ParseCaddyfile sets up the handler from Caddyfile tokens.
//
// Syntax:
//
//	affiliation {
//	    mode <classify|organization>
//	    entity_id <entity_id>
//	    scoped_affiliation <attribute>
//	    o_attribute <attribute>
//	    primary_affiliation_attribute <attribute>
//	    sp_blacklist <entity_id...>
//	    idp_blacklist <entity_id...>
//	    set_default_affiliation
//	    preferred_language <lang>
//	    metadata_file <path>
//	    verify_metadata_signature
//	    metadata_signing_cert <path>
//	    enable_metrics
//	    idp_header <name>
//	    bridged_idp_header <name>
//	    org_header <name>
//	    affiliation_header <name>
//	    attribute_headers {
//	        <header> <attribute> [<separator>]
//	    }
//	}
func ParseCaddyfile(h httpcaddyfile.Helper) (caddyhttp.MiddlewareHandler, error) {
	var a Affiliation
	err := a.UnmarshalCaddyfile(h.Dispenser)
	return &a, err
}

// UnmarshalCaddyfile implements caddyfile.Unmarshaler.
func (a *Affiliation) UnmarshalCaddyfile(d *caddyfile.Dispenser) error {
	d.Next() // consume directive name

	for d.NextBlock(0) {
		switch d.Val() {
		case "mode":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.Mode = d.Val()

		case "entity_id":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.EntityID = d.Val()

		case "scoped_affiliation":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.ScopedAffiliation = d.Val()

		case "o_attribute":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.OAttribute = d.Val()

		case "primary_affiliation_attribute":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.PrimaryAffiliationAttribute = d.Val()

		case "sp_blacklist", "blacklist":
			args := d.RemainingArgs()
			if len(args) == 0 {
				return d.ArgErr()
			}
			a.SPBlacklist = append(a.SPBlacklist, args...)

		case "idp_blacklist":
			args := d.RemainingArgs()
			if len(args) == 0 {
				return d.ArgErr()
			}
			a.IdPBlacklist = append(a.IdPBlacklist, args...)

		case "set_default_affiliation":
			if d.NextArg() {
				return d.ArgErr()
			}
			a.SetDefaultAffiliation = true

		case "preferred_language":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.PreferredLanguage = d.Val()

		case "metadata_file":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.MetadataFile = d.Val()

		case "verify_metadata_signature":
			if d.NextArg() {
				return d.ArgErr()
			}
			a.VerifyMetadataSignature = true

		case "metadata_signing_cert":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.MetadataSigningCert = d.Val()

		case "enable_metrics":
			if d.NextArg() {
				return d.ArgErr()
			}
			a.EnableMetrics = true

		case "idp_header":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.IdPHeader = d.Val()

		case "bridged_idp_header":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.BridgedIdPHeader = d.Val()

		case "org_header":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.OrgHeader = d.Val()

		case "affiliation_header":
			if !d.NextArg() {
				return d.ArgErr()
			}
			a.AffiliationHeader = d.Val()

		case "attribute_headers":
			for nesting := d.Nesting(); d.NextBlock(nesting); {
				mapping := HeaderAttribute{Header: d.Val()}
				if !d.NextArg() {
					return d.ArgErr()
				}
				mapping.Attribute = d.Val()
				if d.NextArg() {
					mapping.Separator = d.Val()
				}
				if d.NextArg() {
					return d.ArgErr()
				}
				a.AttributeHeaders = append(a.AttributeHeaders, mapping)
			}

		default:
			return d.Errf("unrecognized subdirective %q", d.Val())
		}
	}

	return nil
}

// Interface guard
var _ caddyfile.Unmarshaler = (*Affiliation)(nil)
