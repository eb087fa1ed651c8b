package caddy

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

// MaxHeaderValueLength is the maximum length for HTTP header values.
// This prevents DoS attacks via extremely long attribute values.
const MaxHeaderValueLength = 8192

// DefaultValueSeparator joins multiple attribute values in a header
// (Shibboleth convention).
const DefaultValueSeparator = ";"

// HeaderAttribute maps a request header carrying an upstream-asserted
// attribute to the attribute name the enrichment steps read.
type HeaderAttribute struct {
	// Header is the request header name. Must start with "X-".
	Header string `json:"header"`

	// Attribute is the attribute name or OID the header values are stored
	// under. Examples: "eduPersonScopedAffiliation",
	// "urn:oid:1.3.6.1.4.1.5923.1.1.1.9".
	Attribute string `json:"attribute"`

	// Separator splits multiple values in the header. Defaults to ";".
	Separator string `json:"separator,omitempty"`
}

// IsValidHeaderName reports whether a header name is safe to read or write:
// "X-" prefixed (case-insensitive) and containing only A-Za-z0-9- afterwards.
// This prevents the bridge from touching standard headers.
func IsValidHeaderName(name string) bool {
	if len(name) < 3 {
		return false
	}

	if !strings.EqualFold(name[:2], "X-") {
		return false
	}

	for i := 2; i < len(name); i++ {
		c := name[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-'
		if !valid {
			return false
		}
	}

	return true
}

// sanitizeHeaderValue removes dangerous characters and enforces length limits.
// This prevents:
//   - HTTP header injection via CR/LF
//   - Null byte injection
//   - DoS via extremely long values
func sanitizeHeaderValue(v string) string {
	if v == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(min(len(v), MaxHeaderValueLength))

	for _, r := range v {
		// Skip control characters (including CR, LF, null)
		if r < 32 || r == 127 {
			continue
		}

		// Skip Unicode line/paragraph separators
		if r == ' ' || r == ' ' {
			continue
		}

		// Skip format characters (includes BOM, RTL override, etc.)
		if unicode.Is(unicode.Cf, r) {
			continue
		}

		result.WriteRune(r)

		if result.Len() >= MaxHeaderValueLength {
			break
		}
	}

	return result.String()
}

// attributesFromHeaders builds an attribute map from request headers using
// the configured mappings. Attribute names are stored in OID form; missing
// or empty headers produce no attribute entry.
func attributesFromHeaders(r *http.Request, mappings []HeaderAttribute) map[string][]string {
	attrs := make(map[string][]string)

	for _, m := range mappings {
		raw := r.Header.Get(m.Header)
		if raw == "" {
			continue
		}

		sep := m.Separator
		if sep == "" {
			sep = DefaultValueSeparator
		}

		var values []string
		for _, v := range strings.Split(raw, sep) {
			if v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		attrs[domain.CanonicalAttributeName(m.Attribute)] = values
	}

	return attrs
}

// setDerivedHeader writes a derived attribute's value to a request header
// for the upstream, sanitized. A missing attribute removes the header so an
// inbound spoofed value can never leak through.
func setDerivedHeader(r *http.Request, header string, values []string) {
	if len(values) == 0 {
		r.Header.Del(header)
		return
	}

	sanitized := sanitizeHeaderValue(values[0])
	if sanitized == "" {
		r.Header.Del(header)
		return
	}
	r.Header.Set(header, sanitized)
}
