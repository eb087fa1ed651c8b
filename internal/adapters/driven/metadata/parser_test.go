//go:build unit

package metadata

import (
	"strings"
	"testing"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

func TestParseMetadata_SingleEntity(t *testing.T) {
	parties, err := ParseMetadata([]byte(singleEntityXML))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}
	if len(parties) != 1 {
		t.Fatalf("got %d parties, want 1", len(parties))
	}

	p := parties[0]
	if p.EntityID != "https://idp.example.org/idp" {
		t.Errorf("EntityID = %q", p.EntityID)
	}
	if p.DisplayNames["en"] != "Example University" {
		t.Errorf("DisplayNames[en] = %q, want Example University", p.DisplayNames["en"])
	}
	if p.DisplayNames["de"] != "Beispieluniversität" {
		t.Errorf("DisplayNames[de] = %q", p.DisplayNames["de"])
	}
	// OrganizationDisplayName takes precedence over OrganizationName
	if p.Names["en"] != "Example University Org" {
		t.Errorf("Names[en] = %q, want Example University Org", p.Names["en"])
	}

	name, ok := domain.OrganizationName(&p, "en")
	if !ok || name != "Example University" {
		t.Errorf("OrganizationName = (%q, %v), want Example University", name, ok)
	}
}

func TestParseMetadata_Aggregate(t *testing.T) {
	parties, err := ParseMetadata([]byte(aggregateXML))
	if err != nil {
		t.Fatalf("ParseMetadata: %v", err)
	}

	// The SP entity is skipped.
	if len(parties) != 2 {
		t.Fatalf("got %d parties, want 2", len(parties))
	}

	byID := make(map[string]domain.PartyMetadata)
	for _, p := range parties {
		byID[p.EntityID] = p
	}

	first, ok := byID["https://idp1.example.org/idp"]
	if !ok {
		t.Fatal("idp1 missing")
	}
	if first.DisplayNames["en"] != "First University" {
		t.Errorf("idp1 DisplayNames[en] = %q", first.DisplayNames["en"])
	}

	second, ok := byID["https://idp2.example.org/idp"]
	if !ok {
		t.Fatal("idp2 missing")
	}
	if second.DisplayNames != nil {
		t.Errorf("idp2 DisplayNames = %v, want none", second.DisplayNames)
	}
	if second.Names["en"] != "Second University" {
		t.Errorf("idp2 Names[en] = %q, want Second University", second.Names["en"])
	}
}

func TestParseMetadata_Invalid(t *testing.T) {
	if _, err := ParseMetadata([]byte("not xml at all")); err == nil {
		t.Error("ParseMetadata accepted junk input")
	}

	// SP-only metadata has no identity providers.
	spOnly := `<?xml version="1.0"?>
<EntityDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata" entityID="https://sp.example.org/sp">
  <SPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol"/>
</EntityDescriptor>`
	if _, err := ParseMetadata([]byte(spOnly)); err == nil || !strings.Contains(err.Error(), "IDPSSODescriptor") {
		t.Errorf("ParseMetadata(sp-only) error = %v, want missing IDPSSODescriptor", err)
	}
}
