//go:build unit

package metadata

import (
	"testing"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

func TestInMemoryDirectory(t *testing.T) {
	dir := NewInMemoryDirectory()
	dir.Add(domain.CategoryRemoteIdentityProvider, domain.PartyMetadata{
		EntityID:     "https://idp.example.org",
		DisplayNames: map[string]string{"en": "Example University"},
	})

	md, err := dir.GetMetadata("https://idp.example.org", domain.CategoryRemoteIdentityProvider)
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if md == nil || md.EntityID != "https://idp.example.org" {
		t.Fatalf("GetMetadata = %+v", md)
	}

	if md2, _ := dir.GetMetadata("https://idp.example.org", "other-category"); md2 != nil {
		t.Errorf("GetMetadata(other category) = %+v, want nil", md2)
	}
	if md3, _ := dir.GetMetadata("https://absent.example.org", domain.CategoryRemoteIdentityProvider); md3 != nil {
		t.Errorf("GetMetadata(absent) = %+v, want nil", md3)
	}
}

func TestInMemoryDirectory_Replace(t *testing.T) {
	dir := NewInMemoryDirectory()
	dir.Add(domain.CategoryRemoteIdentityProvider, domain.PartyMetadata{
		EntityID: "https://idp.example.org",
		Name:     "Old Name",
	})
	dir.Add(domain.CategoryRemoteIdentityProvider, domain.PartyMetadata{
		EntityID: "https://idp.example.org",
		Name:     "New Name",
	})

	md, err := dir.GetMetadata("https://idp.example.org", domain.CategoryRemoteIdentityProvider)
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if md.Name != "New Name" {
		t.Errorf("Name = %q, want New Name", md.Name)
	}
}
