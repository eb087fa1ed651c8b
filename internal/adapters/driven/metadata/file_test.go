//go:build integration

package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

func writeMetadataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.xml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write metadata file: %v", err)
	}
	return path
}

func TestFileDirectory_Load(t *testing.T) {
	dir := NewFileDirectory(writeMetadataFile(t, aggregateXML), domain.CategoryRemoteIdentityProvider)
	if err := dir.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	md, err := dir.GetMetadata("https://idp1.example.org/idp", domain.CategoryRemoteIdentityProvider)
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if md == nil || md.DisplayNames["en"] != "First University" {
		t.Errorf("GetMetadata = %+v, want First University record", md)
	}
}

func TestFileDirectory_AbsentPartyAndCategory(t *testing.T) {
	dir := NewFileDirectory(writeMetadataFile(t, singleEntityXML), domain.CategoryRemoteIdentityProvider)
	if err := dir.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Unknown party: absent is not an error.
	md, err := dir.GetMetadata("https://unknown.example.org", domain.CategoryRemoteIdentityProvider)
	if err != nil || md != nil {
		t.Errorf("GetMetadata(unknown) = (%v, %v), want (nil, nil)", md, err)
	}

	// Wrong category: absent as well.
	md, err = dir.GetMetadata("https://idp.example.org/idp", "some-other-category")
	if err != nil || md != nil {
		t.Errorf("GetMetadata(wrong category) = (%v, %v), want (nil, nil)", md, err)
	}
}

func TestFileDirectory_LoadErrors(t *testing.T) {
	dir := NewFileDirectory(filepath.Join(t.TempDir(), "missing.xml"), domain.CategoryRemoteIdentityProvider)
	if err := dir.Load(); err == nil {
		t.Error("Load succeeded for missing file")
	}

	dir = NewFileDirectory(writeMetadataFile(t, "junk"), domain.CategoryRemoteIdentityProvider)
	if err := dir.Load(); err == nil {
		t.Error("Load succeeded for unparseable file")
	}
}
