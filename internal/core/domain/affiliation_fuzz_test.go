//go:build go1.18 && unit

package domain

import (
	"strings"
	"testing"
)

// FuzzParseScopedValue verifies that ParseScopedValue is total over arbitrary
// strings and that splitting happens exactly at the first "@".
func FuzzParseScopedValue(f *testing.F) {
	f.Add("student@example.org")
	f.Add("staff@dept@example.org")
	f.Add("noatsign")
	f.Add("")
	f.Add("@")
	f.Add("@@")

	f.Fuzz(func(t *testing.T, value string) {
		sv, ok := ParseScopedValue(value)

		if ok != strings.Contains(value, "@") {
			t.Fatalf("ParseScopedValue(%q) ok=%v, want %v", value, ok, !ok)
		}
		if !ok {
			if sv.Role != "" || sv.Scope != "" {
				t.Fatalf("ParseScopedValue(%q) not ok but returned (%q, %q)", value, sv.Role, sv.Scope)
			}
			return
		}

		// Role never contains the delimiter; rejoining reconstructs the input.
		if strings.Contains(sv.Role, "@") {
			t.Fatalf("ParseScopedValue(%q) role %q contains @", value, sv.Role)
		}
		if rejoined := sv.Role + "@" + sv.Scope; rejoined != value {
			t.Fatalf("ParseScopedValue(%q) = (%q, %q), rejoins to %q", value, sv.Role, sv.Scope, rejoined)
		}
	})
}
