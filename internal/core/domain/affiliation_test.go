//go:build unit

package domain

import "testing"

// TestParseScopedValue_Scoped tests splitting of scoped values at the first "@".
func TestParseScopedValue_Scoped(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		wantRole  string
		wantScope string
	}{
		{"simple", "student@example.org", "student", "example.org"},
		{"empty role", "@example.org", "", "example.org"},
		{"empty scope", "student@", "student", ""},
		{"only delimiter", "@", "", ""},
		{"multiple delimiters split at first", "staff@dept@example.org", "staff", "dept@example.org"},
		{"leading whitespace preserved", " staff@example.org", " staff", "example.org"},
		{"unicode role", "étudiant@example.org", "étudiant", "example.org"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sv, ok := ParseScopedValue(tc.value)
			if !ok {
				t.Fatalf("ParseScopedValue(%q) not ok, want scoped", tc.value)
			}
			if sv.Role != tc.wantRole || sv.Scope != tc.wantScope {
				t.Errorf("ParseScopedValue(%q) = (%q, %q), want (%q, %q)",
					tc.value, sv.Role, sv.Scope, tc.wantRole, tc.wantScope)
			}
		})
	}
}

// TestParseScopedValue_NotScoped tests that values without "@" are reported
// as not scoped rather than as errors.
func TestParseScopedValue_NotScoped(t *testing.T) {
	for _, value := range []string{"", "noatsign", "student", "example.org"} {
		t.Run(value, func(t *testing.T) {
			if _, ok := ParseScopedValue(value); ok {
				t.Errorf("ParseScopedValue(%q) ok, want not scoped", value)
			}
		})
	}
}

// TestIsMemberRole tests the membership taxonomy. Matching is case-sensitive
// with no normalization.
func TestIsMemberRole(t *testing.T) {
	testCases := []struct {
		role     string
		expected bool
	}{
		{"faculty", true},
		{"staff", true},
		{"student", true},
		{"employee", true},
		{"member", true},
		{"affiliate", false},
		{"alum", false},
		{"library-walk-in", false},
		{"Student", false},
		{"STAFF", false},
		{"student ", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			if got := IsMemberRole(tc.role); got != tc.expected {
				t.Errorf("IsMemberRole(%q) = %v, want %v", tc.role, got, tc.expected)
			}
		})
	}
}

// TestClassifyRole tests that taxonomy roles collapse to "member" and other
// roles pass through unchanged.
func TestClassifyRole(t *testing.T) {
	if got := ClassifyRole("faculty"); got != AffiliationMember {
		t.Errorf("ClassifyRole(faculty) = %q, want %q", got, AffiliationMember)
	}
	if got := ClassifyRole("affiliate"); got != "affiliate" {
		t.Errorf("ClassifyRole(affiliate) = %q, want affiliate", got)
	}
	if got := ClassifyRole(""); got != "" {
		t.Errorf("ClassifyRole(\"\") = %q, want empty", got)
	}
}
