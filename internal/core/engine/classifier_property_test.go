//go:build unit

package engine

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

// oracleClassify is an independent, direct restatement of the scoped-value
// rules used as a differential reference: the scope written is the scope of
// the winning value, "member" wins at its first occurrence, and otherwise
// the last scoped value's role and scope win.
func oracleClassify(values []string) (affiliation, organization string, found bool) {
	for _, v := range values {
		idx := strings.Index(v, "@")
		if idx == -1 {
			continue
		}
		found = true
		role, scope := v[:idx], v[idx+1:]
		if domain.IsMemberRole(role) {
			return "member", scope, true
		}
		affiliation, organization = role, scope
	}
	return affiliation, organization, found
}

// TestClassifier_MatchesOracle cross-checks the classifier against the
// reference for generated multi-valued inputs.
func TestClassifier_MatchesOracle(t *testing.T) {
	c := newClassifier(t, ClassifierConfig{}, nil)

	roles := []string{"faculty", "staff", "student", "employee", "member", "affiliate", "alum", "library-walk-in", ""}
	scopes := []string{"example.org", "b.org", "dept@example.org", ""}

	property := func(roleIdx, scopeIdx []uint8, unscoped bool) bool {
		var values []string
		for i := range roleIdx {
			role := roles[int(roleIdx[i])%len(roles)]
			scope := scopes[0]
			if len(scopeIdx) > 0 {
				scope = scopes[int(scopeIdx[i%len(scopeIdx)])%len(scopes)]
			}
			values = append(values, role+"@"+scope)
		}
		if unscoped {
			values = append([]string{"noatsign"}, values...)
		}

		state := &domain.RequestState{
			Attributes: map[string][]string{
				domain.AttrScopedAffiliation: values,
			},
		}
		if err := c.Process(state); err != nil {
			return false
		}

		affiliation, organization, found := oracleClassify(values)
		if !found {
			_, hasAff := state.Attributes[domain.AttrPrimaryAffiliation]
			_, hasOrg := state.Attributes[domain.AttrOrganization]
			return !hasAff && !hasOrg
		}

		want := map[string][]string{
			domain.AttrScopedAffiliation:  values,
			domain.AttrPrimaryAffiliation: {affiliation},
			domain.AttrOrganization:       {organization},
		}
		return cmp.Equal(want, state.Attributes)
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// TestClassifier_MemberAlwaysWins verifies that a taxonomy role anywhere in
// the sequence always yields "member", with the organization taken from the
// value containing that role.
func TestClassifier_MemberAlwaysWins(t *testing.T) {
	nonMembers := []string{"affiliate@a.org", "alum@b.org", "visitor@c.org"}

	for position := 0; position <= len(nonMembers); position++ {
		values := append([]string{}, nonMembers[:position]...)
		values = append(values, "staff@winner.org")
		values = append(values, nonMembers[position:]...)

		c := newClassifier(t, ClassifierConfig{}, nil)
		state := &domain.RequestState{
			Attributes: map[string][]string{
				domain.AttrScopedAffiliation: values,
			},
		}
		if err := c.Process(state); err != nil {
			t.Fatalf("Process: %v", err)
		}

		if got := state.Attributes[domain.AttrPrimaryAffiliation]; len(got) != 1 || got[0] != "member" {
			t.Errorf("position %d: affiliation = %v, want [member]", position, got)
		}
		if got := state.Attributes[domain.AttrOrganization]; len(got) != 1 || got[0] != "winner.org" {
			t.Errorf("position %d: organization = %v, want [winner.org]", position, got)
		}
	}
}
