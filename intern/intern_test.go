package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternIdentity(t *testing.T) {
	a := Intern("serif")
	b := Intern("serif")
	if a != b {
		t.Fatalf("expected identical handles for equal strings")
	}
	if a.Data() != "serif" {
		t.Errorf("expected data %q, got %q", "serif", a.Data())
	}
}

func TestInternLowerTwin(t *testing.T) {
	mixed := Intern("Serif")
	lower := Intern("serif")

	if mixed.Lower() != lower {
		t.Errorf("expected case-folded twin to be the canonical lowercase instance")
	}
	if lower.Lower() != lower {
		t.Errorf("expected a lowercase string to be its own twin")
	}
}

func TestCaselessEqual(t *testing.T) {
	assert.True(t, CaselessEqual(Intern("SANS-SERIF"), Intern("sans-serif")))
	assert.False(t, CaselessEqual(Intern("serif"), Intern("sans-serif")))
}

func TestRefCounting(t *testing.T) {
	s := Intern("refcount-probe")
	base := s.Refs()

	s.Ref()
	s.Ref()
	assert.Equal(t, base+2, s.Refs())

	s.Unref()
	s.Unref()
	assert.Equal(t, base, s.Refs())
}
