package match

import (
	"testing"

	"github.com/mewisme/wtf/internal/typos"
)

func TestExactSourceLookup(t *testing.T) {
	src := NewExactSource([]typos.Entry{
		{Wrong: "gti", Correct: "git"},
		{Wrong: "sl", Correct: "ls"},
	})

	tests := []struct {
		input   string
		want    string
		wantHit bool
	}{
		{"gti", "git", true},
		{"sl", "ls", true},
		{"git", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := src.LookupExact(tt.input)
		if ok != tt.wantHit || got != tt.want {
			t.Errorf("LookupExact(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantHit)
		}
	}
}

func TestExactSourceFirstOccurrenceWins(t *testing.T) {
	src := NewExactSource([]typos.Entry{
		{Wrong: "gti", Correct: "git status"},
		{Wrong: "gti", Correct: "git"},
	})
	got, ok := src.LookupExact("gti")
	if !ok || got != "git status" {
		t.Errorf("LookupExact(gti) = (%q, %v), want first entry to win", got, ok)
	}
}

func TestBuiltinTableIsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range typos.Builtin() {
		if e.Wrong == "" || e.Correct == "" {
			t.Errorf("empty field in entry %+v", e)
		}
		if e.Wrong == e.Correct {
			t.Errorf("identity entry %+v", e)
		}
		if seen[e.Wrong] {
			t.Errorf("duplicate wrong-string %q", e.Wrong)
		}
		seen[e.Wrong] = true
	}
}

func TestCanonicalCommandsNonEmpty(t *testing.T) {
	cmds := typos.Canonical()
	if len(cmds) == 0 {
		t.Fatal("canonical command list is empty")
	}
	seen := make(map[string]bool)
	for _, c := range cmds {
		if c == "" {
			t.Error("empty canonical command")
		}
		if seen[c] {
			t.Errorf("duplicate canonical command %q", c)
		}
		seen[c] = true
	}
}

func TestIsBuiltin(t *testing.T) {
	if !typos.IsBuiltin("gti") {
		t.Error("IsBuiltin(gti) = false, want true")
	}
	if typos.IsBuiltin("definitely-not-a-typo") {
		t.Error("IsBuiltin(definitely-not-a-typo) = true, want false")
	}
}
