package match

import (
	"reflect"
	"testing"

	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/pkg/similarity"
)

func TestFindSuggestionsEmptyInput(t *testing.T) {
	e := NewEngine()
	for _, input := range []string{"", "   ", "\t\n"} {
		if got := e.FindSuggestions(input, nil, typos.Builtin(), typos.Canonical()); len(got) != 0 {
			t.Errorf("FindSuggestions(%q) = %v, want empty", input, got)
		}
	}
}

func TestFindSuggestionsNoMatch(t *testing.T) {
	e := NewEngine()
	got := e.FindSuggestions("zzzzqqqq --nothing", nil, typos.Builtin(), typos.Canonical())
	if len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestCustomOutranksBuiltin(t *testing.T) {
	custom := []typos.Entry{{Wrong: "gti", Correct: "git status"}}
	builtin := []typos.Entry{{Wrong: "gti", Correct: "git"}}

	e := NewEngine()
	got := e.FindSuggestions("gti", custom, builtin, nil)

	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].Command != "git status" {
		t.Errorf("got[0].Command = %q, want %q", got[0].Command, "git status")
	}
	if got[0].Confidence != ConfidenceCustom {
		t.Errorf("got[0].Confidence = %v, want custom", got[0].Confidence)
	}
	// The built-in lookup for the claimed wrong-string is suppressed.
	for _, s := range got {
		if s.Command == "git" {
			t.Errorf("built-in suggestion %q should be suppressed by custom entry", s.Command)
		}
	}
}

func TestFindFromSourcesMatchesDirect(t *testing.T) {
	custom := []typos.Entry{{Wrong: "gti", Correct: "git status"}}

	e := NewEngine()
	direct := e.FindSuggestions("gti log", custom, typos.Builtin(), typos.Canonical())
	viaSources := e.FindFromSources("gti log",
		NewExactSource(custom),
		NewExactSource(typos.Builtin()),
		NewCanonicalSource(typos.Canonical()))

	if !reflect.DeepEqual(direct, viaSources) {
		t.Errorf("FindFromSources = %v, FindSuggestions = %v", viaSources, direct)
	}
}

func TestCustomClaimSuppressesFuzzy(t *testing.T) {
	custom := []typos.Entry{{Wrong: "dockre", Correct: "docker compose up"}}

	e := NewEngine()
	got := e.FindSuggestions("dockre", custom, nil, []string{"docker"})

	if len(got) != 1 {
		t.Fatalf("expected only the custom fix, got %v", got)
	}
	if got[0].Command != "docker compose up" || got[0].Confidence != ConfidenceCustom {
		t.Errorf("got %+v, want the custom fix", got[0])
	}
}

func TestCustomClaimOnFirstTokenSuppressesFuzzy(t *testing.T) {
	custom := []typos.Entry{{Wrong: "dockre", Correct: "podman"}}

	e := NewEngine()
	got := e.FindSuggestions("dockre ps", custom, nil, []string{"docker"})

	if len(got) != 1 {
		t.Fatalf("expected only the custom fix, got %v", got)
	}
	if got[0].Command != "podman ps" {
		t.Errorf("got[0].Command = %q, want %q", got[0].Command, "podman ps")
	}
	for _, s := range got {
		if s.Confidence == ConfidenceFuzzy {
			t.Errorf("fuzzy suggestion %q should be suppressed by the custom claim", s.Command)
		}
	}
}

func TestTokenSubstitutionPreservesArgs(t *testing.T) {
	builtin := []typos.Entry{{Wrong: "gti", Correct: "git"}}

	e := NewEngine()
	got := e.FindSuggestions("gti status", nil, builtin, typos.Canonical())

	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].Command != "git status" {
		t.Errorf("got[0].Command = %q, want %q", got[0].Command, "git status")
	}
	if got[0].Confidence != ConfidenceExact {
		t.Errorf("got[0].Confidence = %v, want exact", got[0].Confidence)
	}
}

func TestPhraseSubstitutionPreservesTrailingArgs(t *testing.T) {
	builtin := []typos.Entry{{Wrong: "npm onstall", Correct: "npm install"}}

	e := NewEngine()
	got := e.FindSuggestions("npm onstall express", nil, builtin, nil)

	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].Command != "npm install express" {
		t.Errorf("got[0].Command = %q, want %q", got[0].Command, "npm install express")
	}
	if got[0].Confidence != ConfidenceExact {
		t.Errorf("got[0].Confidence = %v, want exact", got[0].Confidence)
	}
}

func TestClassicSlTypo(t *testing.T) {
	e := NewEngine()
	got := e.FindSuggestions("sl", nil, typos.Builtin(), typos.Canonical())

	if len(got) == 0 {
		t.Fatal("expected suggestions")
	}
	if got[0].Command != "ls" || got[0].Confidence != ConfidenceExact {
		t.Errorf("got[0] = %+v, want {ls exact}", got[0])
	}
	if got[0].Score != 1.0 {
		t.Errorf("exact score = %f, want 1.0", got[0].Score)
	}
}

func TestFuzzyMatchSubstitutesFirstToken(t *testing.T) {
	// "dockre" is not in the table given here; only fuzzy can catch it.
	e := NewEngine()
	got := e.FindSuggestions("dockre ps -a", nil, nil, []string{"docker", "git"})

	if len(got) != 1 {
		t.Fatalf("expected exactly one suggestion, got %v", got)
	}
	s := got[0]
	if s.Command != "docker ps -a" {
		t.Errorf("Command = %q, want %q", s.Command, "docker ps -a")
	}
	if s.Confidence != ConfidenceFuzzy {
		t.Errorf("Confidence = %v, want fuzzy", s.Confidence)
	}
	if s.Score < FuzzyThreshold || s.Score >= 1.0 {
		t.Errorf("Score = %f, want in [%f, 1.0)", s.Score, FuzzyThreshold)
	}
	if s.Explanation != "similar to 'docker'" {
		t.Errorf("Explanation = %q", s.Explanation)
	}
}

func TestFuzzyThresholdBoundaryInclusive(t *testing.T) {
	// Pin the threshold to the exact score of a known pair: scores equal
	// to the threshold are included, anything below is not.
	score := similarity.Score("abcd", "abcf")

	included := NewEngine(WithThreshold(score))
	if got := included.FindSuggestions("abcd", nil, nil, []string{"abcf"}); len(got) != 1 {
		t.Errorf("score == threshold must be included, got %v", got)
	}

	excluded := NewEngine(WithThreshold(score + 1e-9))
	if got := excluded.FindSuggestions("abcd", nil, nil, []string{"abcf"}); len(got) != 0 {
		t.Errorf("score < threshold must be excluded, got %v", got)
	}
}

func TestFuzzySkipsIdenticalToken(t *testing.T) {
	// The first token already is the canonical command; suggesting the
	// input back is not a correction.
	e := NewEngine()
	got := e.FindSuggestions("git", nil, nil, []string{"git"})
	if len(got) != 0 {
		t.Errorf("expected no suggestions for an exact canonical token, got %v", got)
	}
}

func TestOutputCappedAtFive(t *testing.T) {
	// Many custom entries matching the same input by different shapes.
	custom := []typos.Entry{
		{Wrong: "boom", Correct: "fix1"},
		{Wrong: "boom", Correct: "fix2"},
		{Wrong: "boom", Correct: "fix3"},
		{Wrong: "boom", Correct: "fix4"},
		{Wrong: "boom", Correct: "fix5"},
		{Wrong: "boom", Correct: "fix6"},
		{Wrong: "boom", Correct: "fix7"},
	}
	e := NewEngine()
	got := e.FindSuggestions("boom", custom, nil, nil)
	if len(got) > MaxSuggestions {
		t.Errorf("len = %d, want <= %d", len(got), MaxSuggestions)
	}
}

func TestNoDuplicateCommands(t *testing.T) {
	custom := []typos.Entry{{Wrong: "gti", Correct: "git"}}
	builtin := []typos.Entry{{Wrong: "gti", Correct: "git"}}

	e := NewEngine()
	got := e.FindSuggestions("gti status", custom, builtin, []string{"git"})

	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s.Command] {
			t.Errorf("duplicate command %q in %v", s.Command, got)
		}
		seen[s.Command] = true
	}
	// The surviving occurrence is the highest-priority one.
	if len(got) == 0 || got[0].Confidence != ConfidenceCustom {
		t.Errorf("expected the custom occurrence to win, got %v", got)
	}
}

func TestOrderingByConfidenceThenScore(t *testing.T) {
	builtin := []typos.Entry{{Wrong: "pyhtn", Correct: "python --version"}}

	e := NewEngine()
	got := e.FindSuggestions("pyhtn", nil, builtin, []string{"python", "python3"})

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Confidence < cur.Confidence {
			t.Errorf("confidence order violated at %d: %v", i, got)
		}
		if prev.Confidence == cur.Confidence && prev.Score < cur.Score {
			t.Errorf("score order violated at %d: %v", i, got)
		}
	}
}

func TestIdempotent(t *testing.T) {
	custom := []typos.Entry{{Wrong: "gti", Correct: "git"}}
	e := NewEngine()

	first := e.FindSuggestions("gti status", custom, typos.Builtin(), typos.Canonical())
	second := e.FindSuggestions("gti status", custom, typos.Builtin(), typos.Canonical())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between identical calls:\n%v\n%v", first, second)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	canonical := typos.Canonical()

	seq := NewEngine(WithParallel(false))
	par := NewEngine(WithParallel(true))

	inputs := []string{"dockre ps", "pythn script.py", "kubeclt get pods", "terrafrm plan"}
	for _, input := range inputs {
		a := seq.FindSuggestions(input, nil, nil, canonical)
		b := par.FindSuggestions(input, nil, nil, canonical)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("parallel and sequential results differ for %q:\n%v\n%v", input, a, b)
		}
	}
}

func TestEngineDoesNotMutateInputs(t *testing.T) {
	custom := []typos.Entry{{Wrong: "gti", Correct: "git"}}
	builtin := []typos.Entry{{Wrong: "sl", Correct: "ls"}}
	canonical := []string{"git", "ls"}

	customCopy := append([]typos.Entry(nil), custom...)
	builtinCopy := append([]typos.Entry(nil), builtin...)
	canonicalCopy := append([]string(nil), canonical...)

	e := NewEngine()
	_ = e.FindSuggestions("gti status", custom, builtin, canonical)

	if !reflect.DeepEqual(custom, customCopy) || !reflect.DeepEqual(builtin, builtinCopy) || !reflect.DeepEqual(canonical, canonicalCopy) {
		t.Error("engine mutated one of its inputs")
	}
}
