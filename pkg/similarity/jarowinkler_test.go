package similarity

import (
	"math"
	"testing"
)

func TestScoreIdentical(t *testing.T) {
	for _, s := range []string{"git", "docker", "a", "npm install"} {
		if got := Score(s, s); got != 1.0 {
			t.Errorf("Score(%q, %q) = %f, want 1.0", s, s, got)
		}
	}
}

func TestScoreEmptyStrings(t *testing.T) {
	if got := Score("", ""); got != 1.0 {
		t.Errorf("Score(\"\", \"\") = %f, want 1.0", got)
	}
	if got := Score("", "x"); got != 0.0 {
		t.Errorf("Score(\"\", \"x\") = %f, want 0.0", got)
	}
	if got := Score("x", ""); got != 0.0 {
		t.Errorf("Score(\"x\", \"\") = %f, want 0.0", got)
	}
}

func TestScoreBounded(t *testing.T) {
	pairs := [][2]string{
		{"gti", "git"},
		{"doker", "docker"},
		{"abc", "xyz"},
		{"kubectl", "k"},
		{"aaaaaaaaaa", "b"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Score(%q, %q) = %f, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestScoreSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"gti", "git"},
		{"dockre", "docker"},
		{"npn", "npm"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("Score(%q, %q)=%f != Score(%q, %q)=%f", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestScoreKnownValues(t *testing.T) {
	// Classic reference values for the Jaro-Winkler metric.
	tests := []struct {
		a, b string
		want float64
	}{
		// Jaro(MARTHA, MARHTA) = 0.944444, prefix = 3 ("MAR"),
		// JW = 0.944444 + 3*0.1*(1-0.944444) = 0.961111
		{"MARTHA", "MARHTA", 0.9611111111111111},
		// Jaro(DIXON, DICKSONX) = 0.766667, prefix = 2,
		// JW = 0.766667 + 2*0.1*(1-0.766667) = 0.813333
		{"DIXON", "DICKSONX", 0.8133333333333332},
		{"abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		got := Score(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Score(%q, %q) = %.10f, want %.10f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScoreTranspositionFriendly(t *testing.T) {
	// A trailing transposition in a longer token scores very high.
	if got := Score("dockre", "docker"); got < 0.85 {
		t.Errorf("Score(\"dockre\", \"docker\") = %f, want >= 0.85", got)
	}
	// Very short tokens have a zero-width match window; a transposed
	// 3-letter typo is an exact-table case, not a fuzzy one.
	if got := Score("gti", "git"); got >= 0.85 {
		t.Errorf("Score(\"gti\", \"git\") = %f, want < 0.85", got)
	}
}

func TestScorePrefixBoost(t *testing.T) {
	// A shared prefix must raise (or at least not lower) the score
	// relative to the same edits without a shared prefix.
	withPrefix := Score("docker", "dockre")
	without := Score("ockerd", "ockred")
	if withPrefix < without {
		t.Errorf("prefix boost missing: %f < %f", withPrefix, without)
	}
}
