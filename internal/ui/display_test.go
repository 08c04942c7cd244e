package ui

import (
	"strings"
	"testing"

	"github.com/mewisme/wtf/internal/match"
)

func TestSimpleOutputNumbersCommands(t *testing.T) {
	suggestions := []match.Suggestion{
		{Command: "git status", Confidence: match.ConfidenceExact, Score: 1.0, Explanation: "gti typo"},
		{Command: "docker ps", Confidence: match.ConfidenceFuzzy, Score: 0.92, Explanation: "similar to 'docker'"},
	}

	got := SimpleOutput(suggestions, false)
	want := "1. git status\n2. docker ps\n"
	if got != want {
		t.Errorf("SimpleOutput = %q, want %q", got, want)
	}
}

func TestSimpleOutputWithExplanations(t *testing.T) {
	suggestions := []match.Suggestion{
		{Command: "git status", Confidence: match.ConfidenceCustom, Score: 1.0, Explanation: "custom fix"},
	}

	got := SimpleOutput(suggestions, true)
	if !strings.HasPrefix(got, "1. git status") {
		t.Errorf("SimpleOutput = %q, want numbered command first", got)
	}
	if !strings.Contains(got, "custom fix") {
		t.Errorf("SimpleOutput = %q, want the explanation included", got)
	}
}
