package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mewisme/wtf/internal/config"
	"github.com/mewisme/wtf/internal/match"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Enabled:        true,
			Model:          "gemini-2.0-flash",
			GoogleAPIKey:   "test-key",
			Endpoint:       endpoint,
			TimeoutSeconds: 5,
		},
		Match: config.MatchConfig{Threshold: 0.85, MaxSuggestions: 5},
	}
}

func TestAIPathBypassesEngine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"git status -sb"}]}}]}`))
	}))
	defer srv.Close()

	// "gti" has a built-in table fix; with the AI path requested the AI
	// answer must be the only suggestion.
	got := gatherSuggestions(context.Background(), "gti", testConfig(srv.URL), true)

	if len(got) != 1 {
		t.Fatalf("expected one AI suggestion, got %v", got)
	}
	if got[0].Command != "git status -sb" {
		t.Errorf("got[0].Command = %q, want the AI answer", got[0].Command)
	}
	if got[0].Explanation != "AI suggestion" {
		t.Errorf("got[0].Explanation = %q", got[0].Explanation)
	}
}

func TestAIFailureFallsBackToEngine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"UNKNOWN"}]}}]}`))
	}))
	defer srv.Close()

	got := gatherSuggestions(context.Background(), "gti", testConfig(srv.URL), true)

	if len(got) == 0 {
		t.Fatal("expected the engine to take over after the AI declined")
	}
	if got[0].Command != "git" || got[0].Confidence != match.ConfidenceExact {
		t.Errorf("got[0] = %+v, want the built-in git fix", got[0])
	}
}

func TestHistoryCommandsWired(t *testing.T) {
	var history, configHistory bool
	for _, c := range rootCmd.Commands() {
		switch c.Name() {
		case "history":
			history = true
		case "config-history":
			configHistory = true
			if !c.HasAlias("ch") {
				t.Error("config-history should have the ch alias")
			}
		}
	}
	if !history {
		t.Error("history command not registered")
	}
	if !configHistory {
		t.Error("config-history command not registered")
	}
}
