package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
)

func TestFixCommandSendsGenerationConfig(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"git status"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("test-key", WithEndpoint(srv.URL))
	if err != nil {
		t.Fatal(err)
	}

	fixed, err := c.FixCommand(context.Background(), "gti stats")
	if err != nil {
		t.Fatal(err)
	}
	if fixed != "git status" {
		t.Errorf("fixed = %q, want %q", fixed, "git status")
	}
	if got.GenerationConfig.Temperature != 0.1 {
		t.Errorf("temperature = %v, want 0.1", got.GenerationConfig.Temperature)
	}
	if got.GenerationConfig.MaxOutputTokens != 100 {
		t.Errorf("maxOutputTokens = %d, want 100", got.GenerationConfig.MaxOutputTokens)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"git status", "git status"},
		{"  git status\n", "git status"},
		{"```sh\ngit status\n```", "git status"},
		{"```bash\ngit status```", "git status"},
		{"`git status`", "git status"},
		{"git status\nsome explanation", "git status"},
		{"```\ndocker ps -a\n```", "docker ps -a"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanResponse(tt.in); got != tt.want {
			t.Errorf("cleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("NewClient with empty key should fail")
	}
	c, err := NewClient("test-key", WithModel("gemini-2.0-flash"))
	if err != nil {
		t.Fatal(err)
	}
	if c.model != "gemini-2.0-flash" {
		t.Errorf("model = %q", c.model)
	}
}
