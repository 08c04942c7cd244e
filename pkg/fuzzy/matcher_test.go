package fuzzy

import "testing"

var dictionary = []string{"git", "docker", "ls", "kubectl", "npm"}

func TestIsTypo(t *testing.T) {
	m := DefaultMatcher()

	tests := []struct {
		word string
		want bool
	}{
		{"gti", true},
		{"dockre", true},
		{"git", false},      // exact dictionary word
		{"zzzzzzzz", false}, // nothing close
	}
	for _, tt := range tests {
		if got := m.IsTypo(tt.word, dictionary); got != tt.want {
			t.Errorf("IsTypo(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestLooksLikeTypo(t *testing.T) {
	m := DefaultMatcher()

	if !m.LooksLikeTypo("gti status", dictionary) {
		t.Error("LooksLikeTypo(gti status) = false, want true")
	}
	if m.LooksLikeTypo("git status", dictionary) {
		t.Error("LooksLikeTypo(git status) = true, want false")
	}
	if m.LooksLikeTypo("", dictionary) {
		t.Error("LooksLikeTypo of empty string should be false")
	}
}

func TestFindMatchesOrdered(t *testing.T) {
	m := NewMatcher(3, 0.3)
	matches := m.FindMatches("gti", dictionary)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Text != "git" {
		t.Errorf("best match = %q, want git", matches[0].Text)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Score < matches[i].Score {
			t.Errorf("matches not sorted by score: %v", matches)
		}
	}
}
