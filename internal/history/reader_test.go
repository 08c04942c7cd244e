package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseBashHistory(t *testing.T) {
	path := writeTemp(t, "bash_history", "#1700000000\ngti status\nsl\n\n#1700000100\ndocker ps\n")

	r := NewReader()
	entries, err := r.ReadFromShell(context.Background(), ShellBash, path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"gti status", "sl", "docker ps"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i].Command != w {
			t.Errorf("entries[%d].Command = %q, want %q", i, entries[i].Command, w)
		}
	}
	if entries[0].Timestamp.Unix() != 1700000000 {
		t.Errorf("entries[0].Timestamp = %v, want unix 1700000000", entries[0].Timestamp)
	}
	if !entries[1].Timestamp.IsZero() {
		t.Errorf("entries[1].Timestamp = %v, want zero", entries[1].Timestamp)
	}
}

func TestParseZshHistory(t *testing.T) {
	path := writeTemp(t, "zsh_history", ": 1700000000:0;gti status\n: 1700000001:0;kubeclt get pods\nplain command\n")

	r := NewReader()
	entries, err := r.ReadFromShell(context.Background(), ShellZsh, path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"gti status", "kubeclt get pods", "plain command"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i].Command != w {
			t.Errorf("entries[%d].Command = %q, want %q", i, entries[i].Command, w)
		}
	}
	if entries[0].Timestamp.Unix() != 1700000000 {
		t.Errorf("entries[0].Timestamp = %v, want unix 1700000000", entries[0].Timestamp)
	}
}

func TestParseFishHistory(t *testing.T) {
	content := "- cmd: gti status\n  when: 1700000000\n- cmd: dockre ps\n  when: 1700000005\n"
	path := writeTemp(t, "fish_history", content)

	r := NewReader()
	entries, err := r.ReadFromShell(context.Background(), ShellFish, path)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(entries), entries)
	}
	if entries[0].Command != "gti status" || entries[1].Command != "dockre ps" {
		t.Errorf("unexpected commands: %v", entries)
	}
	if entries[1].Timestamp.Unix() != 1700000005 {
		t.Errorf("entries[1].Timestamp = %v, want unix 1700000005", entries[1].Timestamp)
	}
}

func TestParsePowerShellHistory(t *testing.T) {
	content := "gti status\nGet-ChildItem `\n-Recurse\ndockre ps\n"
	path := writeTemp(t, "ConsoleHost_history.txt", content)

	r := NewReader()
	entries, err := r.ReadFromShell(context.Background(), ShellPowerShell, path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"gti status", "Get-ChildItem \n-Recurse", "dockre ps"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i].Command != w {
			t.Errorf("entries[%d].Command = %q, want %q", i, entries[i].Command, w)
		}
	}
}

func TestIsSelfInvocation(t *testing.T) {
	tests := []struct {
		cmd  string
		want bool
	}{
		{"wtf", true},
		{"wtf save", true},
		{"  wtf add gti git", true},
		{"wtfd", false},
		{"git wtf", false},
		{"gti status", false},
	}
	for _, tt := range tests {
		if got := isSelfInvocation(tt.cmd); got != tt.want {
			t.Errorf("isSelfInvocation(%q) = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}
