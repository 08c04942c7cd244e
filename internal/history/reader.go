// Package history provides shell history reading functionality
package history

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mewisme/wtf/internal/logger"
)

// ShellType represents the type of shell
type ShellType string

const (
	ShellBash       ShellType = "bash"
	ShellZsh        ShellType = "zsh"
	ShellFish       ShellType = "fish"
	ShellPowerShell ShellType = "powershell"
	ShellUnknown    ShellType = "unknown"
)

// Entry represents a single history entry
type Entry struct {
	Command   string
	Timestamp time.Time
	Shell     ShellType
	Raw       string
}

// Reader reads shell history files
type Reader struct {
	mu    sync.RWMutex
	cache map[string][]Entry
}

// NewReader creates a new history reader
func NewReader() *Reader {
	return &Reader{
		cache: make(map[string][]Entry),
	}
}

// CurrentShell guesses the running shell from the environment.
func CurrentShell() ShellType {
	if runtime.GOOS == "windows" {
		return ShellPowerShell
	}
	shell := filepath.Base(os.Getenv("SHELL"))
	switch shell {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellUnknown
	}
}

// DetectShells returns detected shells and their history file paths
func (r *Reader) DetectShells() map[ShellType]string {
	shells := make(map[ShellType]string)
	home, _ := os.UserHomeDir()

	if path := r.detectBashHistory(home); path != "" {
		shells[ShellBash] = path
	}
	if path := r.detectZshHistory(home); path != "" {
		shells[ShellZsh] = path
	}
	if path := r.detectFishHistory(home); path != "" {
		shells[ShellFish] = path
	}
	if path := r.detectPowerShellHistory(home); path != "" {
		shells[ShellPowerShell] = path
	}

	return shells
}

// LastCommand returns the most recent history entry that is not an
// invocation of wtf itself. Typo commands land in history just like
// anything else, so this is what `wtf save` operates on.
func (r *Reader) LastCommand(ctx context.Context) (Entry, error) {
	entries, err := r.recentForCurrentShell(ctx)
	if err != nil {
		return Entry{}, err
	}

	for i := len(entries) - 1; i >= 0; i-- {
		if isSelfInvocation(entries[i].Command) {
			continue
		}
		return entries[i], nil
	}

	if CurrentShell() == ShellBash {
		// Bash only flushes history at exit unless configured otherwise.
		return Entry{}, fmt.Errorf("no usable command found in shell history; " +
			"bash may not have flushed it yet, run 'wtf install' to set up " +
			"histappend and PROMPT_COMMAND")
	}
	return Entry{}, fmt.Errorf("no usable command found in shell history")
}

// Recent returns up to n of the most recent commands, newest last,
// with wtf invocations filtered out.
func (r *Reader) Recent(ctx context.Context, n int) ([]Entry, error) {
	entries, err := r.recentForCurrentShell(ctx)
	if err != nil {
		return nil, err
	}

	var out []Entry
	for _, e := range entries {
		if isSelfInvocation(e.Command) {
			continue
		}
		out = append(out, e)
	}
	if n > 0 && len(out) > n {
		out = out[len(out)-n:]
	}
	return out, nil
}

func (r *Reader) recentForCurrentShell(ctx context.Context) ([]Entry, error) {
	log := logger.With("history")

	shells := r.DetectShells()
	if len(shells) == 0 {
		return nil, fmt.Errorf("no shell history files found")
	}

	shell := CurrentShell()
	if path, ok := shells[shell]; ok {
		return r.ReadFromShell(ctx, shell, path)
	}

	// Unknown shell, read whatever is available.
	for st, path := range shells {
		entries, err := r.ReadFromShell(ctx, st, path)
		if err != nil {
			log.Warn("failed to read shell history", "shell", st, "error", err)
			continue
		}
		return entries, nil
	}

	return nil, fmt.Errorf("no readable shell history")
}

// ReadFromShell reads history from a specific shell
func (r *Reader) ReadFromShell(ctx context.Context, shell ShellType, path string) ([]Entry, error) {
	log := logger.With("history")

	r.mu.RLock()
	if cached, ok := r.cache[path]; ok {
		r.mu.RUnlock()
		log.Debug("using cached history", "path", path, "entries", len(cached))
		return cached, nil
	}
	r.mu.RUnlock()

	entries, err := r.parseShellFile(ctx, shell, path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[path] = entries
	r.mu.Unlock()

	return entries, nil
}

func (r *Reader) parseShellFile(ctx context.Context, shell ShellType, path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	switch shell {
	case ShellBash:
		return parseBashHistory(ctx, file)
	case ShellZsh:
		return parseZshHistory(ctx, file)
	case ShellFish:
		return parseFishHistory(ctx, file)
	case ShellPowerShell:
		return parsePowerShellHistory(ctx, file)
	default:
		return nil, fmt.Errorf("unsupported shell type: %s", shell)
	}
}

// parseBashHistory parses bash history. Plain format is one command per
// line; with HISTTIMEFORMAT set, a #<unix-ts> line precedes each command.
func parseBashHistory(ctx context.Context, file *os.File) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(file)

	var currentTime time.Time

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return entries, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if ts, err := parseTimestamp(line[1:]); err == nil {
				currentTime = ts
			}
			continue
		}

		entries = append(entries, Entry{
			Command:   line,
			Timestamp: currentTime,
			Shell:     ShellBash,
			Raw:       line,
		})

		currentTime = time.Time{}
	}

	return entries, scanner.Err()
}

// parseZshHistory parses zsh history, extended format `: ts:0;command`
// or plain commands.
func parseZshHistory(ctx context.Context, file *os.File) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(file)

	zshRegex := regexp.MustCompile(`^: (\d+):\d+;(.*)$`)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return entries, ctx.Err()
		default:
		}

		line := scanner.Text()

		if matches := zshRegex.FindStringSubmatch(line); len(matches) == 3 {
			timestamp, _ := parseTimestamp(matches[1])
			command := strings.TrimSpace(matches[2])
			if command == "" {
				continue
			}
			entries = append(entries, Entry{
				Command:   command,
				Timestamp: timestamp,
				Shell:     ShellZsh,
				Raw:       line,
			})
		} else if trimmed := strings.TrimSpace(line); trimmed != "" && !strings.HasPrefix(trimmed, ":") {
			entries = append(entries, Entry{
				Command: trimmed,
				Shell:   ShellZsh,
				Raw:     line,
			})
		}
	}

	return entries, scanner.Err()
}

// parseFishHistory parses fish's YAML-like history:
//
//	- cmd: command
//	  when: timestamp
func parseFishHistory(ctx context.Context, file *os.File) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(file)

	var currentEntry Entry
	currentEntry.Shell = ShellFish

	cmdRegex := regexp.MustCompile(`^\s*- cmd:\s*(.+)$`)
	whenRegex := regexp.MustCompile(`^\s*when:\s*(\d+)$`)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return entries, ctx.Err()
		default:
		}

		line := scanner.Text()

		if matches := cmdRegex.FindStringSubmatch(line); len(matches) == 2 {
			if currentEntry.Command != "" {
				entries = append(entries, currentEntry)
			}
			currentEntry = Entry{
				Command: strings.TrimSpace(matches[1]),
				Shell:   ShellFish,
				Raw:     line,
			}
		} else if matches := whenRegex.FindStringSubmatch(line); len(matches) == 2 {
			if ts, err := parseTimestamp(matches[1]); err == nil {
				currentEntry.Timestamp = ts
			}
		}
	}

	if currentEntry.Command != "" {
		entries = append(entries, currentEntry)
	}

	return entries, scanner.Err()
}

// parsePowerShellHistory parses the PSReadLine history file, which is a
// plain list of commands with backtick line continuations.
func parsePowerShellHistory(ctx context.Context, file *os.File) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(file)

	var pending string

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return entries, ctx.Err()
		default:
		}

		line := scanner.Text()

		if strings.HasSuffix(line, "`") {
			pending += strings.TrimSuffix(line, "`") + "\n"
			continue
		}

		command := strings.TrimSpace(pending + line)
		pending = ""
		if command == "" {
			continue
		}

		entries = append(entries, Entry{
			Command: command,
			Shell:   ShellPowerShell,
			Raw:     command,
		})
	}

	return entries, scanner.Err()
}

func (r *Reader) detectBashHistory(home string) string {
	if histfile := os.Getenv("HISTFILE"); histfile != "" && !strings.Contains(histfile, "zsh") {
		if _, err := os.Stat(histfile); err == nil {
			return histfile
		}
	}

	path := filepath.Join(home, ".bash_history")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}

func (r *Reader) detectZshHistory(home string) string {
	if histfile := os.Getenv("HISTFILE"); histfile != "" && strings.Contains(histfile, "zsh") {
		if _, err := os.Stat(histfile); err == nil {
			return histfile
		}
	}

	path := filepath.Join(home, ".zsh_history")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}

func (r *Reader) detectFishHistory(home string) string {
	path := filepath.Join(home, ".local", "share", "fish", "fish_history")
	if _, err := os.Stat(path); err == nil {
		return path
	}

	if runtime.GOOS == "darwin" {
		path = filepath.Join(home, "Library", "Application Support", "fish", "fish_history")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func (r *Reader) detectPowerShellHistory(home string) string {
	path := filepath.Join(home, ".local", "share", "powershell", "PSReadLine", "ConsoleHost_history.txt")
	if runtime.GOOS == "windows" {
		path = filepath.Join(home, "AppData", "Roaming", "Microsoft", "Windows", "PowerShell", "PSReadLine", "ConsoleHost_history.txt")
	}

	if _, err := os.Stat(path); err == nil {
		return path
	}

	return ""
}

// isSelfInvocation reports whether a history line is a call to wtf
// itself, so `wtf save` run twice never suggests fixing "wtf".
func isSelfInvocation(command string) bool {
	trimmed := strings.TrimSpace(command)
	return trimmed == "wtf" || strings.HasPrefix(trimmed, "wtf ")
}

// parseTimestamp parses a Unix timestamp string
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	var unixTs int64
	if _, err := fmt.Sscanf(s, "%d", &unixTs); err == nil {
		if unixTs > 1e12 {
			// Milliseconds
			unixTs = unixTs / 1000
		}
		return time.Unix(unixTs, 0), nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp: %s", s)
}
