// Package suggest provides fallback suggestions drawn from the user's
// own shell history and previously applied corrections.
package suggest

import (
	"context"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/mewisme/wtf/internal/db"
	"github.com/mewisme/wtf/internal/history"
)

// Suggester scores history commands against a mistyped input. It kicks
// in when the table and fuzzy passes come up empty: a user who mistypes
// a command they ran before should get that command back.
type Suggester struct {
	storage *db.Storage
	reader  *history.Reader
}

// Result represents a history-derived suggestion
type Result struct {
	Command string
	Score   float64
	Source  string // "corrections", "history"
}

// New creates a new suggester. storage may be nil.
func New(storage *db.Storage, reader *history.Reader) *Suggester {
	return &Suggester{
		storage: storage,
		reader:  reader,
	}
}

// Suggest returns up to limit commands from past activity similar to input.
func (s *Suggester) Suggest(ctx context.Context, input string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var results []Result

	// Previously applied corrections first. An input the user already
	// fixed once is almost certainly the same typo again.
	if s.storage != nil {
		if rec, found, err := s.storage.Lookup(ctx, input); err == nil && found {
			results = append(results, Result{
				Command: rec.Command,
				Score:   1.0,
				Source:  "corrections",
			})
			seen[rec.Command] = true
		}
	}

	if s.reader != nil {
		entries, err := s.reader.Recent(ctx, 500)
		if err == nil {
			results = append(results, s.scoreHistory(input, entries, seen)...)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// scoreHistory ranks history commands by OSA edit similarity to input.
func (s *Suggester) scoreHistory(input string, entries []history.Entry, seen map[string]bool) []Result {
	var results []Result

	for _, entry := range entries {
		cmd := strings.TrimSpace(entry.Command)
		if cmd == "" || cmd == input || seen[cmd] {
			continue
		}
		seen[cmd] = true

		sim, err := edlib.StringsSimilarity(input, cmd, edlib.OSADamerauLevenshtein)
		if err != nil {
			continue
		}
		if float64(sim) < 0.6 {
			continue
		}

		results = append(results, Result{
			Command: cmd,
			Score:   float64(sim),
			Source:  "history",
		})
	}

	return results
}
