package match

import (
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mewisme/wtf/internal/typos"
	"github.com/mewisme/wtf/pkg/similarity"
)

const (
	// MaxSuggestions caps the suggestion list returned by the engine.
	MaxSuggestions = 5
	// FuzzyThreshold is the minimum (inclusive) Jaro-Winkler score for a
	// canonical command to be offered as a fuzzy correction.
	FuzzyThreshold = 0.85

	// parallelFloor is the canonical-list size below which the fuzzy pass
	// stays sequential; pool setup costs more than it saves.
	parallelFloor = 64
)

// Engine ranks correction candidates for a failed command. It holds no
// state beyond its tuning knobs and performs no I/O; a zero-configured
// engine is safe to share and call concurrently.
type Engine struct {
	threshold float64
	limit     int
	parallel  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithThreshold overrides the fuzzy inclusion threshold.
func WithThreshold(t float64) Option {
	return func(e *Engine) { e.threshold = t }
}

// WithLimit overrides the maximum suggestion count.
func WithLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// WithParallel toggles the pooled fuzzy pass.
func WithParallel(enabled bool) Option {
	return func(e *Engine) { e.parallel = enabled }
}

// NewEngine creates an engine with the default threshold and limit.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		threshold: FuzzyThreshold,
		limit:     MaxSuggestions,
		parallel:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FindSuggestions returns an ordered, deduplicated suggestion list for
// input, at most the configured limit long. Custom entries outrank
// built-in exact hits, which outrank fuzzy matches; within fuzzy matches
// higher similarity ranks first. Empty or whitespace-only input yields an
// empty list.
func (e *Engine) FindSuggestions(input string, custom, builtin []typos.Entry, canonical []string) []Suggestion {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	tokens := strings.Fields(trimmed)
	first := tokens[0]
	args := strings.Join(tokens[1:], " ")

	var results []Suggestion

	// Wrong-strings satisfied by a custom entry suppress built-in exact
	// and fuzzy lookups for the same string.
	claimed := make(map[string]bool)

	// 1. Custom entries, highest priority.
	for _, entry := range custom {
		if fixed, ok := applyEntry(entry, trimmed, first, args); ok {
			results = append(results, Suggestion{
				Command:     fixed,
				Confidence:  ConfidenceCustom,
				Score:       1.0,
				Explanation: "custom fix",
			})
			claimed[entry.Wrong] = true
		}
	}

	// 2 + 3. Built-in table: whole-input, first-token and phrase-prefix
	// matches, skipping wrong-strings already claimed by a custom fix.
	for _, entry := range builtin {
		if claimed[entry.Wrong] {
			continue
		}
		if fixed, ok := applyEntry(entry, trimmed, first, args); ok {
			results = append(results, Suggestion{
				Command:     fixed,
				Confidence:  ConfidenceExact,
				Score:       1.0,
				Explanation: first + " typo",
			})
		}
	}

	// 4. Fuzzy pass over the canonical commands, first token only. A
	// custom fix claiming the whole input or its first token suppresses
	// this pass too; the user already told us what that token means.
	if !claimed[trimmed] && !claimed[first] {
		results = append(results, e.fuzzyPass(first, args, canonical)...)
	}

	return e.rank(results)
}

// FindFromSources is FindSuggestions over pre-built sources.
func (e *Engine) FindFromSources(input string, custom, builtin *ExactSource, canonical *CanonicalSource) []Suggestion {
	return e.FindSuggestions(input, custom.Entries(), builtin.Entries(), canonical.Commands())
}

// applyEntry matches one typo entry against the input and synthesizes the
// corrected command. Three shapes match:
//   - the whole input equals the stored wrong-string;
//   - the first token equals it (remaining args re-joined with single spaces);
//   - the input starts with it followed by a space (remainder kept verbatim).
func applyEntry(entry typos.Entry, trimmed, first, args string) (string, bool) {
	switch {
	case trimmed == entry.Wrong:
		return entry.Correct, true
	case first == entry.Wrong:
		if args == "" {
			return entry.Correct, true
		}
		return entry.Correct + " " + args, true
	case strings.HasPrefix(trimmed, entry.Wrong+" "):
		return entry.Correct + trimmed[len(entry.Wrong):], true
	}
	return "", false
}

// fuzzyPass scores the first token against every canonical command and
// emits a suggestion per command scoring within [threshold, 1.0). A score
// of 1.0 means the token already is that command; no correction to offer.
func (e *Engine) fuzzyPass(first, args string, canonical []string) []Suggestion {
	if len(canonical) == 0 {
		return nil
	}

	scores := make([]float64, len(canonical))
	if e.parallel && len(canonical) >= parallelFloor {
		e.scoreParallel(first, canonical, scores)
	} else {
		for i, cmd := range canonical {
			scores[i] = similarity.Score(first, cmd)
		}
	}

	var out []Suggestion
	for i, cmd := range canonical {
		score := scores[i]
		if score < e.threshold || score >= 1.0 {
			continue
		}
		fixed := cmd
		if args != "" {
			fixed = cmd + " " + args
		}
		out = append(out, Suggestion{
			Command:     fixed,
			Confidence:  ConfidenceFuzzy,
			Score:       score,
			Explanation: "similar to '" + cmd + "'",
		})
	}
	return out
}

// scoreParallel fans the scoring loop out over a bounded worker pool.
// Each task writes its own slot, so results are identical to the
// sequential pass regardless of scheduling.
func (e *Engine) scoreParallel(first string, canonical []string, scores []float64) {
	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		for i, cmd := range canonical {
			scores[i] = similarity.Score(first, cmd)
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range canonical {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			scores[i] = similarity.Score(first, canonical[i])
		}); err != nil {
			// Pool rejected the task; score inline.
			scores[i] = similarity.Score(first, canonical[i])
			wg.Done()
		}
	}
	wg.Wait()
}

// rank orders the collected candidates by (confidence, score), removes
// duplicate commands keeping the best-ranked occurrence, and truncates to
// the configured limit.
func (e *Engine) rank(results []Suggestion) []Suggestion {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		return results[i].Score > results[j].Score
	})

	seen := make(map[string]bool, len(results))
	out := results[:0]
	for _, s := range results {
		if seen[s.Command] {
			continue
		}
		seen[s.Command] = true
		out = append(out, s)
		if len(out) == e.limit {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
