package match

import "github.com/mewisme/wtf/internal/typos"

// ExactSource wraps a typo-entry snapshot for exact lookup. It is
// read-only after construction; the engine never mutates the snapshot.
type ExactSource struct {
	entries []typos.Entry
	index   map[string]string
}

// NewExactSource builds a source from an entry snapshot. When the same
// wrong-string appears twice, the first occurrence wins.
func NewExactSource(entries []typos.Entry) *ExactSource {
	index := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, ok := index[e.Wrong]; !ok {
			index[e.Wrong] = e.Correct
		}
	}
	return &ExactSource{entries: entries, index: index}
}

// LookupExact returns the correction for input, matching the stored
// wrong-string exactly (case and whitespace sensitive).
func (s *ExactSource) LookupExact(input string) (string, bool) {
	correct, ok := s.index[input]
	return correct, ok
}

// Entries returns the snapshot in its original order.
func (s *ExactSource) Entries() []typos.Entry {
	return s.entries
}

// CanonicalSource wraps the list of known-good commands used as fuzzy
// targets. It supports iteration only, never exact lookup.
type CanonicalSource struct {
	commands []string
}

// NewCanonicalSource builds a source over the given command list.
func NewCanonicalSource(commands []string) *CanonicalSource {
	return &CanonicalSource{commands: commands}
}

// Commands returns the canonical command list.
func (s *CanonicalSource) Commands() []string {
	return s.commands
}
