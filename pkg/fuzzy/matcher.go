// Package fuzzy provides fuzzy matching helpers for WTF
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	sahilm "github.com/sahilm/fuzzy"
)

// Match represents a fuzzy match result
type Match struct {
	Text           string  // Matched text
	Score          int     // Match score (higher is better)
	Distance       int     // Levenshtein distance (lower is better)
	Confidence     float64 // Confidence score (0-1)
	MatchedIndices []int   // Indices of matched characters
}

// Matcher provides fuzzy matching capabilities
type Matcher struct {
	maxDistance int
	threshold   float64
}

// NewMatcher creates a new fuzzy matcher
func NewMatcher(maxDistance int, threshold float64) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		threshold:   threshold,
	}
}

// DefaultMatcher returns a matcher tuned for command-name typos.
func DefaultMatcher() *Matcher {
	return NewMatcher(2, 0.5)
}

// FindMatches finds matches for a pattern in a list of candidates
func (m *Matcher) FindMatches(pattern string, candidates []string) []Match {
	var matches []Match
	for _, candidate := range candidates {
		match := m.Match(pattern, candidate)
		if match.Confidence >= m.threshold {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// Match performs a single fuzzy match
func (m *Matcher) Match(pattern, text string) Match {
	distance := levenshtein.ComputeDistance(pattern, text)

	var score int
	var matchedIndices []int
	if results := sahilm.Find(pattern, []string{text}); len(results) > 0 {
		score = results[0].Score
		matchedIndices = results[0].MatchedIndexes
	}

	return Match{
		Text:           text,
		Score:          score,
		Distance:       distance,
		Confidence:     confidence(pattern, text, distance, score),
		MatchedIndices: matchedIndices,
	}
}

// IsTypo reports whether word is close to, but not exactly, a word in
// the dictionary.
func (m *Matcher) IsTypo(word string, dictionary []string) bool {
	for _, dictWord := range dictionary {
		if word == dictWord {
			return false
		}
	}

	for _, match := range m.FindMatches(word, dictionary) {
		if match.Distance <= m.maxDistance && match.Confidence >= m.threshold {
			return true
		}
	}

	return false
}

// LooksLikeTypo checks only the first token of a command line.
func (m *Matcher) LooksLikeTypo(command string, dictionary []string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	return m.IsTypo(fields[0], dictionary)
}

// confidence blends edit distance and subsequence score into [0, 1].
func confidence(pattern, text string, distance, score int) float64 {
	if len(pattern) == 0 {
		return 0
	}

	maxLen := len(pattern)
	if len(text) > maxLen {
		maxLen = len(text)
	}

	distanceConfidence := 1.0 - float64(distance)/float64(maxLen)

	scoreConfidence := float64(score) / float64(len(pattern)*10)
	if scoreConfidence > 1.0 {
		scoreConfidence = 1.0
	}

	c := distanceConfidence*0.6 + scoreConfidence*0.4
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
