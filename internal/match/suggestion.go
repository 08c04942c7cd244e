// Package match implements the typo-correction match engine: exact lookup
// against the custom and built-in typo tables, with Jaro-Winkler fuzzy
// matching against the canonical command list as a fallback.
package match

// Confidence classifies how a suggestion was derived. Higher values rank
// higher in the final suggestion list.
type Confidence int

const (
	// ConfidenceFuzzy marks a similarity match against a canonical command.
	ConfidenceFuzzy Confidence = iota
	// ConfidenceExact marks an exact hit in the built-in typo table.
	ConfidenceExact
	// ConfidenceCustom marks a hit in the user's own typo list.
	ConfidenceCustom
)

// String returns the display label for the confidence level.
func (c Confidence) String() string {
	switch c {
	case ConfidenceCustom:
		return "custom"
	case ConfidenceExact:
		return "exact"
	case ConfidenceFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes the confidence as its display label.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Suggestion is a single correction candidate. It is a plain value owned
// by the caller for the duration of one correction cycle.
type Suggestion struct {
	Command     string     `json:"command"`
	Confidence  Confidence `json:"confidence"`
	Score       float64    `json:"score"`
	Explanation string     `json:"explanation"`
}
