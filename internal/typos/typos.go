// Package typos holds the compiled-in typo database and the canonical
// command list used as fuzzy-match targets.
package typos

// Entry is a single wrong-to-correct command mapping.
type Entry struct {
	Wrong   string `json:"wrong" yaml:"wrong" mapstructure:"wrong"`
	Correct string `json:"correct" yaml:"correct" mapstructure:"correct"`
}

// Builtin returns the compiled-in typo table. The returned slice is shared;
// callers must not mutate it.
func Builtin() []Entry {
	return builtinTable
}

// Canonical returns the compiled-in list of known-good command names.
// Used only as fuzzy targets, never for exact lookup.
func Canonical() []string {
	return canonicalCommands
}

// IsBuiltin reports whether wrong already appears in the built-in table.
func IsBuiltin(wrong string) bool {
	_, ok := builtinIndex[wrong]
	return ok
}

// builtinIndex is built once at init for exact membership checks.
var builtinIndex = func() map[string]string {
	m := make(map[string]string, len(builtinTable))
	for _, e := range builtinTable {
		m[e.Wrong] = e.Correct
	}
	return m
}()
