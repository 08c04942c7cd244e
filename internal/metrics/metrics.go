// Package metrics collects in-process counters for a single run
package metrics

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

// Metrics holds per-run counters. A CLI invocation is short-lived, so
// these are reported at exit via the debug log rather than exported.
type Metrics struct {
	SuggestionsShown atomic.Int64
	FixesApplied     atomic.Int64
	TableHits        atomic.Int64
	FuzzyHits        atomic.Int64
	AIRequests       atomic.Int64
	AIErrors         atomic.Int64

	MatchDuration atomic.Int64 // microseconds

	StartTime time.Time
	Version   string
}

var (
	globalMetrics *Metrics
	once          sync.Once
)

// Initialize initializes the global metrics
func Initialize(version string) *Metrics {
	once.Do(func() {
		globalMetrics = &Metrics{
			StartTime: time.Now(),
			Version:   version,
		}
	})
	return globalMetrics
}

// Get returns the global metrics instance
func Get() *Metrics {
	if globalMetrics == nil {
		return Initialize("dev")
	}
	return globalMetrics
}

// RecordSuggestions records a batch of suggestions shown to the user.
func (m *Metrics) RecordSuggestions(n int) {
	m.SuggestionsShown.Add(int64(n))
}

// RecordFixApplied increments the applied-fix counter
func (m *Metrics) RecordFixApplied() {
	m.FixesApplied.Add(1)
}

// RecordTableHit increments the exact-table hit counter
func (m *Metrics) RecordTableHit() {
	m.TableHits.Add(1)
}

// RecordFuzzyHit increments the fuzzy hit counter
func (m *Metrics) RecordFuzzyHit() {
	m.FuzzyHits.Add(1)
}

// RecordAIRequest records an AI fallback call and its outcome.
func (m *Metrics) RecordAIRequest(err error) {
	m.AIRequests.Add(1)
	if err != nil {
		m.AIErrors.Add(1)
	}
}

// RecordMatchDuration records time spent in the match engine.
func (m *Metrics) RecordMatchDuration(d time.Duration) {
	m.MatchDuration.Add(d.Microseconds())
}

// Uptime returns time since process start
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.StartTime)
}

// Snapshot returns a snapshot of current metrics
func (m *Metrics) Snapshot() map[string]any {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]any{
		"suggestions_shown": m.SuggestionsShown.Load(),
		"fixes_applied":     m.FixesApplied.Load(),
		"table_hits":        m.TableHits.Load(),
		"fuzzy_hits":        m.FuzzyHits.Load(),
		"ai_requests":       m.AIRequests.Load(),
		"ai_errors":         m.AIErrors.Load(),
		"match_micros":      m.MatchDuration.Load(),
		"uptime":            m.Uptime().String(),
		"version":           m.Version,
		"mem_alloc":         memStats.Alloc,
	}
}

// JSON returns metrics as JSON
func (m *Metrics) JSON() ([]byte, error) {
	return json.MarshalIndent(m.Snapshot(), "", "  ")
}

// Convenience functions for the global instance

func RecordSuggestions(n int) {
	Get().RecordSuggestions(n)
}

func RecordFixApplied() {
	Get().RecordFixApplied()
}

func RecordTableHit() {
	Get().RecordTableHit()
}

func RecordFuzzyHit() {
	Get().RecordFuzzyHit()
}

func RecordAIRequest(err error) {
	Get().RecordAIRequest(err)
}

func RecordMatchDuration(d time.Duration) {
	Get().RecordMatchDuration(d)
}
