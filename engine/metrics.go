package engine

import "sync/atomic"

// Metrics is a set of atomic run counters an AnalyzeFiles*/AnalyzeFilesStreaming
// caller may optionally pass in to observe scan progress without installing
// a DebugEvent sink (SPEC_FULL "Metrics" — `files_analyzed`,
// `rules_evaluated`, `cache_hits`, `cache_misses`, `failed_files`). A nil
// *Metrics is always safe to pass; every bump is a no-op against it.
type Metrics struct {
	FilesAnalyzed  atomic.Int64
	RulesEvaluated atomic.Int64
	CacheHits      atomic.Int64
	CacheMisses    atomic.Int64
	FailedFiles    atomic.Int64
}

// NewMetrics returns a zeroed Metrics ready for concurrent use.
func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) bumpFilesAnalyzed() {
	if m != nil {
		m.FilesAnalyzed.Add(1)
	}
}

func (m *Metrics) bumpRulesEvaluated() {
	if m != nil {
		m.RulesEvaluated.Add(1)
	}
}

func (m *Metrics) bumpCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Add(1)
	} else {
		m.CacheMisses.Add(1)
	}
}

func (m *Metrics) bumpFailedFiles() {
	if m != nil {
		m.FailedFiles.Add(1)
	}
}

// Snapshot returns the current counter values as plain ints, for reporting
// (JSON encoding, log lines) without exposing the atomics themselves.
func (m *Metrics) Snapshot() map[string]int64 {
	if m == nil {
		return map[string]int64{}
	}
	return map[string]int64{
		"files_analyzed":  m.FilesAnalyzed.Load(),
		"rules_evaluated": m.RulesEvaluated.Load(),
		"cache_hits":      m.CacheHits.Load(),
		"cache_misses":    m.CacheMisses.Load(),
		"failed_files":    m.FailedFiles.Load(),
	}
}
