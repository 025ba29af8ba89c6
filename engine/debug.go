package engine

import (
	"sync"

	"github.com/google/uuid"
)

// DebugEvent is the closed set of observability events a scan emits (§6).
type DebugEvent interface{ isDebugEvent() }

// ParseStart fires when AnalyzeFiles or AnalyzeFilesStreaming picks up an
// already-parsed FileIR, before its analysis-cache lookup. The parser
// package itself emits no events.
type ParseStart struct{ Path string }

// ParseEnd fires after that FileIR's findings are ready, whether taken from
// the analysis cache or produced by AnalyzeFile.
type ParseEnd struct{ Path string }

// RuleCompiled fires once per rule as the loader finishes compiling it.
type RuleCompiled struct{ ID string }

// MatchAttempt fires before a rule is dispatched against a file.
type MatchAttempt struct {
	RuleID, File string
}

// MatchResult fires after a rule has been evaluated against a file.
type MatchResult struct {
	RuleID, File string
	Matched      bool
}

func (ParseStart) isDebugEvent()   {}
func (ParseEnd) isDebugEvent()     {}
func (RuleCompiled) isDebugEvent() {}
func (MatchAttempt) isDebugEvent() {}
func (MatchResult) isDebugEvent()  {}

// CorrelatedEvent tags a debug event with the scan run that produced it, so
// a sink aggregating events from multiple concurrent Engine runs can tell
// them apart (§6 "Debug events" / run correlation).
type CorrelatedEvent struct {
	RunID string
	Event DebugEvent
}

func (CorrelatedEvent) isDebugEvent() {}

// newRunID mints a fresh correlation id for one Engine's lifetime.
func newRunID() string {
	return uuid.New().String()
}

// DebugSink receives debug events. Implementations must be safe to call
// from any worker goroutine (§5 "Debug sink: a single installed observer
// guarded by a lock").
type DebugSink interface {
	Observe(DebugEvent)
}

// debugSink is the process-wide installed observer, defaulting to a no-op.
var (
	debugMu   sync.Mutex
	debugSink DebugSink = noopSink{}
)

type noopSink struct{}

func (noopSink) Observe(DebugEvent) {}

// InstallDebugSink replaces the process-wide debug sink.
func InstallDebugSink(s DebugSink) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if s == nil {
		s = noopSink{}
	}
	debugSink = s
}

// emit sends ev to the installed sink.
func emit(ev DebugEvent) {
	debugMu.Lock()
	s := debugSink
	debugMu.Unlock()
	s.Observe(ev)
}
