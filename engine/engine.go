package engine

import (
	"sync"

	"github.com/latticesec/scanner/ir"
	"github.com/latticesec/scanner/rules"
	"github.com/latticesec/scanner/taint"
)

// Config controls one scan (§4.4, §5).
type Config struct {
	Threads        int // >=1; worker pool size
	RuleCacheSize  int
	SuppressionsOn bool
	FailOn         rules.Severity
	CallGraph      *taint.CallGraph // optional, for interprocedural taint
	Reporter       *Reporter        // optional, for progress display
}

// DefaultConfig returns single-threaded, suppression-enabled defaults.
func DefaultConfig() Config {
	return Config{Threads: 1, RuleCacheSize: 4096, SuppressionsOn: true}
}

// Engine runs rules against FileIRs, backed by an AnalysisCache and a
// RuleCache (§4.10).
type Engine struct {
	Analysis *AnalysisCache
	RuleLRU  *RuleCache
	RunID    string
	cfg      Config

	mu          sync.Mutex
	failedFiles int
}

// emit attaches this Engine's run id to ev before forwarding it to the
// process-wide debug sink.
func (e *Engine) emit(ev DebugEvent) {
	emit(CorrelatedEvent{RunID: e.RunID, Event: ev})
}

// New builds an Engine. analysisCachePath may be empty to disable
// persistence.
func New(cfg Config, analysisCachePath string) *Engine {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.RuleCacheSize <= 0 {
		cfg.RuleCacheSize = 4096
	}
	return &Engine{
		Analysis: NewAnalysisCache(analysisCachePath),
		RuleLRU:  NewRuleCache(cfg.RuleCacheSize),
		RunID:    newRunID(),
		cfg:      cfg,
	}
}

// FailedFiles returns how many files contributed a recovered parse error
// during this Engine's lifetime (§7 "failed_files").
func (e *Engine) FailedFiles() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.failedFiles
}

// AnalyzeFile runs every applicable rule against one FileIR and returns its
// findings, consulting and updating the rule cache and (via the caller) the
// analysis cache (§4.4 "Per-file algorithm"). metrics may be nil.
func (e *Engine) AnalyzeFile(file *ir.FileIR, ruleSet []*rules.CompiledRule, metrics *Metrics) []Finding {
	if file.FailedParse {
		e.mu.Lock()
		e.failedFiles++
		e.mu.Unlock()
		metrics.bumpFailedFiles()
	}

	var findings []Finding
	for _, rule := range ruleSet {
		if !rule.AppliesTo(file.FileType) {
			continue
		}
		e.emit(MatchAttempt{RuleID: rule.ID, File: file.FilePath})
		metrics.bumpRulesEvaluated()

		result, hit := e.RuleLRU.GetOrInsert(file.FilePath, rule.ID, func() []Finding {
			return dispatch(rule, file, e.cfg.CallGraph)
		})
		metrics.bumpCache(hit)
		e.emit(MatchResult{RuleID: rule.ID, File: file.FilePath, Matched: len(result) > 0})
		findings = append(findings, result...)
	}

	if e.cfg.SuppressionsOn {
		findings = filterSuppressed(findings, file)
	}
	return findings
}

func filterSuppressed(findings []Finding, file *ir.FileIR) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if file.IsSuppressed(f.Line) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// dispatch routes a compiled rule's matcher to its implementation (§4.5–§4.8).
func dispatch(rule *rules.CompiledRule, file *ir.FileIR, cg *taint.CallGraph) []Finding {
	switch m := rule.Matcher.(type) {
	case *rules.TextRegexMatcher:
		return matchTextRegex(rule, m, file)
	case *rules.TextRegexMultiMatcher:
		return matchTextRegexMulti(rule, m, file)
	case *rules.JsonPathEqMatcher:
		return matchJsonPathEq(rule, m, file)
	case *rules.JsonPathRegexMatcher:
		return matchJsonPathRegex(rule, m, file)
	case *rules.AstQueryMatcher:
		return matchAstQuery(rule, m, file)
	case *rules.AstPatternMatcher:
		return matchAstPattern(rule, m, file)
	case *rules.RegoWasmMatcher:
		return matchRegoWasm(rule, m, file)
	case *rules.TaintRuleMatcher:
		return matchTaintRule(rule, m, file, cg)
	default:
		return nil
	}
}

// AnalyzeFiles runs AnalyzeFile over every file using a bounded worker
// pool, consulting the AnalysisCache first and inserting into it from the
// coordinator goroutine only (§4.4 "Parallelism"). metrics may be nil; when
// given, it is updated by the worker goroutines as files complete.
func (e *Engine) AnalyzeFiles(files []*ir.FileIR, ruleSet []*rules.CompiledRule, metrics *Metrics) []Finding {
	type result struct {
		hash     string
		path     string
		findings []Finding
	}

	jobs := make(chan *ir.FileIR)
	results := make(chan result)

	if e.cfg.Reporter != nil {
		e.cfg.Reporter.Start(len(files))
		defer e.cfg.Reporter.Finish()
	}

	var wg sync.WaitGroup
	for i := 0; i < e.cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				e.emit(ParseStart{Path: file.FilePath})
				hash := ir.HashFile(file)
				if cached, ok := e.Analysis.Get(hash); ok {
					metrics.bumpFilesAnalyzed()
					results <- result{hash: hash, path: file.FilePath, findings: cached}
					e.emit(ParseEnd{Path: file.FilePath})
					continue
				}
				findings := e.AnalyzeFile(file, ruleSet, metrics)
				metrics.bumpFilesAnalyzed()
				results <- result{hash: hash, path: file.FilePath, findings: findings}
				e.emit(ParseEnd{Path: file.FilePath})
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Finding
	for r := range results {
		e.Analysis.Put(r.hash, r.findings)
		all = append(all, r.findings...)
		if e.cfg.Reporter != nil {
			e.cfg.Reporter.FileDone(r.path)
		}
	}
	return Dedup(all)
}

// AnalyzeFilesStreaming runs AnalyzeFile over a lazy sequence of FileIRs,
// yielding findings to yield and releasing each FileIR as soon as it has
// been analyzed, bounding peak memory to O(1 file + cache caps) (§4.4
// "Streaming"). metrics may be nil.
func (e *Engine) AnalyzeFilesStreaming(next func() (*ir.FileIR, bool), ruleSet []*rules.CompiledRule, yield func(Finding), metrics *Metrics) {
	var all []Finding
	for {
		file, ok := next()
		if !ok {
			break
		}
		e.emit(ParseStart{Path: file.FilePath})
		hash := ir.HashFile(file)
		var findings []Finding
		if cached, ok := e.Analysis.Get(hash); ok {
			findings = cached
		} else {
			findings = e.AnalyzeFile(file, ruleSet, metrics)
			e.Analysis.Put(hash, findings)
		}
		metrics.bumpFilesAnalyzed()
		e.emit(ParseEnd{Path: file.FilePath})
		all = append(all, findings...)
	}
	for _, f := range Dedup(all) {
		yield(f)
	}
}

// AnalyzeFilesWithConfig overrides the Engine's threads/suppression
// settings for one call without mutating shared state (§4.4). It shares
// the same AnalysisCache/RuleCache as e so results still benefit from
// whatever has already been computed. metrics may be nil.
func (e *Engine) AnalyzeFilesWithConfig(files []*ir.FileIR, ruleSet []*rules.CompiledRule, cfg Config, metrics *Metrics) []Finding {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	scoped := &Engine{Analysis: e.Analysis, RuleLRU: e.RuleLRU, RunID: newRunID(), cfg: cfg}
	return scoped.AnalyzeFiles(files, ruleSet, metrics)
}
