// Package wasmpolicy sandboxes Rego-compiled-to-WASM policy evaluation
// behind a warmup/evaluate lifecycle, backed by wasmerio/wasmer-go — the
// only WASM runtime present anywhere in the retrieved pack. Grounded in
// style on the teacher's lazily-initialized, lock-guarded singletons
// (graph/callgraph/patterns registries), applied here to a per-rule
// compiled-module cache instead of a pattern table (§4.7).
package wasmpolicy

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	wasmer "github.com/wasmerio/wasmer-go/wasmer"
)

// Limits bounds one evaluation's resource use (§5 "bounded WASM fuel budget
// and memory limit guarantee termination").
//
// wasmer-go's cgo binding doesn't expose wasmer's Rust-side metering
// middleware (no instruction-counting fuel API reaches the Go side), so
// FuelUnits is enforced as a derived wall-clock deadline instead of true
// instruction counting — see fuelTimeout. MemoryMB is enforced for real: the
// module's own exported linear memory is measured against it after every
// call via checkMemory.
type Limits struct {
	FuelUnits uint64
	MemoryMB  uint32
}

// fuelUnitsPerSecond approximates a conservative interpreted-WASM
// instruction rate, used only to translate a fuel budget into a timeout
// (see Limits doc comment).
const fuelUnitsPerSecond = 50_000_000

// fuelTimeout derives a wall-clock budget from a fuel unit count.
func (l Limits) fuelTimeout() time.Duration {
	if l.FuelUnits == 0 {
		return 5 * time.Second
	}
	d := time.Duration(l.FuelUnits) * time.Second / fuelUnitsPerSecond
	if d < 50*time.Millisecond {
		d = 50 * time.Millisecond
	}
	return d
}

// memoryBudgetBytes converts MemoryMB into a byte ceiling.
func (l Limits) memoryBudgetBytes() uint {
	if l.MemoryMB == 0 {
		return 0
	}
	return uint(l.MemoryMB) * 1024 * 1024
}

// DefaultLimits is used when a rule does not override Limits.
var DefaultLimits = Limits{FuelUnits: 10_000_000, MemoryMB: 64}

// Evaluator warms up and evaluates one Rego/WASM policy module.
type Evaluator struct {
	mu         sync.Mutex
	path       string
	entrypoint string
	limits     Limits

	// ID correlates this evaluator's debug/log output across a run; it has
	// no bearing on evaluation semantics.
	ID string

	store    *wasmer.Store
	instance *wasmer.Instance
	ready    bool
	initErr  error
}

// NewEvaluator returns an evaluator for the policy at path; call Warmup
// once at startup before Evaluate.
func NewEvaluator(path, entrypoint string, limits Limits) *Evaluator {
	return &Evaluator{path: path, entrypoint: entrypoint, limits: limits, ID: uuid.New().String()}
}

// Warmup reads and instantiates the module. A failure is recorded but not
// returned as fatal to the caller's scan: the rule is marked non-matching
// and every subsequent Evaluate call returns (nil, false) (§4.7, §7
// WasmInit).
func (e *Evaluator) Warmup() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := os.ReadFile(e.path)
	if err != nil {
		e.initErr = fmt.Errorf("failed to read WASM policy %q: %w", e.path, err)
		return e.initErr
	}

	engine := wasmer.NewEngine()
	store := wasmer.NewStore(engine)
	module, err := wasmer.NewModule(store, data)
	if err != nil {
		e.initErr = fmt.Errorf("failed to instantiate Rego WASM module %q: %w", e.path, err)
		return e.initErr
	}
	importObject := wasmer.NewImportObject()
	instance, err := wasmer.NewInstance(module, importObject)
	if err != nil {
		e.initErr = fmt.Errorf("failed to instantiate Rego WASM module %q: %w", e.path, err)
		return e.initErr
	}

	e.store = store
	e.instance = instance
	e.ready = true
	return nil
}

// Ready reports whether Warmup succeeded.
func (e *Evaluator) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

// PolicyResult is one element of the array an OPA/WASM entrypoint returns.
type PolicyResult struct {
	Result map[string]bool `json:"result"`
}

// Evaluate serializes input, invokes the configured entrypoint under the
// Evaluator's fuel/memory budget, and returns the decoded result array. If
// Warmup never succeeded, the call times out (fuel exhaustion), or the
// module's memory grows past its MemoryMB budget, Evaluate returns
// (nil, false) (§4.7, §5 "bounded WASM fuel budget and memory limit
// guarantee termination").
func (e *Evaluator) Evaluate(input interface{}) ([]PolicyResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.ready {
		return nil, false
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, false
	}

	// The OPA/WASM ABI exposes entrypoint dispatch through exported
	// functions (opa_eval et al.) that this evaluator calls by convention;
	// the exact export name is the rule's configured entrypoint.
	fn, err := e.instance.Exports.GetFunction(e.entrypoint)
	if err != nil || fn == nil {
		return nil, false
	}

	type callResult struct {
		raw interface{}
		err error
	}
	done := make(chan callResult, 1)
	go func() {
		raw, err := fn(string(payload))
		done <- callResult{raw: raw, err: err}
	}()

	var raw interface{}
	select {
	case r := <-done:
		if r.err != nil {
			return nil, false
		}
		raw = r.raw
	case <-time.After(e.limits.fuelTimeout()):
		// The underlying cgo call can't be preempted once it has entered the
		// WASM module, so the goroutine above is left to finish on its own;
		// the caller still gets a bounded, deterministic failure here.
		return nil, false
	}

	if !e.checkMemory() {
		return nil, false
	}

	out, ok := raw.(string)
	if !ok {
		return nil, false
	}

	var results []PolicyResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		return nil, false
	}
	return results, true
}

// checkMemory reports whether the instance's exported linear memory (if
// any) is still within the evaluator's MemoryMB budget.
func (e *Evaluator) checkMemory() bool {
	budget := e.limits.memoryBudgetBytes()
	if budget == 0 || e.instance == nil {
		return true
	}
	mem, err := e.instance.Exports.GetMemory("memory")
	if err != nil || mem == nil {
		return true
	}
	return mem.DataSize() <= budget
}
