package engine

import "fmt"

// WasmInitError records a RegoWasm rule that failed to warm up; the rule is
// deactivated for the scan rather than aborting it (§4.7, §7).
type WasmInitError struct {
	RuleID string
	Reason string
}

func (e *WasmInitError) Error() string {
	return fmt.Sprintf("rule %q: failed to instantiate Rego WASM: %s", e.RuleID, e.Reason)
}

// InvalidGlobError is fatal at rule-load/config time (§7).
type InvalidGlobError struct {
	Pattern string
	Reason  string
}

func (e *InvalidGlobError) Error() string {
	return fmt.Sprintf("invalid glob %q: %s", e.Pattern, e.Reason)
}

// IOError wraps a filesystem failure, fatal only when the path was
// required configuration rather than a scanned file (§7).
type IOError struct {
	Path   string
	Reason error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error at %q: %v", e.Path, e.Reason)
}

func (e *IOError) Unwrap() error { return e.Reason }
