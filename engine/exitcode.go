package engine

import "github.com/latticesec/scanner/rules"

// ExitCode mirrors the teacher's output.ExitCode (output/exit_code.go),
// adapted from fail-on set membership to the spec's severity-threshold
// comparison (§7 "Exit code... any finding has severity >= fail-on").
type ExitCode int

const (
	// ExitCodeSuccess: no fatal error, no finding at or above threshold.
	ExitCodeSuccess ExitCode = 0
	// ExitCodeFindings: a finding met or exceeded the fail-on threshold.
	ExitCodeFindings ExitCode = 1
	// ExitCodeError: a fatal error occurred (rule-load/config/IO).
	ExitCodeError ExitCode = 2
)

// DetermineExitCode implements the §7 exit-code precedence: fatal errors
// first, then severity threshold, then success. failOn is the configured
// minimum severity; the zero value means no threshold was configured, in
// which case findings never force a non-zero exit on their own.
func DetermineExitCode(findings []Finding, failOn rules.Severity, hadFatalError bool) ExitCode {
	if hadFatalError {
		return ExitCodeError
	}
	if failOn == "" {
		return ExitCodeSuccess
	}
	for _, f := range findings {
		if f.Severity.Ge(failOn) {
			return ExitCodeFindings
		}
	}
	return ExitCodeSuccess
}
