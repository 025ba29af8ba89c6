package parser

import (
	"strings"

	"github.com/latticesec/scanner/ir"
)

// DefaultSuppressionMarker is the marker recognized when a scan does not
// configure one explicitly (§4.1, "e.g. `# nosec`").
const DefaultSuppressionMarker = "nosec"

// ScanSuppressions records, in file.Suppressed, every 1-indexed line of
// source that contains marker. It does not try to parse
// comment syntax per language: a marker substring appearing anywhere on a
// line is enough, matching the teacher's preference for permissive textual
// scans over fileIR (§4.5 TextRegex).
func ScanSuppressions(file *ir.FileIR, source string, marker string) {
	if marker == "" {
		marker = DefaultSuppressionMarker
	}
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		if strings.Contains(line, marker) {
			file.Suppressed[i+1] = struct{}{}
		}
	}
}
