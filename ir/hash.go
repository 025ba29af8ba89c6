package ir

import (
	"encoding/json"
	"fmt"
)

// HashFile computes the content hash used as the AnalysisCache key (§4.10).
// It mixes file_type, file_path and source when source text was retained by
// the parser; otherwise it falls back to the serialized document nodes,
// since structured-document parsers often don't keep raw source.
func HashFile(f *FileIR) string {
	parts := [][]byte{
		[]byte(f.FileType),
		[]byte(f.FilePath),
	}
	if f.HasSource {
		parts = append(parts, []byte(f.Source))
	} else {
		b, _ := json.Marshal(f.Nodes)
		parts = append(parts, b)
	}
	return ContentHash(parts...)
}

// SetSource records the raw text of the file and marks HasSource, matching
// the invariant that HashFile prefers source over serialized nodes.
func (f *FileIR) SetSource(src string) {
	f.Source = src
	f.HasSource = true
}

// DebugString is a small human-readable summary, handy in debug output.
func (f *FileIR) DebugString() string {
	return fmt.Sprintf("%s (%s): %d nodes, %d dfg nodes, %d symbols",
		f.FilePath, f.FileType, len(f.Nodes), len(f.DFG.Nodes), len(f.Symbols))
}
