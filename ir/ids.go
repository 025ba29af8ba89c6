package ir

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// NodeID derives a stable identifier from the tuple that positions a node:
// the owning file, its line and column, and either its dotted document path
// or its symbolic name. Identical inputs at identical positions always
// produce identical ids, across processes and across runs (§3 invariants).
func NodeID(filePath string, line, column int, pathOrName string) string {
	h := blake3.New()
	fmt.Fprintf(h, "%s\x00%d\x00%d\x00%s", filePath, line, column, pathOrName)
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}

// ContentHash hashes an arbitrary byte blob with blake3, returning the full
// 256-bit digest as hex. Used for the per-file AnalysisCache key (§4.10) and
// for Finding.ID (§3).
func ContentHash(parts ...[]byte) string {
	h := blake3.New()
	for _, p := range parts {
		h.Write(p)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
