// Package plugin holds the small pieces of the JSON-RPC plugin contract
// this engine owns directly; subprocess supervision and the wire protocol
// itself are an external collaborator's responsibility (§1 Out of scope,
// §6 "Plugin transport (external)").
package plugin

import (
	"path/filepath"
	"strings"

	"github.com/latticesec/scanner/ir"
)

// SanitizePath rewrites a real filesystem path to the virtual form a
// `reads_fs=false` plugin is shown, so it can reference a file by a stable
// name without ever seeing the host layout: `/virtual/{basename}-{12-hex}`
// where the hex is blake3(normalized_path) (§6).
func SanitizePath(path string) string {
	normalized := filepath.ToSlash(filepath.Clean(strings.ReplaceAll(path, "\\", "/")))
	hash := ir.ContentHash([]byte(normalized))
	base := filepath.Base(normalized)
	return "/virtual/" + base + "-" + hash[:12]
}

// IsVirtualPath reports whether p looks like a SanitizePath output, for
// callers deciding whether to resolve a plugin-reported path against the
// real tree or treat it as opaque.
func IsVirtualPath(p string) bool {
	return strings.HasPrefix(p, "/virtual/")
}
