package ir

import (
	"path/filepath"
	"strings"
)

// FileType is the detected language/format of a source file (§4.1).
type FileType string

const (
	FileTypePython     FileType = "python"
	FileTypeRust       FileType = "rust"
	FileTypeJava       FileType = "java"
	FileTypePHP        FileType = "php"
	FileTypeYAML       FileType = "yaml"
	FileTypeJSON       FileType = "json"
	FileTypeDockerfile FileType = "dockerfile"
	FileTypeGeneric    FileType = "generic"
)

// DetectFileType maps a path to a FileType by extension/basename. Unknown
// extensions fall back to "generic" (§4.1) — the caller decides whether
// generic/binary content should be skipped.
func DetectFileType(path string) FileType {
	base := filepath.Base(path)
	if strings.EqualFold(base, "Dockerfile") || strings.HasPrefix(strings.ToLower(base), "dockerfile.") {
		return FileTypeDockerfile
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return FileTypePython
	case ".rs":
		return FileTypeRust
	case ".java":
		return FileTypeJava
	case ".php":
		return FileTypePHP
	case ".yaml", ".yml":
		return FileTypeYAML
	case ".json":
		return FileTypeJSON
	default:
		return FileTypeGeneric
	}
}

// FileIR is the per-file container produced by a parser and consumed by the
// rule matching engine (§3).
type FileIR struct {
	FilePath string
	FileType FileType

	Nodes     []IRNode
	Ast       *FileAst
	Source    string
	HasSource bool

	Suppressed map[int]struct{}

	DFG     *DFG
	Symbols map[string]*Symbol
	// SymbolTypes records the catalog classification (source/sink/sanitizer)
	// looked up for a name at parse time.
	SymbolTypes map[string]SymbolKind
	// SymbolScopes maps a name to the function/scope id it was defined in.
	SymbolScopes map[string]string
	// SymbolModules maps a name defined in this file to the module key it
	// belongs to, enabling the project-wide cross-module linking pass.
	SymbolModules map[string]string

	// FailedParse records that this file parsed with errors; only
	// error-free subtrees were retained (§4.1).
	FailedParse bool
}

// NewFileIR allocates a FileIR with its maps initialized.
func NewFileIR(path string, ftype FileType) *FileIR {
	return &FileIR{
		FilePath:      path,
		FileType:      ftype,
		Suppressed:    make(map[int]struct{}),
		DFG:           NewDFG(),
		Symbols:       make(map[string]*Symbol),
		SymbolTypes:   make(map[string]SymbolKind),
		SymbolScopes:  make(map[string]string),
		SymbolModules: make(map[string]string),
	}
}

// IsSuppressed reports whether line carries a suppression marker.
func (f *FileIR) IsSuppressed(line int) bool {
	_, ok := f.Suppressed[line]
	return ok
}

// MarkParseError records the `__parse_error__` special symbol and flags the
// file as having recovered from a partial parse (§4.1 error tolerance).
func (f *FileIR) MarkParseError() {
	f.FailedParse = true
	f.Symbols["__parse_error__"] = &Symbol{Name: "__parse_error__"}
	f.SymbolTypes["__parse_error__"] = SymbolSpecial
}
