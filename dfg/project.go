package dfg

import "github.com/latticesec/scanner/ir"

// ModuleKey identifies a module/package namespace a symbol is exported
// under (e.g. a Python dotted module path, a Rust crate::path, a Java
// fully-qualified class).
type ModuleKey = string

// ProjectIndex links symbols exported from one file to the files that
// import them, for languages whose taint flows cross file boundaries
// (Python, Rust, Java, PHP — §4.2.8 "project-wide cross-module parsing").
// It is built once per scan after every file's FileIR has been produced.
type ProjectIndex struct {
	// exports maps a module key + symbol name to the FileIR that defines it.
	exports map[string]*ir.FileIR
}

// NewProjectIndex returns an empty cross-module index.
func NewProjectIndex() *ProjectIndex {
	return &ProjectIndex{exports: make(map[string]*ir.FileIR)}
}

func exportKey(module, name string) string { return module + "#" + name }

// IndexFile registers every symbol file.SymbolModules names as exported
// under its module key, so later files importing that module can resolve
// the definition's sanitization/classification.
func (p *ProjectIndex) IndexFile(file *ir.FileIR) {
	for name, module := range file.SymbolModules {
		p.exports[exportKey(module, name)] = file
	}
}

// Resolve looks up name as exported from module, returning the defining
// FileIR and whether it was found.
func (p *ProjectIndex) Resolve(module, name string) (*ir.FileIR, bool) {
	f, ok := p.exports[exportKey(module, name)]
	return f, ok
}

// ResolveSanitized reports whether an imported symbol resolves, through the
// defining file's own symbol table and alias closure, to a sanitized
// definition.
func (p *ProjectIndex) ResolveSanitized(module, name string) bool {
	f, ok := p.Resolve(module, name)
	if !ok {
		return false
	}
	return IsSanitized(f.Symbols, name)
}
