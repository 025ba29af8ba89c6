// Package ir defines the language-neutral intermediate representation shared
// by every front-end parser, the rule matching engine, and the taint tracker:
// document nodes, AST, CFG, DFG and the per-file symbol table.
package ir

import "fmt"

// Location is a 1-based file/line/column position.
type Location struct {
	File   string
	Line   int
	Column int
}

// String renders the location as "file:line:col".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
