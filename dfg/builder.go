package dfg

import (
	"fmt"

	"github.com/latticesec/scanner/ir"
)

// Builder incrementally constructs a FileIR's DFG and symbol table while a
// language parser walks its AST, mirroring the statement-at-a-time style of
// the teacher's AnalyzeIntraProceduralTaint but writing directly into the
// persisted graph/symbol-table shapes the rule engine later reads, instead
// of a throwaway TaintState (§4.2).
type Builder struct {
	File    *ir.FileIR
	Branch  *BranchStack
	fnCount int
}

// NewBuilder wraps a FileIR for incremental DFG construction.
func NewBuilder(file *ir.FileIR) *Builder {
	return &Builder{File: file, Branch: NewBranchStack()}
}

func (b *Builder) nodeID(kind ir.DFNodeKind, name string, loc ir.Location) string {
	b.fnCount++
	return ir.NodeID(b.File.FilePath, loc.Line, loc.Column, fmt.Sprintf("%s:%s:%d", kind, name, b.fnCount))
}

// Def records a new definition of name (assignment target, for loop
// variable, etc.) and returns its node id.
func (b *Builder) Def(name string, loc ir.Location) string {
	id := b.nodeID(ir.DFDef, name, loc)
	n := &ir.DFNode{ID: id, Name: name, Kind: ir.DFDef}
	b.Branch.Tag(n)
	b.File.DFG.AddNode(n)
	b.File.Symbols[name] = &ir.Symbol{Name: name, Def: id}
	return id
}

// Param records a function parameter as a Def-like node (§4.2.4).
func (b *Builder) Param(name string, loc ir.Location) string {
	id := b.nodeID(ir.DFParam, name, loc)
	n := &ir.DFNode{ID: id, Name: name, Kind: ir.DFParam}
	b.Branch.Tag(n)
	b.File.DFG.AddNode(n)
	b.File.Symbols[name] = &ir.Symbol{Name: name, Def: id}
	return id
}

// Use records a read of name, linking it back to name's current Def if
// known, and returns the Use node's id.
func (b *Builder) Use(name string, loc ir.Location) string {
	id := b.nodeID(ir.DFUse, name, loc)
	n := &ir.DFNode{ID: id, Name: name, Kind: ir.DFUse, Sanitized: IsSanitized(b.File.Symbols, name)}
	b.Branch.Tag(n)
	b.File.DFG.AddNode(n)
	if sym, ok := b.File.Symbols[name]; ok && sym.Def != "" {
		b.File.DFG.AddEdge(sym.Def, id)
	}
	return id
}

// Assign records `dest = src` as an Assign node, aliasing dest to src so
// ResolveAlias can propagate sanitization transitively (§4.2.6).
func (b *Builder) Assign(dest, src string, loc ir.Location) string {
	id := b.nodeID(ir.DFAssign, dest, loc)
	n := &ir.DFNode{ID: id, Name: dest, Kind: ir.DFAssign, Sanitized: IsSanitized(b.File.Symbols, src)}
	b.Branch.Tag(n)
	b.File.DFG.AddNode(n)
	if srcSym, ok := b.File.Symbols[src]; ok && srcSym.Def != "" {
		b.File.DFG.AddEdge(srcSym.Def, id)
	}
	SetAlias(b.File.Symbols, dest, src)
	b.File.Symbols[dest].Def = id
	return id
}

// Return records a return-value expression's dependency on src.
func (b *Builder) Return(src string, loc ir.Location) string {
	id := b.nodeID(ir.DFReturn, src, loc)
	n := &ir.DFNode{ID: id, Name: src, Kind: ir.DFReturn, Sanitized: IsSanitized(b.File.Symbols, src)}
	b.Branch.Tag(n)
	b.File.DFG.AddNode(n)
	if srcSym, ok := b.File.Symbols[src]; ok && srcSym.Def != "" {
		b.File.DFG.AddEdge(srcSym.Def, id)
	}
	return id
}

// EnterBranch pushes a new branch arm (if/match/loop body) and returns its
// id for the caller to pass to Merge once every arm has been walked.
func (b *Builder) EnterBranch() ir.BranchID {
	return b.Branch.Push()
}

// ExitBranch leaves the innermost branch arm.
func (b *Builder) ExitBranch() {
	b.Branch.Pop()
}

// MergeBranch folds the per-arm Defs produced for dest across the given
// predecessor node ids into one unbranched Def (conservative AND merge).
func (b *Builder) MergeBranch(dest string, predIDs []string, join ir.JoinKind, loc ir.Location) string {
	id := b.nodeID(ir.DFDef, dest, loc)
	n := &ir.DFNode{ID: id, Name: dest, Kind: ir.DFDef}
	b.File.DFG.AddNode(n)
	Merge(b.File.DFG, id, predIDs, join)
	b.File.Symbols[dest] = &ir.Symbol{Name: dest, Def: id, Sanitized: n.Sanitized}
	return id
}

// Call records a callsite's argument binding in the `calls` relation. It
// does not classify the callee or mark anything sanitized; that is left to
// the caller (a language parser), so this package stays catalog-agnostic.
func (b *Builder) Call(callerFnID, calleeFnID, argDefID string, positionalIndex int) {
	b.File.DFG.Calls = append(b.File.DFG.Calls, ir.CallEdge{
		CallerFnID:      callerFnID,
		CalleeFnID:      calleeFnID,
		ArgDefID:        argDefID,
		PositionalIndex: positionalIndex,
	})
}

// CallReturn records `dest = callee(...)` in the `call_returns` relation so
// interprocedural tracking can resume at the callee's return nodes.
func (b *Builder) CallReturn(destDefID, calleeFnID string) {
	b.File.DFG.CallReturns = append(b.File.DFG.CallReturns, ir.CallReturnEdge{
		DestDefID:  destDefID,
		CalleeFnID: calleeFnID,
	})
}
