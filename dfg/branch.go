package dfg

import "github.com/latticesec/scanner/ir"

// BranchStack assigns fresh BranchIDs to nested control-flow arms as a
// builder walks a function body, so a Def created inside an `if`/`match`
// arm (or loop body) carries the arm it belongs to (§4.2.7).
type BranchStack struct {
	next  ir.BranchID
	stack []ir.BranchID
}

// NewBranchStack returns an empty stack; the outermost scope has no branch.
func NewBranchStack() *BranchStack {
	return &BranchStack{next: 1}
}

// Push allocates and enters a new branch arm, returning its id.
func (b *BranchStack) Push() ir.BranchID {
	id := b.next
	b.next++
	b.stack = append(b.stack, id)
	return id
}

// Pop leaves the innermost branch arm. No-op if already at the outermost
// scope.
func (b *BranchStack) Pop() {
	if len(b.stack) == 0 {
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Current returns the innermost branch id and whether one is active.
func (b *BranchStack) Current() (ir.BranchID, bool) {
	if len(b.stack) == 0 {
		return 0, false
	}
	return b.stack[len(b.stack)-1], true
}

// Tag stamps n with the stack's current branch, if any.
func (b *BranchStack) Tag(n *ir.DFNode) {
	if id, ok := b.Current(); ok {
		n.Branch = id
		n.HasBranch = true
	}
}

// Merge joins the per-arm Defs preds produced for the same variable into a
// single unbranched Def at dest, recording the join for diagnostics. The
// merged Def is sanitized only when every predecessor arm is sanitized —
// the conservative merge semantics required by §4.2.7: a variable is
// unsanitized after the join unless ALL branches sanitized it.
func Merge(g *ir.DFG, destID string, predIDs []string, join ir.JoinKind) {
	allSanitized := len(predIDs) > 0
	for _, pid := range predIDs {
		if n, ok := g.Nodes[pid]; ok {
			if !n.Sanitized {
				allSanitized = false
			}
		} else {
			allSanitized = false
		}
		g.AddEdge(pid, destID)
	}
	if dest, ok := g.Nodes[destID]; ok {
		dest.Sanitized = allSanitized
	}
	g.Merges = append(g.Merges, ir.BranchMerge{Dest: destID, Preds: predIDs, Join: join})
}
