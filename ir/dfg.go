package ir

// DFNodeKind classifies a data-flow graph node (§3).
type DFNodeKind string

const (
	DFDef    DFNodeKind = "Def"
	DFParam  DFNodeKind = "Param"
	DFUse    DFNodeKind = "Use"
	DFAssign DFNodeKind = "Assign"
	DFReturn DFNodeKind = "Return"
	DFBranch DFNodeKind = "Branch"
)

// BranchID identifies one branch arm pushed onto the builder's branch stack
// (§4.2.7, §9). The zero value means "no branch" (outermost scope).
type BranchID uint32

// DFNode is one node of the data-flow graph.
type DFNode struct {
	ID        string
	Name      string
	Kind      DFNodeKind
	Sanitized bool
	Branch    BranchID // 0 == unset
	HasBranch bool
}

// DFGEdge is a directed def/use edge between two DFNode ids.
type DFGEdge struct {
	From string
	To   string
}

// BranchMerge records a join point: dest is the unbranched Def created when
// control-flow paths rejoin, and Preds are the branch-tagged Defs it merges.
// Join carries the construct that produced the join, for diagnostics only —
// it never changes sanitization semantics (SPEC_FULL supplement).
type BranchMerge struct {
	Dest  string
	Preds []string
	Join  JoinKind
}

// JoinKind names the control construct whose arms were merged.
type JoinKind string

const (
	JoinIf    JoinKind = "if"
	JoinMatch JoinKind = "match"
	JoinLoop  JoinKind = "loop"
)

// DFG is the per-file data-flow graph plus its auxiliary interprocedural
// relations (§3).
type DFG struct {
	Nodes map[string]*DFNode
	Edges []DFGEdge

	// Calls records caller_fn_id -> callee_fn_id.
	Calls []CallEdge
	// CallReturns records dest_def_id -> callee_fn_id for `y = f(args)`.
	CallReturns []CallReturnEdge
	// Merges records branch-merge join points.
	Merges []BranchMerge
}

// CallEdge is one entry of the `calls` relation, optionally carrying the
// argument-to-parameter binding used to wire Param edges after all
// functions in a file have been walked (§4.2.4).
type CallEdge struct {
	CallerFnID      string
	CalleeFnID      string
	ArgDefID        string
	PositionalIndex int
}

// CallReturnEdge is one entry of the `call_returns` relation.
type CallReturnEdge struct {
	DestDefID  string
	CalleeFnID string
}

// NewDFG returns an empty data-flow graph.
func NewDFG() *DFG {
	return &DFG{Nodes: make(map[string]*DFNode)}
}

// AddNode inserts a node, returning it for chaining.
func (g *DFG) AddNode(n *DFNode) *DFNode {
	g.Nodes[n.ID] = n
	return n
}

// AddEdge adds a directed def/use edge. Both endpoints must already exist;
// the invariant is enforced by callers (builders), not by this method, to
// keep hot-path insertion allocation-free.
func (g *DFG) AddEdge(from, to string) {
	g.Edges = append(g.Edges, DFGEdge{From: from, To: to})
}

// Successors returns the ids of nodes reachable by one def/use edge from id.
func (g *DFG) Successors(id string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e.To)
		}
	}
	return out
}

// Predecessors returns the ids of nodes with an edge into id.
func (g *DFG) Predecessors(id string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.To == id {
			out = append(out, e.From)
		}
	}
	return out
}

// SymbolKind classifies a name per the catalog lookup at parse time (§3).
type SymbolKind string

const (
	SymbolSource    SymbolKind = "Source"
	SymbolSink      SymbolKind = "Sink"
	SymbolSanitizer SymbolKind = "Sanitizer"
	SymbolSpecial   SymbolKind = "Special"
)

// Symbol is one entry of a file's symbol table (§3). AliasOf, when set,
// names the symbol this one is a direct alias of; chains are resolved to a
// canonical root by the dfg package's alias-resolution pass.
type Symbol struct {
	Name      string
	Sanitized bool
	Def       string // DFNode id, empty if undefined
	AliasOf   string // name, empty if not an alias
}
