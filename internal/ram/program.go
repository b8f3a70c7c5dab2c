package ram

import "github.com/lwy-someone/souffle/internal/indexing"

// Program is the root of an intermediate-program tree, ready to be handed
// to IndexAnalysis.Run.
type Program struct {
	Root Op
}

// NewProgram wraps root (typically a *Sequence) as a Program.
func NewProgram(root Op) *Program {
	return &Program{Root: root}
}

// VisitDepthFirst implements indexing.ProgramVisitor: it walks the tree
// depth-first, pre-order, handing every node (not only the three
// search-contributing kinds) to visit.
func (p *Program) VisitDepthFirst(visit func(indexing.WalkNode)) {
	if p.Root == nil {
		return
	}
	walk(p.Root, visit)
}

func walk(op operation, visit func(indexing.WalkNode)) {
	visit(op)
	for _, child := range op.children() {
		walk(child, visit)
	}
}
