// Package ramtest holds small, shared program builders used by tests across
// the ram and indexing packages, centralizing fixture construction
// instead of duplicating it per _test.go file.
package ramtest

import (
	"github.com/lwy-someone/souffle/internal/indexing"
	"github.com/lwy-someone/souffle/internal/ram"
)

// EdgeAndPath returns a small two-relation program: an "edge" btree relation
// scanned three ways (by source, by destination, by both), and a "reaches"
// hashset relation probed once by existence. It exercises both the optimal
// and naive solving paths in a single program.
func EdgeAndPath() *ram.Program {
	edge := ram.NewRelation("edge", 2, indexing.BTree, "x", "y")
	reaches := ram.NewRelation("reaches", 2, indexing.Hashset, "src", "dst")

	return ram.NewProgram(&ram.Sequence{Ops: []ram.Op{
		&ram.Scan{Rel: edge, Mask: indexing.NewSearchMask(0)},
		&ram.Scan{Rel: edge, Mask: indexing.NewSearchMask(0, 1)},
		&ram.Aggregate{Rel: edge, Mask: indexing.NewSearchMask(1)},
		&ram.NotExists{Rel: reaches, KeyMask: indexing.NewSearchMask(0, 1)},
		&ram.Insert{Rel: reaches},
	}})
}

// ChainOfThree returns a program whose only relation receives three nested
// search patterns forming a single chain: {0b0001, 0b0011, 0b0111}.
func ChainOfThree() (*ram.Relation, *ram.Program) {
	rel := ram.NewRelation("chain", 4, indexing.BTree, "a", "b", "c", "d")
	prog := ram.NewProgram(&ram.Sequence{Ops: []ram.Op{
		&ram.Scan{Rel: rel, Mask: indexing.NewSearchMask(0)},
		&ram.Scan{Rel: rel, Mask: indexing.NewSearchMask(0, 1)},
		&ram.Scan{Rel: rel, Mask: indexing.NewSearchMask(0, 1, 2)},
	}})
	return rel, prog
}
