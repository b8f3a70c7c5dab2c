package ram_test

import (
	"testing"

	"github.com/lwy-someone/souffle/internal/indexing"
	"github.com/lwy-someone/souffle/internal/ram"
	"github.com/lwy-someone/souffle/internal/ramtest"
	"github.com/stretchr/testify/require"
)

func TestProgramVisitDepthFirstOrder(t *testing.T) {
	rel := ram.NewRelation("r", 2, indexing.BTree, "a", "b")
	scan := &ram.Scan{Rel: rel, Mask: indexing.NewSearchMask(0)}
	agg := &ram.Aggregate{Rel: rel, Mask: indexing.NewSearchMask(1), Body: scan}
	notExists := &ram.NotExists{Rel: rel, KeyMask: indexing.NewSearchMask(0, 1)}
	insert := &ram.Insert{Rel: rel}
	seq := &ram.Sequence{Ops: []ram.Op{agg, notExists, insert}}
	loop := &ram.Loop{Body: seq}
	prog := ram.NewProgram(loop)

	var kinds []indexing.NodeKind
	prog.VisitDepthFirst(func(n indexing.WalkNode) {
		kinds = append(kinds, n.Kind())
	})

	// pre-order: Loop, Sequence, Aggregate, Scan (Aggregate's body), NotExists, Insert
	require.Equal(t, []indexing.NodeKind{
		indexing.KindOther,     // Loop
		indexing.KindOther,     // Sequence
		indexing.KindAggregate, // Aggregate
		indexing.KindScan,      // Scan (Aggregate's body)
		indexing.KindNotExists, // NotExists
		indexing.KindOther,     // Insert
	}, kinds)
}

func TestProgramVisitDepthFirstEmptyRoot(t *testing.T) {
	prog := ram.NewProgram(nil)
	calls := 0
	prog.VisitDepthFirst(func(indexing.WalkNode) { calls++ })
	require.Equal(t, 0, calls)
}

func TestScanAndAggregateImplementRangeSearch(t *testing.T) {
	rel := ram.NewRelation("r", 2, indexing.BTree)
	var _ indexing.RangeSearch = &ram.Scan{Rel: rel, Mask: indexing.NewSearchMask(0)}
	var _ indexing.RangeSearch = &ram.Aggregate{Rel: rel, Mask: indexing.NewSearchMask(0)}
	var _ indexing.KeySearch = &ram.NotExists{Rel: rel, KeyMask: indexing.NewSearchMask(0)}
}

func TestProgramVisitDepthFirstOverEdgeAndPathFixture(t *testing.T) {
	prog := ramtest.EdgeAndPath()

	var kinds []indexing.NodeKind
	prog.VisitDepthFirst(func(n indexing.WalkNode) {
		kinds = append(kinds, n.Kind())
	})

	require.Equal(t, []indexing.NodeKind{
		indexing.KindOther, // Sequence
		indexing.KindScan,
		indexing.KindScan,
		indexing.KindAggregate,
		indexing.KindNotExists,
		indexing.KindOther, // Insert
	}, kinds)
}

func TestProgramVisitDepthFirstOverChainOfThreeFixture(t *testing.T) {
	rel, prog := ramtest.ChainOfThree()
	require.Equal(t, "chain", rel.Name())

	var masks []indexing.SearchMask
	prog.VisitDepthFirst(func(n indexing.WalkNode) {
		if rs, ok := n.(indexing.RangeSearch); ok {
			masks = append(masks, rs.Columns())
		}
	})

	require.Equal(t, []indexing.SearchMask{
		indexing.NewSearchMask(0),
		indexing.NewSearchMask(0, 1),
		indexing.NewSearchMask(0, 1, 2),
	}, masks)
}
