package indexing_test

import (
	"bytes"
	"testing"

	"github.com/lwy-someone/souffle/internal/indexing"
	"github.com/lwy-someone/souffle/internal/ramtest"
	"github.com/stretchr/testify/require"
)

func TestIndexAnalysisOverEdgeAndPathFixture(t *testing.T) {
	prog := ramtest.EdgeAndPath()

	var buf bytes.Buffer
	a := indexing.NewIndexAnalysis(indexing.Options{Warn: &buf})
	require.NoError(t, a.Run(prog))

	require.Equal(t, []string{"edge", "reaches"}, a.RelationNames())

	edgeSet, ok := a.IndexSetFor("edge")
	require.True(t, ok)
	// {0}, {0,1}, {1}: {0} shares a chain with {0,1}, {1} is incomparable to
	// {0} and needs its own order.
	require.Len(t, edgeSet.Orders(), 2)

	reachesSet, ok := a.IndexSetFor("reaches")
	require.True(t, ok)
	// reaches is hashset-backed, so it takes the naive one-index-per-search
	// path and never prints the naive-mode warning (storage-implied, not
	// environment-forced).
	require.Len(t, reachesSet.Orders(), 1)
	require.Empty(t, buf.String())

	var report bytes.Buffer
	indexing.Print(&report, a)
	require.Contains(t, report.String(), "Relation edge")
	require.Contains(t, report.String(), "Relation reaches")
}

func TestIndexAnalysisOverChainOfThreeFixture(t *testing.T) {
	_, prog := ramtest.ChainOfThree()

	a := indexing.NewIndexAnalysis(indexing.Options{Warn: &bytes.Buffer{}})
	require.NoError(t, a.Run(prog))

	set, ok := a.IndexSetFor("chain")
	require.True(t, ok)
	require.Equal(t, []indexing.Order{{0, 1, 2}}, set.Orders())
}
