package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lwy-someone/souffle/internal/indexing"
	"github.com/stretchr/testify/require"
)

func TestStorageKind(t *testing.T) {
	cases := map[string]indexing.StorageKind{
		"":        indexing.BTree,
		"btree":   indexing.BTree,
		"brie":    indexing.Brie,
		"rbtset":  indexing.RbtSet,
		"eqrel":   indexing.EqRel,
		"hashset": indexing.Hashset,
	}
	for in, want := range cases {
		got, err := storageKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := storageKind("bogus")
	require.Error(t, err)
}

func TestDecodeAndBuildProgram(t *testing.T) {
	raw := []byte(`{
		"relations": [
			{"name": "edge", "arity": 2, "storage": "btree", "args": ["x", "y"]},
			{"name": "reaches", "arity": 2, "storage": "hashset"}
		],
		"program": [
			{"op": "scan", "relation": "edge", "columns": [0]},
			{"op": "scan", "relation": "edge", "columns": [0, 1]},
			{"op": "notexists", "relation": "reaches", "key": [0, 1]},
			{"op": "insert", "relation": "reaches"}
		],
		"config": {"data-structure": "btree"}
	}`)

	doc, err := decodeProgram(raw)
	require.NoError(t, err)
	require.Len(t, doc.Relations, 2)
	require.Len(t, doc.Program, 4)

	prog, err := doc.build()
	require.NoError(t, err)
	require.NotNil(t, prog.Root)

	require.Equal(t, "btree", doc.config().Get("data-structure"))
}

func TestBuildUnknownRelationFails(t *testing.T) {
	doc, err := decodeProgram([]byte(`{
		"relations": [],
		"program": [{"op": "scan", "relation": "missing", "columns": [0]}]
	}`))
	require.NoError(t, err)
	_, err = doc.build()
	require.Error(t, err)
}

func TestBuildUnknownOpFails(t *testing.T) {
	doc, err := decodeProgram([]byte(`{
		"relations": [{"name": "r", "arity": 1, "storage": "btree"}],
		"program": [{"op": "bogus", "relation": "r"}]
	}`))
	require.NoError(t, err)
	_, err = doc.build()
	require.Error(t, err)
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.json")
	content := `{
		"relations": [{"name": "edge", "arity": 2, "storage": "btree", "args": ["x", "y"]}],
		"program": [
			{"op": "scan", "relation": "edge", "columns": [0]},
			{"op": "scan", "relation": "edge", "columns": [0, 1]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var buf bytes.Buffer
	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := run(path, false, false)

	require.NoError(t, w.Close())
	os.Stdout = origStdout
	_, _ = buf.ReadFrom(r)

	require.NoError(t, runErr)
	require.Contains(t, buf.String(), "Relation edge")
	require.Contains(t, buf.String(), "Auto-Index-Generation Report")
}
