// Command indexgen runs the automatic index-selection analysis over a
// small JSON description of an intermediate program and prints the
// resulting diagnostic report.
//
// It exists purely as a standalone driver for one compiler stage: a real
// front end would invoke the analysis package directly from within the
// compiler pipeline instead of shelling out here.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lwy-someone/souffle/internal/indexing"
	"github.com/lwy-someone/souffle/internal/ram"
)

func main() {
	var (
		programPath string
		table       bool
		parallel    bool
		help        bool
	)

	flag.StringVar(&programPath, "program", "", "path to a JSON program description")
	flag.BoolVar(&table, "table", false, "also render a markdown table alongside the plain-text report")
	flag.BoolVar(&parallel, "parallel", false, "solve independent relations' index sets concurrently")
	flag.BoolVar(&help, "h", false, "show help")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -program program.json [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Runs automatic index selection over a JSON-described intermediate program.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if help || programPath == "" {
		flag.Usage()
		if help {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(programPath, table, parallel); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func run(programPath string, table, parallel bool) error {
	raw, err := os.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}

	doc, err := decodeProgram(raw)
	if err != nil {
		return fmt.Errorf("decoding program: %w", err)
	}

	prog, err := doc.build()
	if err != nil {
		return fmt.Errorf("building program: %w", err)
	}

	analysis := indexing.NewIndexAnalysis(indexing.Options{
		Config:   doc.config(),
		Parallel: parallel,
	})
	if err := analysis.Run(prog); err != nil {
		return fmt.Errorf("running analysis: %w", err)
	}

	indexing.Print(os.Stdout, analysis)
	if table {
		fmt.Println()
		indexing.RenderTable(os.Stdout, analysis)
	}
	return nil
}

// --- JSON program description -------------------------------------------------

type relationDoc struct {
	Name    string   `json:"name"`
	Arity   int      `json:"arity"`
	Storage string   `json:"storage"`
	Args    []string `json:"args,omitempty"`
}

type opDoc struct {
	Op       string `json:"op"`
	Relation string `json:"relation"`
	Columns  []int  `json:"columns,omitempty"`
	Key      []int  `json:"key,omitempty"`
}

type programDoc struct {
	Relations []relationDoc     `json:"relations"`
	Program   []opDoc           `json:"program"`
	Config    map[string]string `json:"config,omitempty"`
}

func decodeProgram(raw []byte) (*programDoc, error) {
	var doc programDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *programDoc) config() ram.Config {
	return ram.Config(d.Config)
}

func storageKind(s string) (indexing.StorageKind, error) {
	switch s {
	case "", "btree":
		return indexing.BTree, nil
	case "brie":
		return indexing.Brie, nil
	case "rbtset":
		return indexing.RbtSet, nil
	case "eqrel":
		return indexing.EqRel, nil
	case "hashset":
		return indexing.Hashset, nil
	default:
		return 0, fmt.Errorf("unknown storage kind %q", s)
	}
}

func (d *programDoc) build() (*ram.Program, error) {
	relations := make(map[string]*ram.Relation, len(d.Relations))
	for _, rd := range d.Relations {
		kind, err := storageKind(rd.Storage)
		if err != nil {
			return nil, fmt.Errorf("relation %q: %w", rd.Name, err)
		}
		relations[rd.Name] = ram.NewRelation(rd.Name, rd.Arity, kind, rd.Args...)
	}

	ops := make([]ram.Op, 0, len(d.Program))
	for i, od := range d.Program {
		rel, ok := relations[od.Relation]
		if !ok {
			return nil, fmt.Errorf("program[%d]: unknown relation %q", i, od.Relation)
		}
		switch od.Op {
		case "scan":
			ops = append(ops, &ram.Scan{Rel: rel, Mask: indexing.NewSearchMask(od.Columns...)})
		case "aggregate":
			ops = append(ops, &ram.Aggregate{Rel: rel, Mask: indexing.NewSearchMask(od.Columns...)})
		case "notexists":
			ops = append(ops, &ram.NotExists{Rel: rel, KeyMask: indexing.NewSearchMask(od.Key...)})
		case "insert":
			ops = append(ops, &ram.Insert{Rel: rel})
		default:
			return nil, fmt.Errorf("program[%d]: unknown op %q", i, od.Op)
		}
	}

	return ram.NewProgram(&ram.Sequence{Ops: ops}), nil
}
