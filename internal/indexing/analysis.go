package indexing

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Options controls how an IndexAnalysis run behaves. The zero value is the
// normal single-threaded synchronous behavior; every field is an opt-in.
type Options struct {
	// Config is the global configuration lookup StorageClassifier consults.
	// May be nil, in which case the data-structure override never applies.
	Config GlobalConfig

	// ForceNaive overrides the SOUFFLE_USE_NAIVE_INDEX environment read.
	// ForceNaiveSet must be true for ForceNaive to take effect; this lets
	// tests pin the behavior without mutating process environment.
	ForceNaive    bool
	ForceNaiveSet bool

	// Warn receives the one-shot naive-mode diagnostic. Defaults to
	// os.Stderr when nil.
	Warn io.Writer

	// Parallel solves independent relations' IndexSets concurrently after
	// the (always sequential) program walk completes. Each IndexSet is
	// owned exclusively by its relation for the duration of Solve, so this
	// is safe: nothing is shared across relations except the process-wide
	// naive-warning flag, which is itself guarded by an atomic CAS.
	Parallel bool
}

// IndexAnalysis walks an intermediate program, collecting search patterns
// per relation, and reduces each relation's patterns to a minimum set of
// lexicographical column orders.
type IndexAnalysis struct {
	opts Options

	sets  map[string]*IndexSet
	order []string // first-reference order, for deterministic reporting
}

// NewIndexAnalysis creates an analysis ready to Run.
func NewIndexAnalysis(opts Options) *IndexAnalysis {
	return &IndexAnalysis{
		opts: opts,
		sets: make(map[string]*IndexSet),
	}
}

func (a *IndexAnalysis) indexSetFor(rel RelationDescriptor) *IndexSet {
	name := rel.Name()
	if set, ok := a.sets[name]; ok {
		return set
	}
	set := NewIndexSet(rel)
	a.sets[name] = set
	a.order = append(a.order, name)
	return set
}

func (a *IndexAnalysis) naiveForced() bool {
	if a.opts.ForceNaiveSet {
		return a.opts.ForceNaive
	}
	return os.Getenv(NaiveIndexEnvVar) != ""
}

// Run walks program depth-first, dispatching Scan, Aggregate and NotExists
// nodes to the relation-keyed IndexSet, then solves every IndexSet. Run must
// only be called once per IndexAnalysis.
func (a *IndexAnalysis) Run(program ProgramVisitor) error {
	var walkErr error
	program.VisitDepthFirst(func(n WalkNode) {
		if walkErr != nil {
			return
		}
		switch n.Kind() {
		case KindScan, KindAggregate:
			rs, ok := n.(RangeSearch)
			if !ok {
				return
			}
			if err := a.indexSetFor(rs.Relation()).AddSearch(rs.Columns()); err != nil {
				walkErr = fmt.Errorf("index analysis: %w", err)
			}
		case KindNotExists:
			ks, ok := n.(KeySearch)
			if !ok {
				return
			}
			if err := a.indexSetFor(ks.Relation()).AddSearch(ks.Key()); err != nil {
				walkErr = fmt.Errorf("index analysis: %w", err)
			}
		}
	})
	if walkErr != nil {
		return walkErr
	}

	warn := a.opts.Warn
	if warn == nil {
		warn = os.Stderr
	}
	forced := a.naiveForced()

	solveOne := func(name string) error {
		set := a.sets[name]
		reason := Classify(set.Relation(), a.opts.Config, forced)
		if err := set.Solve(reason, warn); err != nil {
			return fmt.Errorf("index analysis: relation %q: %w", name, err)
		}
		return nil
	}

	if !a.opts.Parallel {
		for _, name := range a.order {
			if err := solveOne(name); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, name := range a.order {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := solveOne(name); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// IndexSetFor returns the IndexSet for a relation name, if the walk ever
// referenced it.
func (a *IndexAnalysis) IndexSetFor(name string) (*IndexSet, bool) {
	set, ok := a.sets[name]
	return set, ok
}

// RelationNames returns relation names in first-reference order, the order
// Print and RenderTable use.
func (a *IndexAnalysis) RelationNames() []string {
	return append([]string(nil), a.order...)
}
