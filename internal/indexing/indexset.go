package indexing

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// NaiveReason records why an IndexSet should skip the optimal chain-cover
// path and emit one trivial index per search pattern instead.
type NaiveReason uint8

const (
	// NotNaive runs the full minimum-chain-cover reduction.
	NotNaive NaiveReason = iota
	// NaiveByStorage is implied by the relation's declared storage kind (or
	// the global config's data-structure override) being hash-based. No
	// warning is printed for this reason: it is an ordinary consequence of
	// the relation's declared storage, not a diagnostic escape hatch.
	NaiveByStorage
	// NaiveByEnv is forced by the SOUFFLE_USE_NAIVE_INDEX environment
	// variable regardless of storage kind, and prints the one-shot warning.
	NaiveByEnv
)

// IndexSet accumulates the observed search patterns for one relation and
// reduces them to a minimum set of lexicographical column orders. It is
// created lazily on first reference to a relation, populated monotonically
// via AddSearch, and frozen by Solve: AddSearch after Solve, or a second
// call to Solve, is a programming error.
type IndexSet struct {
	relation RelationDescriptor

	searches  []SearchMask
	searchSet map[SearchMask]bool

	orders       []Order
	chainToOrder []Chain

	solved bool
}

// NewIndexSet creates an empty, unsolved index set for rel.
func NewIndexSet(rel RelationDescriptor) *IndexSet {
	return &IndexSet{
		relation:  rel,
		searchSet: make(map[SearchMask]bool),
	}
}

// Relation returns the relation this index set belongs to.
func (s *IndexSet) Relation() RelationDescriptor { return s.relation }

// AddSearch records an observed search pattern. Duplicate masks are a no-op.
// Calling AddSearch after Solve, or with a mask that sets a bit beyond the
// relation's arity, is an error.
func (s *IndexSet) AddSearch(mask SearchMask) error {
	if s.solved {
		return fmt.Errorf("%w: relation %q", ErrAlreadySolved, s.relation.Name())
	}
	if !mask.FitsArity(s.relation.Arity()) {
		return fmt.Errorf("%w: relation %q arity %d, mask %#x", ErrMaskOutOfArity,
			s.relation.Name(), s.relation.Arity(), uint64(mask))
	}
	if s.searchSet[mask] {
		return nil
	}
	s.searchSet[mask] = true
	s.searches = append(s.searches, mask)
	return nil
}

// Searches returns the observed search patterns in ascending mask order.
// Ascending order is not just cosmetic: it is the stable iteration order
// solve relies on for deterministic output across repeated runs.
func (s *IndexSet) Searches() []SearchMask {
	out := append([]SearchMask(nil), s.searches...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Orders returns the chosen lexicographical orders after Solve.
func (s *IndexSet) Orders() []Order { return s.orders }

// Chains returns the chain decomposition that produced Orders, index for
// index (Chains()[i] produced Orders()[i]).
func (s *IndexSet) Chains() []Chain { return s.chainToOrder }

// Solve populates Orders and Chains. Calling it a second time is an error.
// warn is where the one-shot naive-mode diagnostic is written; nil means
// os.Stderr, and io.Discard suppresses it.
func (s *IndexSet) Solve(reason NaiveReason, warn io.Writer) error {
	if s.solved {
		return fmt.Errorf("%w: relation %q", ErrAlreadySolved, s.relation.Name())
	}
	s.solved = true

	if len(s.searches) == 0 {
		return nil
	}

	masks := s.Searches()

	if reason != NotNaive {
		if reason == NaiveByEnv {
			if warn == nil {
				warn = os.Stderr
			}
			warnNaiveOnce(warn)
		}
		for _, mask := range masks {
			order := Order(mask.Bits())
			s.orders = append(s.orders, order)
			s.chainToOrder = append(s.chainToOrder, Chain{mask})
		}
		return nil
	}

	matching := NewMaxMatching()
	for _, u := range masks {
		for _, v := range masks {
			if u.IsStrictSubset(v) {
				matching.AddEdge(u, v)
			}
		}
	}
	matched := matching.Solve()
	for u, v := range matched.pairs {
		if back, ok := matched.pairs[v]; !ok || back != u {
			return fmt.Errorf("%w: relation %q matching is not symmetric at mask %#x",
				ErrInvariantViolation, s.relation.Name(), uint64(u.Mask))
		}
	}

	chains := extractChains(masks, matched)
	for _, chain := range chains {
		order := chain.toOrder()
		s.chainToOrder = append(s.chainToOrder, chain)
		s.orders = append(s.orders, order)
	}

	return s.verify()
}

// verify re-checks the order-covers-mask invariant for every observed
// pattern against the order chosen for its chain. A failure here is a bug
// in the analysis, never a consequence of the input program.
func (s *IndexSet) verify() error {
	orderFor := make(map[SearchMask]Order, len(s.chainToOrder))
	for i, chain := range s.chainToOrder {
		for _, mask := range chain {
			orderFor[mask] = s.orders[i]
		}
	}
	for _, mask := range s.searches {
		order, ok := orderFor[mask]
		if !ok || !order.Covers(mask) {
			return fmt.Errorf("%w: relation %q pattern %#x not covered by its chain's order",
				ErrInvariantViolation, s.relation.Name(), uint64(mask))
		}
	}
	return nil
}
