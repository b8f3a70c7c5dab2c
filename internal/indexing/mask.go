package indexing

import "math/bits"

// SearchMask is a column-subset value: bit i set means column i is
// constrained by equality in some observed search. It doubles as the node
// label in the bipartite matching graph built by IndexSet.
type SearchMask uint64

// EmptyMask is the search that constrains no columns. It is a legal value
// in IndexSet.searches. It never appears on the B side of a matching edge,
// since no mask is a strict subset of zero, but on the A side it is a strict
// subset of every non-empty mask.
const EmptyMask SearchMask = 0

// MaxColumns is the largest arity a SearchMask can represent.
const MaxColumns = 64

// NewSearchMask builds a mask with exactly the given column indices set.
func NewSearchMask(columns ...int) SearchMask {
	var m SearchMask
	for _, c := range columns {
		m |= 1 << uint(c)
	}
	return m
}

// Cardinality returns the number of columns constrained by m (its popcount).
func (m SearchMask) Cardinality() int {
	return bits.OnesCount64(uint64(m))
}

// FitsArity reports whether m only sets bits within [0, arity).
func (m SearchMask) FitsArity(arity int) bool {
	if arity >= MaxColumns {
		return true
	}
	return m>>uint(arity) == 0
}

// IsStrictSubset reports whether a is a strict subset of b: every bit set in
// a is also set in b, and a != b.
func (a SearchMask) IsStrictSubset(b SearchMask) bool {
	return a != b && (a&b) == a
}

// Diff returns the bits present in b but not in a. Only meaningful (and only
// ever called) when a is a subset of b.
func (a SearchMask) Diff(b SearchMask) SearchMask {
	return b &^ a
}

// Bits returns the column indices set in m, ascending.
func (m SearchMask) Bits() []int {
	cols := make([]int, 0, m.Cardinality())
	for rem := uint64(m); rem != 0; {
		i := bits.TrailingZeros64(rem)
		cols = append(cols, i)
		rem &= rem - 1
	}
	return cols
}

// Has reports whether column i is set in m.
func (m SearchMask) Has(i int) bool {
	return m&(1<<uint(i)) != 0
}
