package indexing

import "sort"

// Order is a lexicographical column order: a permutation prefix over a
// relation's columns, all indices distinct.
type Order []int

// Covers reports whether o covers mask m: the set of o's first
// popcount(m) entries equals the set bits of m.
func (o Order) Covers(m SearchMask) bool {
	card := m.Cardinality()
	if card > len(o) {
		return false
	}
	var reconstructed SearchMask
	for _, col := range o[:card] {
		reconstructed |= 1 << uint(col)
	}
	return reconstructed == m
}

// Chain is a strictly increasing (by subset) sequence of masks,
// m1 subset m2 subset ... subset mk, ascending from smallest to largest.
type Chain []SearchMask

// toOrder builds the lexicographical order for a chain: the set bits of the
// first mask, then the newly-introduced bits of each following mask, both
// in ascending column order.
func (c Chain) toOrder() Order {
	if len(c) == 0 {
		return nil
	}
	order := make(Order, 0, c[len(c)-1].Cardinality())
	order = append(order, c[0].Bits()...)
	for i := 1; i < len(c); i++ {
		order = append(order, c[i-1].Diff(c[i]).Bits()...)
	}
	return order
}

// extractChains partitions masks into chains using the matching computed by
// MaxMatching over the strict-subset graph. Every mask is a chain tail
// (unmatched as an A-node, i.e. chosen as nobody's immediate predecessor) or
// an interior/head element reachable by walking predecessors down from some
// tail. Walking every tail to its head and back covers every mask exactly
// once, including the case where the matching is empty (every mask is its
// own tail and its own chain of length one) — this is what keeps the
// anti-chain case from needing a distinct branch that could special-case
// away all but the first pattern.
func extractChains(masks []SearchMask, m Matching) []Chain {
	isTail := func(mask SearchMask) bool {
		_, ok := m.Mate(Node{Side: SideA, Mask: mask})
		return !ok
	}

	var chains []Chain
	for _, mask := range masks {
		if !isTail(mask) {
			continue
		}
		descending := []SearchMask{mask}
		cur := mask
		for {
			pred, ok := m.Mate(Node{Side: SideB, Mask: cur})
			if !ok {
				break
			}
			cur = pred.Mask
			descending = append(descending, cur)
		}
		chain := make(Chain, len(descending))
		for i, v := range descending {
			chain[len(descending)-1-i] = v
		}
		chains = append(chains, chain)
	}

	sort.Slice(chains, func(i, j int) bool { return chains[i][0] < chains[j][0] })
	return chains
}
