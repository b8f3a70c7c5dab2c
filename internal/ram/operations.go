package ram

import "github.com/lwy-someone/souffle/internal/indexing"

// operation is every node's common shape: something that can be walked
// depth-first and classified by the analysis. Concrete leaf kinds
// additionally implement whichever of indexing.RangeSearch /
// indexing.KeySearch applies to them.
type operation interface {
	indexing.WalkNode
	children() []operation
}

// Scan is a range search over a relation with a subset of its columns bound
// by equality. Columns is the contributed search pattern.
type Scan struct {
	Rel  *Relation
	Mask indexing.SearchMask
	Body operation
}

func (s *Scan) children() []operation {
	if s.Body == nil {
		return nil
	}
	return []operation{s.Body}
}

func (s *Scan) Kind() indexing.NodeKind               { return indexing.KindScan }
func (s *Scan) Relation() indexing.RelationDescriptor { return s.Rel }
func (s *Scan) Columns() indexing.SearchMask          { return s.Mask }

// Aggregate computes a scalar (count, sum, min, max, …) over a relation
// range constrained the same way a Scan is.
type Aggregate struct {
	Rel  *Relation
	Mask indexing.SearchMask
	Body operation
}

func (a *Aggregate) children() []operation {
	if a.Body == nil {
		return nil
	}
	return []operation{a.Body}
}

func (a *Aggregate) Kind() indexing.NodeKind               { return indexing.KindAggregate }
func (a *Aggregate) Relation() indexing.RelationDescriptor { return a.Rel }
func (a *Aggregate) Columns() indexing.SearchMask          { return a.Mask }

// NotExists probes a relation for the absence of a tuple matching Key in
// full (every bound column participates, unlike Scan/Aggregate which may
// bind a strict subset).
type NotExists struct {
	Rel     *Relation
	KeyMask indexing.SearchMask
}

func (n *NotExists) children() []operation { return nil }

func (n *NotExists) Kind() indexing.NodeKind               { return indexing.KindNotExists }
func (n *NotExists) Relation() indexing.RelationDescriptor { return n.Rel }
func (n *NotExists) Key() indexing.SearchMask              { return n.KeyMask }

// Insert writes a derived tuple into a relation. It never issues a search,
// so the walk descends past it without contributing anything.
type Insert struct {
	Rel *Relation
}

func (i *Insert) children() []operation  { return nil }
func (i *Insert) Kind() indexing.NodeKind { return indexing.KindOther }

// Sequence runs its children in order; it is the structural glue most RAM
// programs are built from (loops, conditionals, blocks all reduce to this
// for the purposes of this analysis, since none of them contribute search
// patterns on their own).
type Sequence struct {
	Ops []operation
}

func (s *Sequence) children() []operation  { return s.Ops }
func (s *Sequence) Kind() indexing.NodeKind { return indexing.KindOther }

// Loop repeats Body until a fixpoint; modeled as a single pass-through child
// since the analysis only needs to observe each search once.
type Loop struct {
	Body operation
}

func (l *Loop) children() []operation {
	if l.Body == nil {
		return nil
	}
	return []operation{l.Body}
}
func (l *Loop) Kind() indexing.NodeKind { return indexing.KindOther }

// Op wraps any of the node constructors above so callers building a
// Sequence don't need to know about the unexported operation interface.
type Op = operation
