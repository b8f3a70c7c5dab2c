package indexing

import "fmt"

// StorageKind is the declared backing data structure for a relation, as the
// front end would have chosen it before the analysis runs.
type StorageKind uint8

const (
	BTree StorageKind = iota
	Brie
	RbtSet
	EqRel
	Hashset
)

func (k StorageKind) String() string {
	switch k {
	case BTree:
		return "btree"
	case Brie:
		return "brie"
	case RbtSet:
		return "rbtset"
	case EqRel:
		return "eqrel"
	case Hashset:
		return "hashset"
	default:
		return fmt.Sprintf("storagekind(%d)", uint8(k))
	}
}

// RelationDescriptor is the adaptor the analysis uses to learn about a
// relation without depending on any particular front end's AST types.
type RelationDescriptor interface {
	Name() string
	Arity() int
	ArgName(i int) string
	StorageKind() StorageKind
}

// GlobalConfig is the opaque key->string configuration lookup the
// StorageClassifier consults. This package never defines what populates
// it, only how it is read.
type GlobalConfig interface {
	Get(key string) string
}

// NodeKind discriminates the operations the walk dispatches on. Every other
// operation in a real program (loops, projections, inserts, conditionals)
// is simply not one of these and is ignored.
type NodeKind int

const (
	KindOther NodeKind = iota
	KindScan
	KindAggregate
	KindNotExists
)

// WalkNode is the minimal shape a program-visitor callback hands the
// analysis for every node it passes over.
type WalkNode interface {
	Kind() NodeKind
}

// RangeSearch is implemented by Scan and Aggregate nodes: both contribute a
// range-query column mask against a relation.
type RangeSearch interface {
	WalkNode
	Relation() RelationDescriptor
	Columns() SearchMask
}

// KeySearch is implemented by existence/negation-probe nodes: they contribute
// a full-key mask against a relation.
type KeySearch interface {
	WalkNode
	Relation() RelationDescriptor
	Key() SearchMask
}

// ProgramVisitor is the depth-first program walker the analysis drives. A
// real front end's AST implements this over its own node types; callers
// hand each node to visit in execution order, including nodes that are
// neither RangeSearch nor KeySearch.
type ProgramVisitor interface {
	VisitDepthFirst(visit func(WalkNode))
}
