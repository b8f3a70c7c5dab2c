// Package ram is a minimal intermediate-program representation: just enough
// of a relational-algebra program (relations, scans, aggregates, existence
// checks) to drive and test the index-selection analysis without a full
// compiler front end attached. It implements the adaptor interfaces
// internal/indexing expects of a real front end's AST.
package ram

import (
	"fmt"

	"github.com/lwy-someone/souffle/internal/indexing"
)

// Relation is a concrete indexing.RelationDescriptor: a named relation with
// a fixed arity, a declared storage kind, and optional diagnostic argument
// names.
type Relation struct {
	name     string
	arity    int
	storage  indexing.StorageKind
	argNames []string
}

// NewRelation declares a relation with the given name, arity, and storage
// kind. argNames is optional and may be shorter than arity or omitted
// entirely; missing names fall back to positional placeholders.
func NewRelation(name string, arity int, storage indexing.StorageKind, argNames ...string) *Relation {
	return &Relation{name: name, arity: arity, storage: storage, argNames: argNames}
}

func (r *Relation) Name() string                      { return r.name }
func (r *Relation) Arity() int                        { return r.arity }
func (r *Relation) StorageKind() indexing.StorageKind { return r.storage }

// ArgName returns the diagnostic name of column i, falling back to a
// positional placeholder when the relation carries no declared argument
// name for it.
func (r *Relation) ArgName(i int) string {
	if i >= 0 && i < len(r.argNames) && r.argNames[i] != "" {
		return r.argNames[i]
	}
	return fmt.Sprintf("c%d", i)
}
