package indexing

import "errors"

// Contract violations: programmer errors that indicate a compiler-phase
// ordering bug, not a malformed input program.
var (
	// ErrAlreadySolved is returned by AddSearch when called after Solve, and
	// by Solve when called a second time on the same IndexSet.
	ErrAlreadySolved = errors.New("indexing: index set already solved")

	// ErrMaskOutOfArity is returned when a search mask sets a bit beyond the
	// relation's declared arity.
	ErrMaskOutOfArity = errors.New("indexing: search mask exceeds relation arity")
)

// ErrInvariantViolation wraps an internal invariant failure (matching
// symmetry, order-covers-mask reconstruction). These are bugs in the
// analysis itself, never a consequence of a malformed program, so callers
// should treat them as fatal rather than retry or recover.
var ErrInvariantViolation = errors.New("indexing: internal invariant violation")
