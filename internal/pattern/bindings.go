package pattern

import "github.com/dschwen/vibex/internal/term"

// Bindings holds the two maps a match accumulates: B for single-id
// placeholder bindings, M for spread (multi-id) bindings.
type Bindings struct {
	B map[int]term.ID
	M map[int][]term.ID
}

// NewBindings returns an empty binding set.
func NewBindings() Bindings {
	return Bindings{B: make(map[int]term.ID), M: make(map[int][]term.ID)}
}

// snapshot deep-copies the current bindings for later restore, so the AC
// matcher's backtracking can undo a failed tentative match.
func (b Bindings) snapshot() Bindings {
	snap := NewBindings()
	for k, v := range b.B {
		snap.B[k] = v
	}
	for k, v := range b.M {
		snap.M[k] = append([]term.ID(nil), v...)
	}
	return snap
}

// restoreFrom replaces b's contents in place with snap's, mutating the
// same underlying maps callers already hold a reference to.
func (b Bindings) restoreFrom(snap Bindings) {
	for k := range b.B {
		delete(b.B, k)
	}
	for k, v := range snap.B {
		b.B[k] = v
	}
	for k := range b.M {
		delete(b.M, k)
	}
	for k, v := range snap.M {
		b.M[k] = append([]term.ID(nil), v...)
	}
}
