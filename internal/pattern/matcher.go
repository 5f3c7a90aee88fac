package pattern

import (
	"sort"

	"github.com/dschwen/vibex/internal/term"
)

// Match attempts to match the subtree rooted at id against p, recording
// bindings into b. It mutates b even on failure for intermediate state;
// callers that need a clean slate on failure should pass a fresh
// Bindings and discard it.
func Match(g *term.Graph, id term.ID, p Pattern, b Bindings) bool {
	return matchNode(g, id, p, b)
}

func matchNode(g *term.Graph, id term.ID, p Pattern, b Bindings) bool {
	if p.Kind == KPlaceholder {
		return matchPlaceholder(g, id, p, b)
	}
	n := g.At(id)
	if n.Op != p.Op {
		return false
	}
	switch n.Op {
	case term.Const:
		return n.Payload == p.Payload
	case term.Var:
		return n.VarIndex == p.VarIndex
	}
	if p.Op.IsAC() {
		return matchAC(g, n.Ch, p.Ch, b)
	}
	if len(n.Ch) != len(p.Ch) {
		return false
	}
	for i := range p.Ch {
		if !matchNode(g, n.Ch[i], p.Ch[i], b) {
			return false
		}
	}
	return true
}

// matchPlaceholder handles both single-id and spread placeholders. A
// spread placeholder appearing outside an AC context is treated as a
// single binding stored as a one-element list in M.
func matchPlaceholder(g *term.Graph, id term.ID, p Pattern, b Bindings) bool {
	if p.Spread {
		if existing, ok := b.M[p.PID]; ok {
			return len(existing) == 1 && term.Equal(g, existing[0], g, id)
		}
		b.M[p.PID] = []term.ID{id}
		return true
	}
	if existing, ok := b.B[p.PID]; ok {
		return term.Equal(g, existing, g, id)
	}
	b.B[p.PID] = id
	return true
}

// matchAC runs the multiset match for an AC (Add/Mul) node: fixed
// (non-spread) pattern children are tried in decreasing specificity
// order against the candidate children with full backtracking on both
// the child-selection choice and the bindings state; at most one spread
// placeholder captures the leftover in arena order.
func matchAC(g *term.Graph, nodeCh []term.ID, patCh []Pattern, b Bindings) bool {
	var spread *Pattern
	fixed := make([]Pattern, 0, len(patCh))
	for i := range patCh {
		pc := patCh[i]
		if pc.Kind == KPlaceholder && pc.Spread {
			if spread != nil {
				return false // at most one spread permitted among p.ch
			}
			sp := pc
			spread = &sp
			continue
		}
		fixed = append(fixed, pc)
	}
	if spread == nil && len(fixed) != len(nodeCh) {
		return false
	}

	sort.SliceStable(fixed, func(i, j int) bool {
		return specificity(fixed[i]) > specificity(fixed[j])
	})

	remaining := append([]term.ID(nil), nodeCh...)
	ok, leftover := backtrackMatch(g, fixed, 0, remaining, b)
	if !ok {
		return false
	}
	if spread != nil {
		return bindSpread(g, *spread, leftover, b)
	}
	return len(leftover) == 0
}

// backtrackMatch is a DFS over candidate assignment for fixed[i:], with
// full snapshot/restore of bindings on every failed branch.
func backtrackMatch(g *term.Graph, fixed []Pattern, i int, remaining []term.ID, b Bindings) (bool, []term.ID) {
	if i == len(fixed) {
		return true, remaining
	}
	for ci := 0; ci < len(remaining); ci++ {
		cand := remaining[ci]
		snap := b.snapshot()
		if matchNode(g, cand, fixed[i], b) {
			next := make([]term.ID, 0, len(remaining)-1)
			next = append(next, remaining[:ci]...)
			next = append(next, remaining[ci+1:]...)
			if ok, final := backtrackMatch(g, fixed, i+1, next, b); ok {
				return true, final
			}
		}
		b.restoreFrom(snap)
	}
	return false, remaining
}

// bindSpread binds (or checks, if already bound by a prior occurrence of
// the same pattern-id) the leftover candidate ids to a spread pattern,
// preserving the arena order of leftover.
func bindSpread(g *term.Graph, sp Pattern, leftover []term.ID, b Bindings) bool {
	if existing, ok := b.M[sp.PID]; ok {
		if len(existing) != len(leftover) {
			return false
		}
		for i := range existing {
			if !term.Equal(g, existing[i], g, leftover[i]) {
				return false
			}
		}
		return true
	}
	b.M[sp.PID] = append([]term.ID(nil), leftover...)
	return true
}
