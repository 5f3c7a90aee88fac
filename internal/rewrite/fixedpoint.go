package rewrite

import "github.com/dschwen/vibex/internal/term"

// DefaultMaxPasses bounds the fixed-point driver's iteration count.
const DefaultMaxPasses = 6

// FixedPoint applies rules to g, interleaved with normalization, until the
// result stabilizes (by node count and root structural equality) or
// DefaultMaxPasses is reached.
func FixedPoint(g *term.Graph, rules []Rule) *term.Graph {
	return FixedPointN(g, rules, DefaultMaxPasses)
}

// FixedPointN is FixedPoint with an explicit pass cap. Convergence within
// the cap is best-effort; hitting the cap is not reported as an error.
func FixedPointN(g *term.Graph, rules []Rule, maxPasses int) *term.Graph {
	cur := term.Normalize(g)
	for i := 0; i < maxPasses; i++ {
		applied := ApplyOnce(cur, rules)
		next := term.Normalize(applied)
		if next.Len() == cur.Len() && term.Equal(next, next.Root(), cur, cur.Root()) {
			return next
		}
		cur = next
	}
	return cur
}
