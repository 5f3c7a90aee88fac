package rewrite

import (
	"github.com/dschwen/vibex/internal/pattern"
	"github.com/dschwen/vibex/internal/term"
)

// isConstValue reports whether the binding for pid is a Const node with
// the given payload.
func isConstValue(g *term.Graph, b pattern.Bindings, pid int, v float64) bool {
	id, ok := b.B[pid]
	if !ok {
		return false
	}
	n := g.At(id)
	return n.Op == term.Const && n.Payload == v
}

// isConst reports whether the binding for pid is any Const node.
func isConst(g *term.Graph, b pattern.Bindings, pid int) bool {
	id, ok := b.B[pid]
	if !ok {
		return false
	}
	return g.At(id).Op == term.Const
}

// DefaultRules returns the engine's built-in rule table, sorted by
// descending priority by ApplyOnce at application time; each rule is an
// algebraic identity in exact arithmetic.
func DefaultRules() []Rule {
	return []Rule{
		MustNewRule("pythagorean", 10,
			pattern.Add(
				pattern.Mul(pattern.Sin(pattern.P(1)), pattern.Sin(pattern.P(1))),
				pattern.Mul(pattern.Cos(pattern.P(1)), pattern.Cos(pattern.P(1))),
				pattern.S(9),
			),
			pattern.Add(pattern.ConstPattern(1), pattern.S(9)),
			nil,
		),
		MustNewRule("log_exp", 5,
			pattern.Log(pattern.Exp(pattern.P(1))),
			pattern.P(1),
			nil,
		),
		MustNewRule("exp_log", 5,
			pattern.Exp(pattern.Log(pattern.P(1))),
			pattern.P(1),
			nil,
		),
		MustNewRule("square+", 6,
			pattern.Add(
				pattern.Mul(pattern.P(1), pattern.P(1)),
				pattern.Mul(pattern.P(0), pattern.P(1), pattern.P(2)),
				pattern.Mul(pattern.P(2), pattern.P(2)),
				pattern.S(9),
			),
			pattern.Add(pattern.Pow(pattern.Add(pattern.P(1), pattern.P(2)), pattern.ConstPattern(2)), pattern.S(9)),
			func(g *term.Graph, b pattern.Bindings) bool { return isConstValue(g, b, 0, 2) },
		),
		MustNewRule("square-", 6,
			pattern.Add(
				pattern.Mul(pattern.P(1), pattern.P(1)),
				pattern.Mul(pattern.P(0), pattern.P(1), pattern.P(2)),
				pattern.Mul(pattern.P(2), pattern.P(2)),
				pattern.S(9),
			),
			pattern.Add(pattern.Pow(pattern.Sub(pattern.P(1), pattern.P(2)), pattern.ConstPattern(2)), pattern.S(9)),
			func(g *term.Graph, b pattern.Bindings) bool { return isConstValue(g, b, 0, -2) },
		),
		MustNewRule("factor_common_left", 4,
			pattern.Add(
				pattern.Mul(pattern.P(1), pattern.P(2)),
				pattern.Mul(pattern.P(1), pattern.P(3)),
			),
			pattern.Mul(pattern.P(1), pattern.Add(pattern.P(2), pattern.P(3))),
			nil,
		),
		MustNewRule("like_terms", 3,
			pattern.Add(
				pattern.Mul(pattern.P(2), pattern.P(1)),
				pattern.Mul(pattern.P(3), pattern.P(1)),
				pattern.S(9),
			),
			pattern.Add(pattern.Mul(pattern.Add(pattern.P(2), pattern.P(3)), pattern.P(1)), pattern.S(9)),
			func(g *term.Graph, b pattern.Bindings) bool {
				return isConst(g, b, 2) && isConst(g, b, 3)
			},
		),
		MustNewRule("sin_odd", 2,
			pattern.Sin(pattern.Neg(pattern.P(1))),
			pattern.Neg(pattern.Sin(pattern.P(1))),
			nil,
		),
		MustNewRule("cos_even", 2,
			pattern.Cos(pattern.Neg(pattern.P(1))),
			pattern.Cos(pattern.P(1)),
			nil,
		),
		MustNewRule("log_one", 2,
			pattern.Log(pattern.ConstPattern(1)),
			pattern.ConstPattern(0),
			nil,
		),
		MustNewRule("exp_zero", 2,
			pattern.Exp(pattern.ConstPattern(0)),
			pattern.ConstPattern(1),
			nil,
		),
	}
}
