package pattern

import "github.com/dschwen/vibex/internal/term"

// Kind distinguishes a concrete node pattern from a placeholder leaf.
type Kind uint8

const (
	KNode Kind = iota
	KPlaceholder
)

// Pattern is a parallel tree to term.Node: a node pattern mirrors an
// operator kind plus child patterns (and, for Const/Var, a payload); a
// placeholder binds a single node id (or, when Spread is set, an ordered
// list of ids — meaningful only as a direct child of an AC node pattern).
type Pattern struct {
	Kind Kind

	// KNode fields.
	Op       term.Op
	Payload  float64
	VarIndex int
	Ch       []Pattern

	// KPlaceholder fields.
	PID    int
	Spread bool
}

// Node builds a concrete node pattern for a non-leaf operator kind.
func Node(op term.Op, ch ...Pattern) Pattern {
	return Pattern{Kind: KNode, Op: op, Ch: ch}
}

// ConstPattern matches only a Const leaf with exactly this payload.
func ConstPattern(v float64) Pattern {
	return Pattern{Kind: KNode, Op: term.Const, Payload: v}
}

// VarPattern matches only a Var leaf with exactly this index.
func VarPattern(i int) Pattern {
	return Pattern{Kind: KNode, Op: term.Var, VarIndex: i}
}

// P returns a non-spread placeholder with pattern-id pid: it binds
// exactly one node id.
func P(pid int) Pattern {
	return Pattern{Kind: KPlaceholder, PID: pid}
}

// S returns a spread placeholder with pattern-id pid: as a direct child
// of an AC node pattern it binds an ordered list of node ids (the
// leftover candidates after the fixed pattern children are matched).
func S(pid int) Pattern {
	return Pattern{Kind: KPlaceholder, PID: pid, Spread: true}
}

// Operator sugar, one-to-one with term graph construction.
func Neg(p Pattern) Pattern     { return Node(term.Neg, p) }
func Sin(p Pattern) Pattern     { return Node(term.Sin, p) }
func Cos(p Pattern) Pattern     { return Node(term.Cos, p) }
func Exp(p Pattern) Pattern     { return Node(term.Exp, p) }
func Log(p Pattern) Pattern     { return Node(term.Log, p) }
func Sqrt(p Pattern) Pattern    { return Node(term.Sqrt, p) }
func Tanh(p Pattern) Pattern    { return Node(term.Tanh, p) }
func Sub(a, b Pattern) Pattern  { return Node(term.Sub, a, b) }
func Div(a, b Pattern) Pattern  { return Node(term.Div, a, b) }
func Pow(a, b Pattern) Pattern  { return Node(term.Pow, a, b) }
func Add(ps ...Pattern) Pattern { return Node(term.Add, ps...) }
func Mul(ps ...Pattern) Pattern { return Node(term.Mul, ps...) }

// specificity scores a pattern for the AC matcher's try-most-specific-first
// ordering: a concrete node pattern scores 1 plus the specificity of its
// children; a placeholder scores 0.
func specificity(p Pattern) int {
	if p.Kind == KPlaceholder {
		return 0
	}
	s := 1
	for _, c := range p.Ch {
		s += specificity(c)
	}
	return s
}
