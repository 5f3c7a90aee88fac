package term

import (
	"strconv"
	"strings"
)

// Canonical renders the subtree rooted at id into the module's canonical
// string form, memoized per graph: leaves as V(i) and C(v) (integers
// without decimals, otherwise the shortest round-tripping decimal),
// interior nodes as Kind(child,child,...) in their post-normalization
// child order. Two normalized graphs built from the same source term
// produce identical canonical strings; the CSE-by-string emitter driver
// uses this as its memoization key.
func (g *Graph) Canonical(id ID) string {
	if g.strCache == nil {
		g.strCache = make(map[ID]string)
	}
	if s, ok := g.strCache[id]; ok {
		return s
	}
	n := g.At(id)
	var s string
	switch n.Op {
	case Const:
		s = "C(" + formatConst(n.Payload) + ")"
	case Var:
		s = "V(" + strconv.Itoa(n.VarIndex) + ")"
	default:
		parts := make([]string, len(n.Ch))
		for i, c := range n.Ch {
			parts[i] = g.Canonical(c)
		}
		s = n.Op.String() + "(" + strings.Join(parts, ",") + ")"
	}
	g.strCache[id] = s
	return s
}

func formatConst(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
