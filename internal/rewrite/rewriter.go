package rewrite

import (
	"sort"

	"github.com/dschwen/vibex/internal/pattern"
	"github.com/dschwen/vibex/internal/term"
)

// ApplyOnce runs a single post-order rule-application pass over g,
// starting from its root, and returns a freshly built graph. Rules are
// tried in descending-priority (stable) order against the pre-rewrite
// shape of each node; on the first match (and passing guard, if any) the
// RHS is instantiated in place of that node. Otherwise the node is
// rebuilt from its recursively rewritten children.
func ApplyOnce(g *term.Graph, rules []Rule) *term.Graph {
	sorted := append([]Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority > sorted[j].Priority })

	dst := term.New()
	rw := &rewriteState{
		src:         g,
		dst:         dst,
		rules:       sorted,
		rewriteMemo: make(map[term.ID]term.ID),
		cloneMemo:   make(map[term.ID]term.ID),
	}
	root := rw.rewriteNode(g.Root())
	dst.SetRoot(root)
	return dst
}

type rewriteState struct {
	src         *term.Graph
	dst         *term.Graph
	rules       []Rule
	rewriteMemo map[term.ID]term.ID
	cloneMemo   map[term.ID]term.ID
}

func (rw *rewriteState) rewriteNode(id term.ID) term.ID {
	if got, ok := rw.rewriteMemo[id]; ok {
		return got
	}

	n := rw.src.At(id)
	var rewrittenCh []term.ID
	if len(n.Ch) > 0 {
		rewrittenCh = make([]term.ID, len(n.Ch))
		for i, c := range n.Ch {
			rewrittenCh[i] = rw.rewriteNode(c)
		}
	}

	out := rw.tryRules(id)
	if out < 0 {
		out = rw.rebuild(n, rewrittenCh)
	}
	rw.rewriteMemo[id] = out
	return out
}

// tryRules matches each rule against the pre-rewrite shape of id (in the
// source graph) and, on the first success, returns the instantiated RHS.
// It returns -1 if no rule fires.
func (rw *rewriteState) tryRules(id term.ID) term.ID {
	for _, r := range rw.rules {
		b := pattern.NewBindings()
		if !pattern.Match(rw.src, id, r.LHS, b) {
			continue
		}
		if r.Guard != nil && !r.Guard(rw.src, b) {
			continue
		}
		return instantiate(rw.dst, rw.src, r.RHS, b, rw.cloneMemo)
	}
	return -1
}

func (rw *rewriteState) rebuild(n term.Node, ch []term.ID) term.ID {
	switch n.Op {
	case term.Const:
		return rw.dst.AddConst(n.Payload)
	case term.Var:
		return rw.dst.AddVar(n.VarIndex)
	}
	switch {
	case n.Op.IsAC():
		return rw.dst.AddVariadic(n.Op, ch)
	case n.Op.Arity() == 1:
		return rw.dst.AddUnary(n.Op, ch[0])
	default:
		return rw.dst.AddBinary(n.Op, ch[0], ch[1])
	}
}
