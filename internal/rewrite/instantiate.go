package rewrite

import (
	"github.com/dschwen/vibex/internal/pattern"
	"github.com/dschwen/vibex/internal/term"
)

// instantiate walks an RHS pattern and constructs fresh nodes in dst,
// resolving placeholders against b by cloning the matched subtree out of
// src. clones memoizes source-id -> dest-id so that sharing present in
// src (or produced by earlier clones in this same instantiation) survives
// into dst instead of being duplicated.
func instantiate(dst *term.Graph, src *term.Graph, p pattern.Pattern, b pattern.Bindings, clones map[term.ID]term.ID) term.ID {
	if p.Kind == pattern.KPlaceholder {
		// A spread placeholder reaching here (rather than being expanded
		// by instantiateChildren) is only possible at the RHS root,
		// which NewRule's validation already rejects; ordinary
		// placeholders clone their single bound id.
		return cloneInto(dst, src, b.B[p.PID], clones)
	}
	switch p.Op {
	case term.Const:
		return dst.AddConst(p.Payload)
	case term.Var:
		return dst.AddVar(p.VarIndex)
	}
	ch := instantiateChildren(dst, src, p.Ch, b, clones)
	switch {
	case p.Op.IsAC():
		return dst.AddVariadic(p.Op, ch)
	case p.Op.Arity() == 1:
		return dst.AddUnary(p.Op, ch[0])
	default:
		return dst.AddBinary(p.Op, ch[0], ch[1])
	}
}

// instantiateChildren instantiates each child pattern, splicing a spread
// placeholder's bound list in place as one destination child per bound
// source id.
func instantiateChildren(dst *term.Graph, src *term.Graph, pats []pattern.Pattern, b pattern.Bindings, clones map[term.ID]term.ID) []term.ID {
	out := make([]term.ID, 0, len(pats))
	for _, c := range pats {
		if c.Kind == pattern.KPlaceholder && c.Spread {
			for _, srcID := range b.M[c.PID] {
				out = append(out, cloneInto(dst, src, srcID, clones))
			}
			continue
		}
		out = append(out, instantiate(dst, src, c, b, clones))
	}
	return out
}

// cloneInto copies the subtree rooted at id from src into dst, memoized
// by source id so repeated references (DAG sharing, or the same
// placeholder binding used twice in an RHS) produce a single destination
// node reused by every reference.
func cloneInto(dst *term.Graph, src *term.Graph, id term.ID, clones map[term.ID]term.ID) term.ID {
	if got, ok := clones[id]; ok {
		return got
	}
	n := src.At(id)
	var out term.ID
	switch n.Op {
	case term.Const:
		out = dst.AddConst(n.Payload)
	case term.Var:
		out = dst.AddVar(n.VarIndex)
	default:
		ch := make([]term.ID, len(n.Ch))
		for i, c := range n.Ch {
			ch[i] = cloneInto(dst, src, c, clones)
		}
		switch {
		case n.Op.IsAC():
			out = dst.AddVariadic(n.Op, ch)
		case n.Op.Arity() == 1:
			out = dst.AddUnary(n.Op, ch[0])
		default:
			out = dst.AddBinary(n.Op, ch[0], ch[1])
		}
	}
	clones[id] = out
	return out
}
