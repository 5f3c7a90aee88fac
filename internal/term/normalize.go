package term

import "sort"

// Normalize produces a new graph, semantically equal to g, satisfying the
// canonical-form invariants: Add/Mul flattened, constant-folded, sorted,
// and free of identities/annihilators; Sub erased into Add-of-Neg; Div
// trivialities folded; Neg-of-Neg collapsed. Normalize is idempotent:
// Normalize(Normalize(g)) is root-Equal to Normalize(g).
func Normalize(g *Graph) *Graph {
	dst := New()
	memo := make(map[ID]ID, g.Len())
	root := normalizeNode(g, g.Root(), dst, memo)
	dst.SetRoot(root)
	return dst
}

func normalizeNode(src *Graph, id ID, dst *Graph, memo map[ID]ID) ID {
	if v, ok := memo[id]; ok {
		return v
	}
	n := src.At(id)
	var result ID
	switch n.Op {
	case Const:
		result = dst.AddConst(n.Payload)
	case Var:
		result = dst.AddVar(n.VarIndex)
	case Neg:
		a := normalizeNode(src, n.Ch[0], dst, memo)
		result = normalizeNeg(dst, a)
	case Sub:
		a := normalizeNode(src, n.Ch[0], dst, memo)
		b := normalizeNode(src, n.Ch[1], dst, memo)
		result = buildAdd(dst, []ID{a, normalizeNeg(dst, b)})
	case Div:
		a := normalizeNode(src, n.Ch[0], dst, memo)
		b := normalizeNode(src, n.Ch[1], dst, memo)
		switch {
		case isConstValue(dst, a, 0):
			result = dst.AddConst(0)
		case isConstValue(dst, b, 1):
			result = a
		case Equal(dst, a, dst, b):
			result = dst.AddConst(1)
		default:
			result = dst.AddBinary(Div, a, b)
		}
	case Pow:
		a := normalizeNode(src, n.Ch[0], dst, memo)
		b := normalizeNode(src, n.Ch[1], dst, memo)
		result = dst.AddBinary(Pow, a, b)
	case Sin, Cos, Exp, Log, Sqrt, Tanh:
		a := normalizeNode(src, n.Ch[0], dst, memo)
		result = dst.AddUnary(n.Op, a)
	case Add:
		children := make([]ID, len(n.Ch))
		for i, c := range n.Ch {
			children[i] = normalizeNode(src, c, dst, memo)
		}
		result = buildAdd(dst, children)
	case Mul:
		children := make([]ID, len(n.Ch))
		for i, c := range n.Ch {
			children[i] = normalizeNode(src, c, dst, memo)
		}
		result = buildMul(dst, children)
	}
	memo[id] = result
	return result
}

// normalizeNeg folds Neg(Const(c)) -> Const(-c) and Neg(Neg(x)) -> x;
// otherwise it rebuilds a Neg node over an already-normalized child.
func normalizeNeg(dst *Graph, a ID) ID {
	n := dst.At(a)
	switch n.Op {
	case Const:
		return dst.AddConst(-n.Payload)
	case Neg:
		return n.Ch[0]
	default:
		return dst.AddUnary(Neg, a)
	}
}

func isConstValue(g *Graph, id ID, v float64) bool {
	n := g.At(id)
	return n.Op == Const && n.Payload == v
}

// buildAdd flattens nested Add children, folds constants into a single
// accumulator, and emits the canonical Add shape (or a bare Const/element
// when the child list degenerates).
func buildAdd(dst *Graph, children []ID) ID {
	flat := make([]ID, 0, len(children))
	var flatten func(ID)
	flatten = func(id ID) {
		if dst.At(id).Op == Add {
			for _, c := range dst.At(id).Ch {
				flatten(c)
			}
			return
		}
		flat = append(flat, id)
	}
	for _, c := range children {
		flatten(c)
	}

	rest := make([]ID, 0, len(flat))
	var sum float64
	var hasConst bool
	for _, c := range flat {
		n := dst.At(c)
		if n.Op == Const {
			sum += n.Payload
			hasConst = true
			continue
		}
		rest = append(rest, c)
	}
	if hasConst && sum != 0 {
		rest = append(rest, dst.AddConst(sum))
	}
	switch len(rest) {
	case 0:
		return dst.AddConst(0)
	case 1:
		return rest[0]
	default:
		sortCanonical(dst, rest)
		return dst.AddVariadic(Add, rest)
	}
}

// buildMul mirrors buildAdd: identity Const(1) is dropped, any Const(0)
// child annihilates the whole product immediately.
func buildMul(dst *Graph, children []ID) ID {
	flat := make([]ID, 0, len(children))
	var flatten func(ID)
	flatten = func(id ID) {
		if dst.At(id).Op == Mul {
			for _, c := range dst.At(id).Ch {
				flatten(c)
			}
			return
		}
		flat = append(flat, id)
	}
	for _, c := range children {
		flatten(c)
	}

	rest := make([]ID, 0, len(flat))
	product := 1.0
	var hasConst bool
	for _, c := range flat {
		n := dst.At(c)
		if n.Op == Const {
			if n.Payload == 0 {
				return dst.AddConst(0)
			}
			product *= n.Payload
			hasConst = true
			continue
		}
		rest = append(rest, c)
	}
	if hasConst && product != 1 {
		rest = append(rest, dst.AddConst(product))
	}
	switch len(rest) {
	case 0:
		return dst.AddConst(1)
	case 1:
		return rest[0]
	default:
		sortCanonical(dst, rest)
		return dst.AddVariadic(Mul, rest)
	}
}

// kindRank orders Const before Var before every other kind, per the
// spec's resolution of the two competing canonical-order definitions
// found in the original source.
func kindRank(op Op) int {
	switch op {
	case Const:
		return 0
	case Var:
		return 1
	default:
		return 2 + int(op)
	}
}

func sortCanonical(g *Graph, ids []ID) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := g.At(ids[i]), g.At(ids[j])
		ra, rb := kindRank(a.Op), kindRank(b.Op)
		if ra != rb {
			return ra < rb
		}
		ha, hb := g.Hash(ids[i]), g.Hash(ids[j])
		if ha != hb {
			return ha < hb
		}
		return ids[i] < ids[j]
	})
}
