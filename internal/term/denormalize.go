package term

// DenormalizeSub rewrites 2-child Add nodes into Sub for display, when
// exactly one child is a Neg or a negative-valued Const. It is purely
// cosmetic and must never be applied before an equality or hash check.
func DenormalizeSub(g *Graph) *Graph {
	dst := New()
	memo := make(map[ID]ID, g.Len())
	root := denormNode(g, g.Root(), dst, memo)
	dst.SetRoot(root)
	return dst
}

func denormNode(src *Graph, id ID, dst *Graph, memo map[ID]ID) ID {
	if v, ok := memo[id]; ok {
		return v
	}
	n := src.At(id)
	var result ID
	switch n.Op {
	case Const, Var:
		result = cloneLeaf(dst, n)
	case Add:
		ch := make([]ID, len(n.Ch))
		for i, c := range n.Ch {
			ch[i] = denormNode(src, c, dst, memo)
		}
		result = tryDenormSub(dst, ch)
	default:
		ch := make([]ID, len(n.Ch))
		for i, c := range n.Ch {
			ch[i] = denormNode(src, c, dst, memo)
		}
		if n.Op.IsAC() {
			result = dst.AddVariadic(n.Op, ch)
		} else if len(ch) == 1 {
			result = dst.AddUnary(n.Op, ch[0])
		} else {
			result = dst.AddBinary(n.Op, ch[0], ch[1])
		}
	}
	memo[id] = result
	return result
}

func cloneLeaf(dst *Graph, n Node) ID {
	if n.Op == Const {
		return dst.AddConst(n.Payload)
	}
	return dst.AddVar(n.VarIndex)
}

// tryDenormSub looks for exactly one negative addend among a 2-child Add
// and, if found, emits Sub(other, positive-of-negative) instead.
func tryDenormSub(dst *Graph, ch []ID) ID {
	if len(ch) != 2 {
		return dst.AddVariadic(Add, ch)
	}
	negative := func(id ID) bool {
		n := dst.At(id)
		return n.Op == Neg || (n.Op == Const && n.Payload < 0)
	}
	if negative(ch[0]) == negative(ch[1]) {
		return dst.AddVariadic(Add, ch)
	}
	for i := 0; i < 2; i++ {
		other := ch[1-i]
		n := dst.At(ch[i])
		switch {
		case n.Op == Neg:
			return dst.AddBinary(Sub, other, n.Ch[0])
		case n.Op == Const && n.Payload < 0:
			return dst.AddBinary(Sub, other, dst.AddConst(-n.Payload))
		}
	}
	return dst.AddVariadic(Add, ch)
}
