package term

import "fmt"

// Graph is a dense, append-only arena of nodes plus a distinguished root.
// No node is mutated once inserted; a non-leaf node's children always
// have ids strictly less than its own, so the arena is topologically
// sorted and cycles are impossible by construction.
type Graph struct {
	nodes []Node
	root  ID

	hashCache map[ID]uint64
	strCache  map[ID]string
}

// New returns an empty graph ready to be built via the Add* constructors.
func New() *Graph {
	return &Graph{nodes: make([]Node, 0, 64)}
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

// At returns the node stored at id.
func (g *Graph) At(id ID) Node { return g.nodes[id] }

// Root returns the current root id.
func (g *Graph) Root() ID { return g.root }

// SetRoot sets the root id. Callers building a graph bottom-up call this
// once after the final node is appended.
func (g *Graph) SetRoot(id ID) { g.root = id }

func (g *Graph) append(n Node) ID {
	id := ID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	return id
}

func (g *Graph) checkChildren(ch []ID, self ID) {
	for _, c := range ch {
		if c < 0 || c >= self {
			panic(fmt.Sprintf("term: child id %d is not strictly less than node id %d", c, self))
		}
	}
}

// AddConst appends a Const leaf and returns its id.
func (g *Graph) AddConst(v float64) ID {
	return g.append(Node{Op: Const, Payload: v})
}

// AddVar appends a Var leaf bound to the given non-negative input index.
func (g *Graph) AddVar(index int) ID {
	if index < 0 {
		panic("term: negative variable index")
	}
	return g.append(Node{Op: Var, VarIndex: index})
}

// AddUnary appends a fixed-arity-1 node (Neg, Sin, Cos, Exp, Log, Sqrt, Tanh).
func (g *Graph) AddUnary(op Op, a ID) ID {
	if op.Arity() != 1 {
		panic(fmt.Sprintf("term: %s is not a unary op", op))
	}
	id := ID(len(g.nodes))
	g.checkChildren([]ID{a}, id)
	return g.append(Node{Op: op, Ch: []ID{a}})
}

// AddBinary appends a fixed-arity-2 node (Sub, Div, Pow).
func (g *Graph) AddBinary(op Op, a, b ID) ID {
	if op.Arity() != 2 {
		panic(fmt.Sprintf("term: %s is not a binary op", op))
	}
	id := ID(len(g.nodes))
	g.checkChildren([]ID{a, b}, id)
	return g.append(Node{Op: op, Ch: []ID{a, b}})
}

// AddVariadic appends an Add or Mul node over the given children. Callers
// that already hold a canonical (>=2 element) child list use this directly;
// the arena itself does not enforce the post-normalization arity floor,
// since intermediate, pre-normalization shapes (e.g. a single-child Add
// produced mid-rewrite) are legitimate transient states.
func (g *Graph) AddVariadic(op Op, ch []ID) ID {
	if !op.IsAC() {
		panic(fmt.Sprintf("term: %s is not an AC op", op))
	}
	id := ID(len(g.nodes))
	g.checkChildren(ch, id)
	cp := make([]ID, len(ch))
	copy(cp, ch)
	return g.append(Node{Op: op, Ch: cp})
}
