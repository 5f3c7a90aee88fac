package emit

import "github.com/dschwen/vibex/internal/term"

// Drive walks g in post-order from id using the plain strategy: every
// node is re-emitted on every visit, even if the same id is reachable
// through more than one parent.
func Drive[H any](g *term.Graph, id term.ID, e Emitter[H]) H {
	n := g.At(id)
	switch n.Op {
	case term.Const:
		return e.EmitConst(n.Payload)
	case term.Var:
		return e.EmitVar(n.VarIndex)
	}
	args := make([]H, len(n.Ch))
	for i, c := range n.Ch {
		args[i] = Drive(g, c, e)
	}
	return e.EmitApply(n.Op, args...)
}

// KeyStrategy selects how the CSE driver deduplicates structurally equal
// subtrees.
type KeyStrategy uint8

const (
	// KeyCanonicalString keys memoization directly by the node's
	// canonical string encoding.
	KeyCanonicalString KeyStrategy = iota
	// KeyHash64 keys memoization by the node's 64-bit structural hash,
	// with a per-bucket fallback to the canonical string on collision.
	KeyHash64
)

// DriveCSE walks g in post-order from id, memoizing handles so that every
// structurally equal subtree is emitted exactly once, regardless of how
// many parents reference it.
func DriveCSE[H any](g *term.Graph, id term.ID, e Emitter[H], strategy KeyStrategy) H {
	switch strategy {
	case KeyHash64:
		d := &hashDriver[H]{g: g, e: e, buckets: make(map[uint64][]hashEntry[H])}
		return d.walk(id)
	default:
		d := &stringDriver[H]{g: g, e: e, memo: make(map[string]H)}
		return d.walk(id)
	}
}

type stringDriver[H any] struct {
	g    *term.Graph
	e    Emitter[H]
	memo map[string]H
}

func (d *stringDriver[H]) walk(id term.ID) H {
	key := d.g.Canonical(id)
	if h, ok := d.memo[key]; ok {
		return h
	}
	h := d.emit(id)
	d.memo[key] = h
	return h
}

func (d *stringDriver[H]) emit(id term.ID) H {
	n := d.g.At(id)
	switch n.Op {
	case term.Const:
		return d.e.EmitConst(n.Payload)
	case term.Var:
		return d.e.EmitVar(n.VarIndex)
	}
	args := make([]H, len(n.Ch))
	for i, c := range n.Ch {
		args[i] = d.walk(c)
	}
	return d.e.EmitApply(n.Op, args...)
}

type hashEntry[H any] struct {
	key    string
	handle H
}

type hashDriver[H any] struct {
	g       *term.Graph
	e       Emitter[H]
	buckets map[uint64][]hashEntry[H]
}

func (d *hashDriver[H]) walk(id term.ID) H {
	hash := d.g.Hash(id)
	key := d.g.Canonical(id)
	for _, entry := range d.buckets[hash] {
		if entry.key == key {
			return entry.handle
		}
	}
	h := d.emit(id)
	d.buckets[hash] = append(d.buckets[hash], hashEntry[H]{key: key, handle: h})
	return h
}

func (d *hashDriver[H]) emit(id term.ID) H {
	n := d.g.At(id)
	switch n.Op {
	case term.Const:
		return d.e.EmitConst(n.Payload)
	case term.Var:
		return d.e.EmitVar(n.VarIndex)
	}
	args := make([]H, len(n.Ch))
	for i, c := range n.Ch {
		args[i] = d.walk(c)
	}
	return d.e.EmitApply(n.Op, args...)
}
