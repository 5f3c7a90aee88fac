package term

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Hash returns a deterministic structural hash of the subtree rooted at
// id, memoized per graph. It is not required to be collision-free: it
// seeds the Add/Mul canonical ordering and buckets CSE candidates, with
// structural equality as the tie-breaker wherever it matters. It uses
// FNV-1a rather than Go's runtime map hash, which is randomized per
// process and therefore unsuitable for a value that must stay stable
// across runs.
func (g *Graph) Hash(id ID) uint64 {
	if g.hashCache == nil {
		g.hashCache = make(map[ID]uint64)
	}
	if h, ok := g.hashCache[id]; ok {
		return h
	}
	n := g.At(id)
	h := fnv.New64a()
	h.Write([]byte{byte(n.Op)})
	var buf [8]byte
	switch n.Op {
	case Const:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(n.Payload))
		h.Write(buf[:])
	case Var:
		binary.LittleEndian.PutUint64(buf[:], uint64(n.VarIndex))
		h.Write(buf[:])
	default:
		for _, c := range n.Ch {
			binary.LittleEndian.PutUint64(buf[:], g.Hash(c))
			h.Write(buf[:])
		}
	}
	sum := h.Sum64()
	g.hashCache[id] = sum
	return sum
}
