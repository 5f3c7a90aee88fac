package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dschwen/vibex/internal/term"
)

func TestGraph_TopologicalInvariant(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	c := g.AddConst(2)
	s := g.AddUnary(term.Sin, x)
	sum := g.AddVariadic(term.Add, []term.ID{s, c})
	g.SetRoot(sum)

	for id := term.ID(0); id < term.ID(g.Len()); id++ {
		for _, c := range g.At(id).Ch {
			assert.Lessf(t, c, id, "child %d of node %d must be strictly less", c, id)
		}
	}
}

func TestGraph_PanicsOnForwardReference(t *testing.T) {
	g := term.New()
	_ = g.AddConst(1)
	assert.Panics(t, func() {
		g.AddUnary(term.Sin, term.ID(5))
	})
}

func TestGraph_PanicsOnNegativeVarIndex(t *testing.T) {
	g := term.New()
	assert.Panics(t, func() {
		g.AddVar(-1)
	})
}

func TestGraph_PanicsOnWrongArity(t *testing.T) {
	g := term.New()
	a := g.AddConst(1)
	b := g.AddConst(2)
	assert.Panics(t, func() { g.AddUnary(term.Add, a) })
	assert.Panics(t, func() { g.AddBinary(term.Sin, a, b) })
	assert.Panics(t, func() { g.AddVariadic(term.Sub, []term.ID{a, b}) })
}
