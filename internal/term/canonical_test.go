package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dschwen/vibex/internal/term"
)

func TestCanonical_DeterminismAcrossEquivalentBuilds(t *testing.T) {
	build := func() *term.Graph {
		g := term.New()
		x := g.AddVar(0)
		c := g.AddConst(2)
		s := g.AddVariadic(term.Add, []term.ID{x, c})
		g.SetRoot(s)
		return term.Normalize(g)
	}
	a, b := build(), build()
	assert.Equal(t, a.Canonical(a.Root()), b.Canonical(b.Root()))
}

func TestCanonical_LeafFormats(t *testing.T) {
	g := term.New()
	v := g.AddVar(7)
	c := g.AddConst(2.5)
	assert.Equal(t, "V(7)", g.Canonical(v))
	assert.Equal(t, "C(2.5)", g.Canonical(c))
}

func TestCanonical_IntegerConstHasNoDecimal(t *testing.T) {
	g := term.New()
	c := g.AddConst(5)
	assert.Equal(t, "C(5)", g.Canonical(c))
}
