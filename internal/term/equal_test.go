package term_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dschwen/vibex/internal/term"
)

func buildXSinPlusY(g *term.Graph) term.ID {
	x := g.AddVar(0)
	y := g.AddVar(1)
	s := g.AddUnary(term.Sin, x)
	return g.AddVariadic(term.Add, []term.ID{s, y})
}

func TestEqual_ReflexiveSymmetricTransitive(t *testing.T) {
	g1 := term.New()
	r1 := buildXSinPlusY(g1)
	g2 := term.New()
	r2 := buildXSinPlusY(g2)
	g3 := term.New()
	r3 := buildXSinPlusY(g3)

	assert.True(t, term.Equal(g1, r1, g1, r1), "reflexive")
	assert.Equal(t, term.Equal(g1, r1, g2, r2), term.Equal(g2, r2, g1, r1), "symmetric")
	if term.Equal(g1, r1, g2, r2) && term.Equal(g2, r2, g3, r3) {
		assert.True(t, term.Equal(g1, r1, g3, r3), "transitive")
	}
}

func TestEqual_ConstBitwiseDistinguishesSignedZero(t *testing.T) {
	g := term.New()
	pos := g.AddConst(0)
	neg := g.AddConst(math.Copysign(0, -1))
	assert.False(t, term.Equal(g, pos, g, neg), "0 and -0 differ bitwise despite comparing == numerically")
}

func TestEqual_ConsistentWithHash(t *testing.T) {
	g1 := term.New()
	r1 := buildXSinPlusY(g1)
	g2 := term.New()
	r2 := buildXSinPlusY(g2)
	if term.Equal(g1, r1, g2, r2) {
		assert.Equal(t, g1.Hash(r1), g2.Hash(r2))
	}
}

func TestEqual_DifferentVarIndexNotEqual(t *testing.T) {
	g := term.New()
	a := g.AddVar(0)
	b := g.AddVar(1)
	assert.False(t, term.Equal(g, a, g, b))
}
