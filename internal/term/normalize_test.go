package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dschwen/vibex/internal/term"
)

// ((x+(y+z))+0) + (2+3) normalizes to an Add of exactly four children:
// the three vars and Const(5), in canonical order.
func TestNormalize_FlattenFoldSort(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	y := g.AddVar(1)
	z := g.AddVar(2)
	yz := g.AddVariadic(term.Add, []term.ID{y, z})
	xyz := g.AddVariadic(term.Add, []term.ID{x, yz})
	zero := g.AddConst(0)
	left := g.AddVariadic(term.Add, []term.ID{xyz, zero})
	two := g.AddConst(2)
	three := g.AddConst(3)
	right := g.AddVariadic(term.Add, []term.ID{two, three})
	root := g.AddVariadic(term.Add, []term.ID{left, right})
	g.SetRoot(root)

	n := term.Normalize(g)
	rootNode := n.At(n.Root())
	require.Equal(t, term.Add, rootNode.Op)
	require.Len(t, rootNode.Ch, 4)

	var consts, vars int
	for i, c := range rootNode.Ch {
		node := n.At(c)
		switch node.Op {
		case term.Const:
			consts++
			assert.Equal(t, float64(5), node.Payload)
			assert.Equal(t, 0, i, "Const sorts first under kind_rank ordering")
		case term.Var:
			vars++
		}
	}
	assert.Equal(t, 1, consts)
	assert.Equal(t, 3, vars)
}

func TestNormalize_Idempotent(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	y := g.AddVar(1)
	sub := g.AddBinary(term.Sub, x, y)
	neg := g.AddUnary(term.Neg, sub)
	g.SetRoot(neg)

	n1 := term.Normalize(g)
	n2 := term.Normalize(n1)
	assert.True(t, term.Equal(n1, n1.Root(), n2, n2.Root()))
}

func TestNormalize_SubErasedIntoAddNeg(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	y := g.AddVar(1)
	sub := g.AddBinary(term.Sub, x, y)
	g.SetRoot(sub)

	n := term.Normalize(g)
	assert.Equal(t, term.Add, n.At(n.Root()).Op)
}

func TestNormalize_NegNegCollapses(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	n1 := g.AddUnary(term.Neg, x)
	n2 := g.AddUnary(term.Neg, n1)
	g.SetRoot(n2)

	n := term.Normalize(g)
	assert.Equal(t, term.Var, n.At(n.Root()).Op)
}

func TestNormalize_NegConstFolds(t *testing.T) {
	g := term.New()
	c := g.AddConst(3)
	neg := g.AddUnary(term.Neg, c)
	g.SetRoot(neg)

	n := term.Normalize(g)
	root := n.At(n.Root())
	require.Equal(t, term.Const, root.Op)
	assert.Equal(t, float64(-3), root.Payload)
}

func TestNormalize_DivTrivialities(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	zero := g.AddConst(0)
	one := g.AddConst(1)

	zeroOverX := g.AddBinary(term.Div, zero, x)
	xOverOne := g.AddBinary(term.Div, x, one)
	xOverX := g.AddBinary(term.Div, x, x)

	for _, tc := range []struct {
		root term.ID
		op   term.Op
		val  float64
	}{
		{zeroOverX, term.Const, 0},
		{xOverOne, term.Var, 0},
		{xOverX, term.Const, 1},
	} {
		g.SetRoot(tc.root)
		n := term.Normalize(g)
		root := n.At(n.Root())
		assert.Equal(t, tc.op, root.Op)
		if tc.op == term.Const {
			assert.Equal(t, tc.val, root.Payload)
		}
	}
}

func TestNormalize_MulAnnihilatorAndIdentity(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	y := g.AddVar(1)
	zero := g.AddConst(0)
	one := g.AddConst(1)

	withZero := g.AddVariadic(term.Mul, []term.ID{x, zero, y})
	g.SetRoot(withZero)
	n := term.Normalize(g)
	root := n.At(n.Root())
	require.Equal(t, term.Const, root.Op)
	assert.Equal(t, float64(0), root.Payload)

	g2 := term.New()
	x2 := g2.AddVar(0)
	one2 := g2.AddConst(1)
	withOne := g2.AddVariadic(term.Mul, []term.ID{x2, one2})
	g2.SetRoot(withOne)
	n2 := term.Normalize(g2)
	assert.Equal(t, term.Var, n2.At(n2.Root()).Op)
	_ = one
}

func TestNormalize_NoNestedAddOrMul(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	y := g.AddVar(1)
	z := g.AddVar(2)
	inner := g.AddVariadic(term.Mul, []term.ID{x, y})
	outer := g.AddVariadic(term.Mul, []term.ID{inner, z})
	g.SetRoot(outer)

	n := term.Normalize(g)
	root := n.At(n.Root())
	require.Equal(t, term.Mul, root.Op)
	for _, c := range root.Ch {
		assert.NotEqual(t, term.Mul, n.At(c).Op, "no nested Mul inside Mul")
	}
}
