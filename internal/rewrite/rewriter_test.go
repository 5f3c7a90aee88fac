package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dschwen/vibex/internal/rewrite"
	"github.com/dschwen/vibex/internal/term"
)

func TestApplyOnce_NoMatchRebuildsStructureUnchanged(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	y := g.AddVar(1)
	sum := g.AddVariadic(term.Add, []term.ID{x, y})
	g.SetRoot(sum)

	out := rewrite.ApplyOnce(g, rewrite.DefaultRules())
	v := term.Eval(out, []float64{3, 4})
	assert.Equal(t, 7.0, v)
}

func TestApplyOnce_SinOddFires(t *testing.T) {
	g := term.New()
	x := g.AddVar(0)
	negx := g.AddUnary(term.Neg, x)
	s := g.AddUnary(term.Sin, negx)
	g.SetRoot(s)

	out := rewrite.ApplyOnce(g, rewrite.DefaultRules())
	n := out.At(out.Root())
	require.Equal(t, term.Neg, n.Op)
	inner := out.At(n.Ch[0])
	assert.Equal(t, term.Sin, inner.Op)
}

func TestApplyOnce_LogOneAndExpZeroFoldToConst(t *testing.T) {
	g := term.New()
	one := g.AddConst(1)
	logOne := g.AddUnary(term.Log, one)
	g.SetRoot(logOne)
	out := rewrite.ApplyOnce(g, rewrite.DefaultRules())
	assert.Equal(t, 0.0, term.Eval(out, nil))

	g2 := term.New()
	zero := g2.AddConst(0)
	expZero := g2.AddUnary(term.Exp, zero)
	g2.SetRoot(expZero)
	out2 := rewrite.ApplyOnce(g2, rewrite.DefaultRules())
	assert.Equal(t, 1.0, term.Eval(out2, nil))
}

func TestApplyOnce_FactorCommonLeft(t *testing.T) {
	g := term.New()
	a := g.AddVar(0)
	b := g.AddVar(1)
	c := g.AddVar(2)
	ab := g.AddVariadic(term.Mul, []term.ID{a, b})
	ac := g.AddVariadic(term.Mul, []term.ID{a, c})
	sum := g.AddVariadic(term.Add, []term.ID{ab, ac})
	g.SetRoot(sum)

	out := rewrite.ApplyOnce(g, rewrite.DefaultRules())
	n := out.At(out.Root())
	require.Equal(t, term.Mul, n.Op)

	inputs := []float64{2, 3, 5}
	assert.Equal(t, term.Eval(g, inputs), term.Eval(out, inputs))
}
