package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dschwen/vibex/internal/term"
)

func TestParseSExpr_BasicScenario(t *testing.T) {
	g, err := term.ParseSExpr("(add (mul (sin v0) v1) (pow v2 2))")
	require.NoError(t, err)
	got := term.Eval(g, []float64{2.4, 6.0, 1.5})
	assert.InDelta(t, 6.302779083, got, 1e-8)
}

func TestParseSExpr_UnknownOperator(t *testing.T) {
	_, err := term.ParseSExpr("(frobnicate v0)")
	assert.Error(t, err)
}

func TestParseSExpr_WrongArity(t *testing.T) {
	_, err := term.ParseSExpr("(sin v0 v1)")
	assert.Error(t, err)
}
