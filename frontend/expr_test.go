// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package frontend_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dschwen/vibex/frontend"
	"github.com/dschwen/vibex/term"
)

func TestExpr_BasicScenarioMatchesDirectGraphConstruction(t *testing.T) {
	g := term.New()
	x0 := frontend.Var(g, 0)
	x1 := frontend.Var(g, 1)
	x2 := frontend.Var(g, 2)

	f := x0.Sin().Mul(x1).Add(x2.Mul(x2))
	g.SetRoot(f.ID())

	v := term.Eval(g, []float64{2.4, 6.0, 1.5})
	assert.InDelta(t, math.Sin(2.4)*6+2.25, v, 1e-9)
}

func TestExpr_OperatorChainBuildsExpectedShape(t *testing.T) {
	g := term.New()
	x := frontend.Var(g, 0)
	two := frontend.Const(g, 2)

	f := x.Pow(two).Sub(x)
	n := g.At(f.ID())
	assert.Equal(t, term.Sub, n.Op)
}

func TestExpr_WrapComposesWithDirectlyBuiltGraph(t *testing.T) {
	g := term.New()
	raw := g.AddVar(0)
	wrapped := frontend.Wrap(g, raw)
	doubled := wrapped.Add(wrapped)
	g.SetRoot(doubled.ID())

	assert.Equal(t, 8.0, term.Eval(g, []float64{4}))
}
