// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package frontend is a small reference symbolic front-end layered over
// the public term API. It is a convenience only: the core package never
// depends on it. Expr wraps a graph/id pair and overloads the arithmetic
// and unary math operators as methods so callers can write
// x.Sin().Mul(y) instead of constructing nodes directly.
//
// Example:
//
//	g := term.New()
//	x := frontend.Var(g, 0)
//	y := frontend.Var(g, 1)
//	f := x.Sin().Mul(y).Add(x.Pow(frontend.Const(g, 2)))
//	g.SetRoot(f.ID())
package frontend

import "github.com/dschwen/vibex/term"

// Expr is a handle into a shared graph: every operation it performs
// appends to the same graph and returns a new Expr over the fresh id.
type Expr struct {
	g  *term.Graph
	id term.ID
}

// Var returns an Expr wrapping a fresh Var(index) node in g.
func Var(g *term.Graph, index int) Expr {
	return Expr{g: g, id: g.AddVar(index)}
}

// Const returns an Expr wrapping a fresh Const(v) node in g.
func Const(g *term.Graph, v float64) Expr {
	return Expr{g: g, id: g.AddConst(v)}
}

// Wrap returns an Expr over an already-built id in g, for composing with
// graphs constructed outside the front-end.
func Wrap(g *term.Graph, id term.ID) Expr {
	return Expr{g: g, id: id}
}

// Graph returns the graph this expression's nodes live in.
func (e Expr) Graph() *term.Graph { return e.g }

// ID returns the underlying node id.
func (e Expr) ID() term.ID { return e.id }

func (e Expr) unary(op term.Op) Expr {
	return Expr{g: e.g, id: e.g.AddUnary(op, e.id)}
}

func (e Expr) binary(op term.Op, other Expr) Expr {
	return Expr{g: e.g, id: e.g.AddBinary(op, e.id, other.id)}
}

func (e Expr) Neg() Expr { return e.unary(term.Neg) }

func (e Expr) Sin() Expr  { return e.unary(term.Sin) }
func (e Expr) Cos() Expr  { return e.unary(term.Cos) }
func (e Expr) Exp() Expr  { return e.unary(term.Exp) }
func (e Expr) Log() Expr  { return e.unary(term.Log) }
func (e Expr) Sqrt() Expr { return e.unary(term.Sqrt) }
func (e Expr) Tanh() Expr { return e.unary(term.Tanh) }

func (e Expr) Sub(other Expr) Expr { return e.binary(term.Sub, other) }
func (e Expr) Div(other Expr) Expr { return e.binary(term.Div, other) }
func (e Expr) Pow(other Expr) Expr { return e.binary(term.Pow, other) }

// Add builds a (possibly variadic) Add node over e and others.
func (e Expr) Add(others ...Expr) Expr {
	ids := make([]term.ID, 0, len(others)+1)
	ids = append(ids, e.id)
	for _, o := range others {
		ids = append(ids, o.id)
	}
	return Expr{g: e.g, id: e.g.AddVariadic(term.Add, ids)}
}

// Mul builds a (possibly variadic) Mul node over e and others.
func (e Expr) Mul(others ...Expr) Expr {
	ids := make([]term.ID, 0, len(others)+1)
	ids = append(ids, e.id)
	for _, o := range others {
		ids = append(ids, o.id)
	}
	return Expr{g: e.g, id: e.g.AddVariadic(term.Mul, ids)}
}
