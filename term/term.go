// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package term provides the public API for the scalar term graph in the
// vibex symbolic algebra engine.
//
// A Graph is a content-addressable arena of expression nodes built by
// appending: Const and Var leaves, unary math nodes, fixed-arity binary
// nodes (Sub, Div, Pow), and variadic associative-commutative nodes
// (Add, Mul). Ids are assigned in insertion order and a node's children
// always precede it, so the arena is a topologically sorted DAG with no
// possibility of cycles.
//
// Example:
//
//	g := term.New()
//	x := g.AddVar(0)
//	s := g.AddUnary(term.Sin, x)
//	g.SetRoot(s)
//	v := term.Eval(g, []float64{1.2})
package term

import "github.com/dschwen/vibex/internal/term"

// Op is the closed tag set of operator kinds.
type Op = term.Op

// ID is a stable index into a Graph's node arena.
type ID = term.ID

// Node is the discriminated record stored per arena slot.
type Node = term.Node

// Graph is the append-only node arena plus its root.
type Graph = term.Graph

const (
	Const = term.Const
	Var   = term.Var
	Neg   = term.Neg
	Sin   = term.Sin
	Cos   = term.Cos
	Exp   = term.Exp
	Log   = term.Log
	Sqrt  = term.Sqrt
	Tanh  = term.Tanh
	Add   = term.Add
	Sub   = term.Sub
	Mul   = term.Mul
	Div   = term.Div
	Pow   = term.Pow
)

// New returns an empty graph.
func New() *Graph { return term.New() }

// Equal performs a recursive structural comparison of two nodes, possibly
// in different graphs.
func Equal(ga *Graph, a ID, gb *Graph, b ID) bool { return term.Equal(ga, a, gb, b) }

// Normalize produces a canonical-form graph semantically equal to g.
func Normalize(g *Graph) *Graph { return term.Normalize(g) }

// DenormalizeSub rewrites display-friendly Sub nodes back in for printing.
func DenormalizeSub(g *Graph) *Graph { return term.DenormalizeSub(g) }

// Eval evaluates g's root over inputs with no domain checking.
func Eval(g *Graph, inputs []float64) float64 { return term.Eval(g, inputs) }

// ParseSExpr builds a graph from the module's tiny s-expression debugging
// format (not a wire protocol — see cmd/vibex).
func ParseSExpr(src string) (*Graph, error) { return term.ParseSExpr(src) }
