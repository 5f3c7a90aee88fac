// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pattern provides the public API for describing tree patterns
// over term graphs and matching them.
//
// A Pattern mirrors the shape of a term.Node tree, except that any leaf
// may be a placeholder (P) that binds a single node id, or — as a direct
// child of an Add/Mul pattern — a spread (S) that binds the ordered
// remainder of an associative-commutative node's children. Matching a
// pattern against a graph node populates a Bindings value the caller can
// later use to instantiate a rewrite's right-hand side.
//
// Example:
//
//	p := pattern.Add(pattern.Mul(pattern.Sin(pattern.P(1)), pattern.Sin(pattern.P(1))),
//		pattern.Mul(pattern.Cos(pattern.P(1)), pattern.Cos(pattern.P(1))),
//		pattern.S(9))
//	b := pattern.NewBindings()
//	if pattern.Match(g, id, p, b) {
//		// b.B[1] is the matched argument, b.M[9] the leftover addends.
//	}
package pattern

import (
	"github.com/dschwen/vibex/internal/pattern"
	"github.com/dschwen/vibex/internal/term"
)

// Kind distinguishes a concrete node pattern from a placeholder leaf.
type Kind = pattern.Kind

const (
	KNode        = pattern.KNode
	KPlaceholder = pattern.KPlaceholder
)

// Pattern is a parallel tree to term.Node with placeholder/spread leaves.
type Pattern = pattern.Pattern

// Bindings holds the single-id (B) and spread (M) bindings a match produces.
type Bindings = pattern.Bindings

// NewBindings returns an empty binding set.
func NewBindings() Bindings { return pattern.NewBindings() }

// Match attempts to match the subtree rooted at id against p, recording
// bindings into b.
func Match(g *term.Graph, id term.ID, p Pattern, b Bindings) bool {
	return pattern.Match(g, id, p, b)
}

// Node builds a concrete node pattern for a non-leaf operator kind.
func Node(op term.Op, ch ...Pattern) Pattern { return pattern.Node(op, ch...) }

// ConstPattern matches only a Const leaf with exactly this payload.
func ConstPattern(v float64) Pattern { return pattern.ConstPattern(v) }

// VarPattern matches only a Var leaf with exactly this index.
func VarPattern(i int) Pattern { return pattern.VarPattern(i) }

// P returns a non-spread placeholder with pattern-id pid.
func P(pid int) Pattern { return pattern.P(pid) }

// S returns a spread placeholder with pattern-id pid.
func S(pid int) Pattern { return pattern.S(pid) }

// Operator sugar, one-to-one with term graph construction.
func Neg(p Pattern) Pattern     { return pattern.Neg(p) }
func Sin(p Pattern) Pattern     { return pattern.Sin(p) }
func Cos(p Pattern) Pattern     { return pattern.Cos(p) }
func Exp(p Pattern) Pattern     { return pattern.Exp(p) }
func Log(p Pattern) Pattern     { return pattern.Log(p) }
func Sqrt(p Pattern) Pattern    { return pattern.Sqrt(p) }
func Tanh(p Pattern) Pattern    { return pattern.Tanh(p) }
func Sub(a, b Pattern) Pattern  { return pattern.Sub(a, b) }
func Div(a, b Pattern) Pattern  { return pattern.Div(a, b) }
func Pow(a, b Pattern) Pattern  { return pattern.Pow(a, b) }
func Add(ps ...Pattern) Pattern { return pattern.Add(ps...) }
func Mul(ps ...Pattern) Pattern { return pattern.Mul(ps...) }
