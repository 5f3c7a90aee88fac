// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rewrite provides the public API for the priority-ordered,
// guarded rewrite rule engine and its fixed-point driver.
//
// Example:
//
//	out := rewrite.FixedPoint(g, rewrite.DefaultRules())
package rewrite

import (
	"github.com/dschwen/vibex/internal/pattern"
	"github.com/dschwen/vibex/internal/rewrite"
	"github.com/dschwen/vibex/internal/term"
)

// Common errors surfaced by rule construction.
var (
	ErrSpreadOutsideAC    = rewrite.ErrSpreadOutsideAC
	ErrUnknownPlaceholder = rewrite.ErrUnknownPlaceholder
)

// MatchConstructionError reports a malformed rule detected at construction.
type MatchConstructionError = rewrite.MatchConstructionError

// Guard inspects the bindings a successful LHS match produced.
type Guard = rewrite.Guard

// Rule is a named, prioritized, optionally guarded rewrite.
type Rule = rewrite.Rule

// NewRule constructs and validates a Rule.
func NewRule(name string, priority int, lhs, rhs pattern.Pattern, guard Guard) (Rule, error) {
	return rewrite.NewRule(name, priority, lhs, rhs, guard)
}

// DefaultMaxPasses bounds the fixed-point driver's iteration count.
const DefaultMaxPasses = rewrite.DefaultMaxPasses

// DefaultRules returns the engine's built-in rule table.
func DefaultRules() []Rule { return rewrite.DefaultRules() }

// ApplyOnce runs a single rule-application pass over g.
func ApplyOnce(g *term.Graph, rules []Rule) *term.Graph { return rewrite.ApplyOnce(g, rules) }

// FixedPoint applies rules to g, interleaved with normalization, to a fixed point.
func FixedPoint(g *term.Graph, rules []Rule) *term.Graph { return rewrite.FixedPoint(g, rules) }

// FixedPointN is FixedPoint with an explicit pass cap.
func FixedPointN(g *term.Graph, rules []Rule, maxPasses int) *term.Graph {
	return rewrite.FixedPointN(g, rules, maxPasses)
}
