// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for the reverse-mode
// automatic differentiation tape.
//
// Example:
//
//	tape := autodiff.FromGraph(g)
//	value := tape.Forward(inputs)
//	grad := tape.VJP(inputs)
package autodiff

import (
	"github.com/dschwen/vibex/internal/autodiff"
	"github.com/dschwen/vibex/internal/emit"
	"github.com/dschwen/vibex/internal/term"
)

// Instruction is one entry in a Tape's linear instruction list.
type Instruction = autodiff.Instruction

// Tape is a linear, append-only record of scalar instructions.
type Tape = autodiff.Tape

// NewTape returns an empty tape.
func NewTape() *Tape { return autodiff.NewTape() }

// FromGraph builds a tape from g using the plain (no-sharing) driver.
func FromGraph(g *term.Graph) *Tape { return autodiff.FromGraph(g) }

// FromGraphCSE builds a tape from g using the CSE driver.
func FromGraphCSE(g *term.Graph, strategy emit.KeyStrategy) *Tape {
	return autodiff.FromGraphCSE(g, strategy)
}
