// Copyright 2025 The Vibex Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package emit provides the public API for the emitter visitor protocol
// and its plain and CSE-deduplicating post-order drivers.
//
// Example:
//
//	h := emit.DriveCSE[int](g, g.Root(), tape, emit.KeyCanonicalString)
package emit

import (
	"github.com/dschwen/vibex/internal/emit"
	"github.com/dschwen/vibex/internal/term"
)

// Emitter is any consumer capable of receiving a post-order graph walk.
type Emitter[H any] = emit.Emitter[H]

// OpHandler builds a foreign-backend handle for one application node.
type OpHandler[H any] = emit.OpHandler[H]

// Registry maps operator kinds to foreign-backend handlers.
type Registry[H any] = emit.Registry[H]

// NewRegistry returns an empty registry.
func NewRegistry[H any]() *Registry[H] { return emit.NewRegistry[H]() }

// KeyStrategy selects how the CSE driver deduplicates structurally equal subtrees.
type KeyStrategy = emit.KeyStrategy

const (
	KeyCanonicalString = emit.KeyCanonicalString
	KeyHash64          = emit.KeyHash64
)

// Drive walks g in post-order from id, re-emitting every node.
func Drive[H any](g *term.Graph, id term.ID, e Emitter[H]) H {
	return emit.Drive(g, id, e)
}

// DriveCSE walks g in post-order from id, emitting each structurally
// equal subtree exactly once.
func DriveCSE[H any](g *term.Graph, id term.ID, e Emitter[H], strategy KeyStrategy) H {
	return emit.DriveCSE(g, id, e, strategy)
}
