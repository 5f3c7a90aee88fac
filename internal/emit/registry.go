package emit

import (
	"fmt"

	"github.com/dschwen/vibex/internal/term"
)

// OpHandler builds a foreign-backend handle for one application node,
// given the already-emitted handles of its children.
type OpHandler[H any] func(args ...H) (H, error)

// Registry maps operator kinds to foreign-backend handlers, letting an
// external emitter target a graph framework whose op names or argument
// conventions differ node by node instead of by a single switch.
type Registry[H any] struct {
	handlers map[term.Op]OpHandler[H]
}

// NewRegistry returns an empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{handlers: make(map[term.Op]OpHandler[H])}
}

// Register installs the handler for op, replacing any prior registration.
func (r *Registry[H]) Register(op term.Op, h OpHandler[H]) {
	r.handlers[op] = h
}

// Apply invokes the handler registered for op.
func (r *Registry[H]) Apply(op term.Op, args ...H) (H, error) {
	h, ok := r.handlers[op]
	if !ok {
		var zero H
		return zero, fmt.Errorf("emit: no handler registered for op %s", op)
	}
	return h(args...)
}
