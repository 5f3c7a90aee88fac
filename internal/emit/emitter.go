package emit

import "github.com/dschwen/vibex/internal/term"

// Emitter is any consumer capable of receiving a post-order walk of a term
// graph. H is the consumer's opaque handle type, produced one per visited
// node and threaded into EmitApply for that node's parent.
type Emitter[H any] interface {
	EmitConst(v float64) H
	EmitVar(index int) H
	EmitApply(op term.Op, args ...H) H
}
