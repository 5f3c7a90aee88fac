package autodiff

import "github.com/dschwen/vibex/internal/term"

// Instruction is one entry in a Tape's linear instruction list. Var
// captures VarIndex, Const captures Cval, unary ops use A, binary ops use
// A and B.
type Instruction struct {
	Op       term.Op
	A, B     int
	Cval     float64
	VarIndex int
}
