package autodiff

import (
	"math"

	"github.com/dschwen/vibex/internal/emit"
	"github.com/dschwen/vibex/internal/term"
)

// Tape is a linear, append-only record of scalar instructions. It
// implements emit.Emitter[int] so any post-order driver can stream a
// term graph directly into it.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.EmitVar(0)
//	s := tape.EmitApply(term.Sin, x)
//	tape.SetOutput(s)
//	v := tape.Forward([]float64{1.2})
//	grad := tape.VJP([]float64{1.2})
type Tape struct {
	instructions []Instruction
	output       int
}

// NewTape returns an empty tape.
func NewTape() *Tape {
	return &Tape{instructions: make([]Instruction, 0, 64)}
}

// Len returns the number of recorded instructions.
func (t *Tape) Len() int { return len(t.instructions) }

// At returns the instruction recorded at index i.
func (t *Tape) At(i int) Instruction { return t.instructions[i] }

// Output returns the instruction index treated as the tape's result.
func (t *Tape) Output() int { return t.output }

// SetOutput marks id as the tape's result instruction.
func (t *Tape) SetOutput(id int) { t.output = id }

// EmitConst appends a Const instruction and returns its index.
func (t *Tape) EmitConst(v float64) int {
	return t.append(Instruction{Op: term.Const, Cval: v})
}

// EmitVar appends a Var instruction and returns its index.
func (t *Tape) EmitVar(index int) int {
	return t.append(Instruction{Op: term.Var, VarIndex: index})
}

// EmitApply appends the instruction(s) for op applied to args. A variadic
// AC op (Add/Mul) with more than two arguments is left-folded into a
// chain of binary instructions, since an Instruction only carries two
// operand slots (A, B).
func (t *Tape) EmitApply(op term.Op, args ...int) int {
	if op.IsAC() {
		acc := args[0]
		for _, a := range args[1:] {
			acc = t.append(Instruction{Op: op, A: acc, B: a})
		}
		return acc
	}
	if op.Arity() == 1 {
		return t.append(Instruction{Op: op, A: args[0]})
	}
	return t.append(Instruction{Op: op, A: args[0], B: args[1]})
}

func (t *Tape) append(ins Instruction) int {
	idx := len(t.instructions)
	t.instructions = append(t.instructions, ins)
	return idx
}

// FromGraph builds a tape from g using the plain (no-sharing) driver.
func FromGraph(g *term.Graph) *Tape {
	t := NewTape()
	out := emit.Drive[int](g, g.Root(), t)
	t.SetOutput(out)
	return t
}

// FromGraphCSE builds a tape from g using the CSE driver, so structurally
// equal subtrees are recorded only once.
func FromGraphCSE(g *term.Graph, strategy emit.KeyStrategy) *Tape {
	t := NewTape()
	out := emit.DriveCSE[int](g, g.Root(), t, strategy)
	t.SetOutput(out)
	return t
}

// Forward runs the forward sweep, computing one value per instruction in
// order, and returns the output instruction's value.
func (t *Tape) Forward(inputs []float64) float64 {
	v := t.forwardValues(inputs)
	return v[t.output]
}

func (t *Tape) forwardValues(inputs []float64) []float64 {
	v := make([]float64, len(t.instructions))
	for i, ins := range t.instructions {
		switch ins.Op {
		case term.Const:
			v[i] = ins.Cval
		case term.Var:
			v[i] = inputs[ins.VarIndex]
		case term.Add:
			v[i] = v[ins.A] + v[ins.B]
		case term.Sub:
			v[i] = v[ins.A] - v[ins.B]
		case term.Mul:
			v[i] = v[ins.A] * v[ins.B]
		case term.Div:
			v[i] = v[ins.A] / v[ins.B]
		case term.Neg:
			v[i] = -v[ins.A]
		case term.Sin:
			v[i] = math.Sin(v[ins.A])
		case term.Cos:
			v[i] = math.Cos(v[ins.A])
		case term.Exp:
			v[i] = math.Exp(v[ins.A])
		case term.Log:
			v[i] = math.Log(v[ins.A])
		case term.Sqrt:
			v[i] = math.Sqrt(v[ins.A])
		case term.Tanh:
			v[i] = math.Tanh(v[ins.A])
		case term.Pow:
			v[i] = math.Pow(v[ins.A], v[ins.B])
		}
	}
	return v
}

// VJP runs the forward sweep followed by the reverse sweep, accumulating
// adjoints from the output back to every Var instruction, and returns a
// gradient vector sized to 1 + the largest var index recorded. A variable
// index that never appears keeps its zero-valued slot.
func (t *Tape) VJP(inputs []float64) []float64 {
	v := t.forwardValues(inputs)
	bar := make([]float64, len(t.instructions))
	bar[t.output] = 1

	for i := len(t.instructions) - 1; i >= 0; i-- {
		ins := t.instructions[i]
		switch ins.Op {
		case term.Add:
			bar[ins.A] += bar[i]
			bar[ins.B] += bar[i]
		case term.Sub:
			bar[ins.A] += bar[i]
			bar[ins.B] -= bar[i]
		case term.Mul:
			bar[ins.A] += bar[i] * v[ins.B]
			bar[ins.B] += bar[i] * v[ins.A]
		case term.Div:
			bar[ins.A] += bar[i] / v[ins.B]
			bar[ins.B] -= bar[i] * v[ins.A] / (v[ins.B] * v[ins.B])
		case term.Neg:
			bar[ins.A] -= bar[i]
		case term.Sin:
			bar[ins.A] += bar[i] * math.Cos(v[ins.A])
		case term.Cos:
			bar[ins.A] -= bar[i] * math.Sin(v[ins.A])
		case term.Exp:
			bar[ins.A] += bar[i] * math.Exp(v[ins.A])
		case term.Log:
			bar[ins.A] += bar[i] / v[ins.A]
		case term.Sqrt:
			bar[ins.A] += bar[i] * (0.5 / math.Sqrt(v[ins.A]))
		case term.Tanh:
			th := math.Tanh(v[ins.A])
			bar[ins.A] += bar[i] * (1 - th*th)
		case term.Pow:
			bar[ins.A] += bar[i] * v[ins.B] * math.Pow(v[ins.A], v[ins.B]-1)
			bar[ins.B] += bar[i] * math.Pow(v[ins.A], v[ins.B]) * math.Log(v[ins.A])
		}
	}

	maxVar := -1
	for _, ins := range t.instructions {
		if ins.Op == term.Var && ins.VarIndex > maxVar {
			maxVar = ins.VarIndex
		}
	}
	grad := make([]float64, maxVar+1)
	for i, ins := range t.instructions {
		if ins.Op == term.Var {
			grad[ins.VarIndex] += bar[i]
		}
	}
	return grad
}
