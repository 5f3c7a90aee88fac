// Package autodiff implements a reverse-mode automatic differentiation
// tape over linear scalar instructions: a forward sweep computes one
// value per instruction, and a reverse sweep (VJP) accumulates adjoints
// from the output back to every Var instruction.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := tape.EmitVar(0)
//	s := tape.EmitApply(term.Sin, x)
//	tape.SetOutput(s)
//	v := tape.Forward([]float64{1.2})
//	grad := tape.VJP([]float64{1.2})
package autodiff
