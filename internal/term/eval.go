package term

import "math"

// Eval memoizes one scalar per node id and recursively evaluates the
// root. Arithmetic follows the obvious IEEE-754 double semantics for
// each operator; there is no domain checking (log of non-positive,
// sqrt of negative, division by zero) — NaN/Inf propagate and callers
// are responsible for supplying valid inputs.
func Eval(g *Graph, inputs []float64) float64 {
	memo := make([]float64, g.Len())
	done := make([]bool, g.Len())
	var ev func(ID) float64
	ev = func(id ID) float64 {
		if done[id] {
			return memo[id]
		}
		n := g.At(id)
		var v float64
		switch n.Op {
		case Const:
			v = n.Payload
		case Var:
			v = inputs[n.VarIndex]
		case Neg:
			v = -ev(n.Ch[0])
		case Sin:
			v = math.Sin(ev(n.Ch[0]))
		case Cos:
			v = math.Cos(ev(n.Ch[0]))
		case Exp:
			v = math.Exp(ev(n.Ch[0]))
		case Log:
			v = math.Log(ev(n.Ch[0]))
		case Sqrt:
			v = math.Sqrt(ev(n.Ch[0]))
		case Tanh:
			v = math.Tanh(ev(n.Ch[0]))
		case Sub:
			v = ev(n.Ch[0]) - ev(n.Ch[1])
		case Div:
			v = ev(n.Ch[0]) / ev(n.Ch[1])
		case Pow:
			v = math.Pow(ev(n.Ch[0]), ev(n.Ch[1]))
		case Add:
			v = 0
			for _, c := range n.Ch {
				v += ev(c)
			}
		case Mul:
			v = 1
			for _, c := range n.Ch {
				v *= ev(c)
			}
		}
		memo[id] = v
		done[id] = true
		return v
	}
	return ev(g.Root())
}
