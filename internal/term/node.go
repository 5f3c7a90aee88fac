package term

// Op is the closed tag set of operator kinds. Add and Mul are variadic
// and associative-commutative; every other kind has fixed arity.
type Op uint8

const (
	Const Op = iota
	Var
	Neg
	Sin
	Cos
	Exp
	Log
	Sqrt
	Tanh
	Add
	Sub
	Mul
	Div
	Pow
)

func (o Op) String() string {
	switch o {
	case Const:
		return "Const"
	case Var:
		return "Var"
	case Neg:
		return "Neg"
	case Sin:
		return "Sin"
	case Cos:
		return "Cos"
	case Exp:
		return "Exp"
	case Log:
		return "Log"
	case Sqrt:
		return "Sqrt"
	case Tanh:
		return "Tanh"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Pow:
		return "Pow"
	default:
		return "Op(?)"
	}
}

// IsAC reports whether o is associative-commutative (Add or Mul), the
// only two kinds with multiset child semantics.
func (o Op) IsAC() bool {
	return o == Add || o == Mul
}

// Arity returns the fixed number of children for o, or -1 for the
// variadic AC kinds (Add, Mul).
func (o Op) Arity() int {
	switch o {
	case Const, Var:
		return 0
	case Neg, Sin, Cos, Exp, Log, Sqrt, Tanh:
		return 1
	case Sub, Div, Pow:
		return 2
	case Add, Mul:
		return -1
	default:
		return -1
	}
}

// ID is a stable, insertion-order index into a Graph's node arena.
type ID int

// Node is a discriminated record for one arena slot. For Const, Payload
// holds the value; for Var, VarIndex holds the input index; for every
// interior kind, Ch holds the ordered child ids.
type Node struct {
	Op       Op
	Payload  float64
	VarIndex int
	Ch       []ID
}
