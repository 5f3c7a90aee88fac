package rewrite

import (
	"github.com/dschwen/vibex/internal/pattern"
	"github.com/dschwen/vibex/internal/term"
)

// Guard inspects the bindings a successful LHS match produced and decides
// whether the rule may fire.
type Guard func(g *term.Graph, b pattern.Bindings) bool

// Rule is a named, prioritized, optionally guarded rewrite: LHS -> RHS.
type Rule struct {
	Name     string
	Priority int
	LHS      pattern.Pattern
	RHS      pattern.Pattern
	Guard    Guard
}

// NewRule constructs a Rule, validating at construction time that the RHS
// contains no spread placeholder outside an AC context and no placeholder
// unbound by the LHS. Malformed rules are rejected here rather than
// silently emitting an empty AC node at rewrite time.
func NewRule(name string, priority int, lhs, rhs pattern.Pattern, guard Guard) (Rule, error) {
	singles, spreads := map[int]bool{}, map[int]bool{}
	collectPlaceholders(lhs, singles, spreads)

	if err := validateRHS(rhs, false, singles, spreads); err != nil {
		return Rule{}, &MatchConstructionError{Rule: name, Side: "rhs", Err: err}
	}
	return Rule{Name: name, Priority: priority, LHS: lhs, RHS: rhs, Guard: guard}, nil
}

// MustNewRule is NewRule for the default rule table's own construction,
// where a validation failure is a programming error.
func MustNewRule(name string, priority int, lhs, rhs pattern.Pattern, guard Guard) Rule {
	r, err := NewRule(name, priority, lhs, rhs, guard)
	if err != nil {
		panic(err)
	}
	return r
}

func collectPlaceholders(p pattern.Pattern, singles, spreads map[int]bool) {
	if p.Kind == pattern.KPlaceholder {
		if p.Spread {
			spreads[p.PID] = true
		} else {
			singles[p.PID] = true
		}
		return
	}
	for _, c := range p.Ch {
		collectPlaceholders(c, singles, spreads)
	}
}

// validateRHS walks the RHS pattern; isACChild is true while p is a direct
// child of an AC (Add/Mul) node pattern.
func validateRHS(p pattern.Pattern, isACChild bool, singles, spreads map[int]bool) error {
	if p.Kind == pattern.KPlaceholder {
		if p.Spread {
			if !isACChild {
				return ErrSpreadOutsideAC
			}
			if !spreads[p.PID] {
				return ErrUnknownPlaceholder
			}
			return nil
		}
		if !singles[p.PID] {
			return ErrUnknownPlaceholder
		}
		return nil
	}
	childIsAC := p.Op.IsAC()
	for _, c := range p.Ch {
		if err := validateRHS(c, childIsAC, singles, spreads); err != nil {
			return err
		}
	}
	return nil
}
