package rewrite

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrSpreadOutsideAC    = errors.New("spread placeholder used outside an AC node context")
	ErrUnknownPlaceholder = errors.New("RHS references a placeholder not bound by the LHS")
)

// MatchConstructionError reports a malformed rule detected while building
// it, naming the offending rule and the side (LHS/RHS) at fault.
type MatchConstructionError struct {
	Rule string // rule name
	Side string // "lhs" or "rhs"
	Err  error
}

func (e *MatchConstructionError) Error() string {
	return fmt.Sprintf("rule %q: %s: %s", e.Rule, e.Side, e.Err)
}

func (e *MatchConstructionError) Unwrap() error { return e.Err }
