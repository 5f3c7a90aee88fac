package term

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSExpr builds a graph from a tiny s-expression debugging format, not
// a supported wire protocol (the module has none; see the external
// interfaces section of the design doc). Grammar:
//
//	expr    := "(" ident args ")" | NUMBER | "v" INT
//	args    := expr*
//
// ident is one of the lowercase op names (add, mul, sub, div, pow, neg,
// sin, cos, exp, log, sqrt, tanh); "v3" denotes Var(3); a bare number
// denotes a Const.
func ParseSExpr(src string) (*Graph, error) {
	toks := tokenizeSExpr(src)
	p := &sexprParser{toks: toks}
	g := New()
	id, err := p.parse(g)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("term: unexpected trailing input after position %d", p.pos)
	}
	g.SetRoot(id)
	return g, nil
}

func tokenizeSExpr(src string) []string {
	src = strings.ReplaceAll(src, "(", " ( ")
	src = strings.ReplaceAll(src, ")", " ) ")
	return strings.Fields(src)
}

type sexprParser struct {
	toks []string
	pos  int
}

func (p *sexprParser) next() (string, error) {
	if p.pos >= len(p.toks) {
		return "", fmt.Errorf("term: unexpected end of input")
	}
	t := p.toks[p.pos]
	p.pos++
	return t, nil
}

func (p *sexprParser) parse(g *Graph) (ID, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok == "(" {
		return p.parseForm(g)
	}
	if strings.HasPrefix(tok, "v") {
		idx, err := strconv.Atoi(tok[1:])
		if err != nil {
			return 0, fmt.Errorf("term: bad variable token %q: %w", tok, err)
		}
		return g.AddVar(idx), nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("term: bad token %q: %w", tok, err)
	}
	return g.AddConst(v), nil
}

func (p *sexprParser) parseForm(g *Graph) (ID, error) {
	name, err := p.next()
	if err != nil {
		return 0, err
	}
	var args []ID
	for {
		if p.pos >= len(p.toks) {
			return 0, fmt.Errorf("term: unterminated form %q", name)
		}
		if p.toks[p.pos] == ")" {
			p.pos++
			break
		}
		id, err := p.parse(g)
		if err != nil {
			return 0, err
		}
		args = append(args, id)
	}
	op, ok := opByName[name]
	if !ok {
		return 0, fmt.Errorf("term: unknown operator %q", name)
	}
	switch {
	case op.IsAC():
		if len(args) < 2 {
			return 0, fmt.Errorf("term: %s needs at least 2 children, got %d", name, len(args))
		}
		return g.AddVariadic(op, args), nil
	case op.Arity() == 1:
		if len(args) != 1 {
			return 0, fmt.Errorf("term: %s needs exactly 1 child, got %d", name, len(args))
		}
		return g.AddUnary(op, args[0]), nil
	default:
		if len(args) != 2 {
			return 0, fmt.Errorf("term: %s needs exactly 2 children, got %d", name, len(args))
		}
		return g.AddBinary(op, args[0], args[1]), nil
	}
}

var opByName = map[string]Op{
	"neg":  Neg,
	"sin":  Sin,
	"cos":  Cos,
	"exp":  Exp,
	"log":  Log,
	"sqrt": Sqrt,
	"tanh": Tanh,
	"add":  Add,
	"sub":  Sub,
	"mul":  Mul,
	"div":  Div,
	"pow":  Pow,
}
