package syntax

type parser struct {
	pattern string
	toks    []token
	idx     int
	look    token

	leaves []*Node // leaves[p-1] holds position p
}

func newParser(pattern string, toks []token) *parser {
	p := &parser{pattern: pattern, toks: toks}
	p.look = toks[0]
	return p
}

func (p *parser) scan() {
	if p.idx < len(p.toks)-1 {
		p.idx++
	}
	p.look = p.toks[p.idx]
}

func (p *parser) leaf(ch byte) *Node {
	n := newLeaf(ch, Position(len(p.leaves)+1))
	p.leaves = append(p.leaves, n)
	return n
}

// Pratt parser: alternation 1, concatenation 2, star is a postfix loop.
func (p *parser) parse() (*Node, error) {
	n, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	switch p.look.typ {
	case tEOF:
		return n, nil
	case tRParen:
		return nil, p.errorf(p.look.off, "unbalanced ')'")
	default:
		return nil, p.errorf(p.look.off, "unexpected %v", p.look.typ)
	}
}

func infixPrecedence(t tokenType) int {
	switch t {
	case tUnion:
		return 1
	case tConcat, tChar, tLParen:
		return 2 // tChar and tLParen start an implicit concatenation
	default:
		return 0
	}
}

func (p *parser) parseExpr(minPrec int) (*Node, error) {
	// prefix
	var left *Node
	switch p.look.typ {
	case tChar:
		left = p.leaf(p.look.ch)
		p.scan()
	case tLParen:
		open := p.look.off
		p.scan()
		switch p.look.typ {
		case tRParen:
			return nil, p.errorf(p.look.off, "empty group")
		case tEOF:
			return nil, p.errorf(open, "unbalanced '('")
		}
		inner, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, p.errorf(open, "unbalanced '('")
		}
		left = inner
		p.scan()
	case tEOF:
		if p.look.off == 0 {
			return nil, p.errorf(0, "empty expression")
		}
		return nil, p.errorf(p.look.off, "unexpected end of expression")
	case tRParen:
		return nil, p.errorf(p.look.off, "unbalanced ')'")
	default:
		return nil, p.errorf(p.look.off, "operator %v in invalid position", p.look.typ)
	}

	// postfix
	for p.look.typ == tStar {
		left = newStar(left)
		p.scan()
	}

	// infix, both operators left-associative
	for {
		prec := infixPrecedence(p.look.typ)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		op := p.look.typ
		if op == tUnion || op == tConcat {
			p.scan()
		}
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		if op == tUnion {
			left = newAlt(left, right)
		} else {
			left = newConcat(left, right)
		}
	}
}
