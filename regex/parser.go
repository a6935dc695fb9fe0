package regex

// parser is a recursive-descent parser over a token slice. pos is the
// cursor and the 0-based character position of toks[pos].
type parser struct {
	pattern string
	toks    []token
	pos     int
}

func (p *parser) look() token { return p.toks[p.pos] }

func (p *parser) fail(expected string) error {
	return &ParseError{Pattern: p.pattern, Pos: p.pos, Char: p.look().ch, Expected: expected}
}

// parse reads the whole pattern. A ')' left over at the top level is an
// error.
func (p *parser) parse() (Node, error) {
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.look().typ != tEOF {
		return nil, p.fail("")
	}
	return n, nil
}

// union := concat ('|' concat)*
func (p *parser) parseUnion() (Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		switch p.look().typ {
		case tEOF, tRParen:
			return left, nil
		case tUnion:
			p.pos++
		default:
			return nil, p.fail("|")
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = Union{Left: left, Right: right}
	}
}

// concat := star star*
func (p *parser) parseConcat() (Node, error) {
	left, err := p.parseStar()
	if err != nil {
		return nil, err
	}
	for {
		switch p.look().typ {
		case tEOF, tUnion, tRParen:
			return left, nil
		}
		right, err := p.parseStar()
		if err != nil {
			return nil, err
		}
		left = Concat{Left: left, Right: right}
	}
}

// star := term ('*' | '+' | '?')?
func (p *parser) parseStar() (Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.look().typ {
	case tStar:
		p.pos++
		return Star{Sub: n}, nil
	case tPlus:
		p.pos++
		return Concat{Left: n, Right: Star{Sub: n}}, nil
	case tQMark:
		p.pos++
		return Union{Left: n, Right: Epsilon{}}, nil
	}
	return n, nil
}

// term := symbol | '(' union ')' | 'ε' | '∅'
//
// A '?' where a term is expected is an ordinary symbol.
func (p *parser) parseTerm() (Node, error) {
	tok := p.look()
	switch tok.typ {
	case tSymbol, tQMark:
		p.pos++
		return Symbol{Ch: tok.ch}, nil
	case tEmpty:
		p.pos++
		return Epsilon{}, nil
	case tEmptySet:
		p.pos++
		return EmptySet{}, nil
	case tLParen:
		p.pos++
		n, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.look().typ != tRParen {
			return nil, p.fail(")")
		}
		p.pos++
		return n, nil
	}
	return nil, p.fail("")
}
