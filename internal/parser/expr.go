package parser

import (
	"unforce/internal/syntax"
	"unforce/internal/token"
)

// parseExpr parses the expression subset. 'try' binds the whole rest of the
// expression, so "try! a.b()" is a single try over the call chain.
func (p *Parser) parseExpr() (syntax.Expr, error) {
	if p.at(token.KwTry) {
		tryKw := p.bump()
		e := &syntax.Try{TryKw: tryKw}

		// A '!' or '?' is a try marker only when it hugs the keyword.
		// Same-line whitespace lives in the previous token's trailing
		// trivia, so adjacency is decided by spans, not empty leading.
		next := p.peek()
		if (next.Kind == token.Bang || next.Kind == token.Question) && next.Span.Start == tryKw.Span.End {
			marker := p.bump()
			e.Marker = &marker
		}

		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		e.X = x
		return e, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by member access, calls, and
// adjacent '!'/'?' suffixes.
func (p *Parser) parsePostfix() (syntax.Expr, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch t := p.peek(); t.Kind {
		case token.Dot:
			dot := p.bump()
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			x = &syntax.Member{X: x, Dot: dot, Name: name}
		case token.LParen:
			// A '(' on a new line starts a fresh statement, not a call.
			if t.StartsLine() {
				return x, nil
			}
			call, err := p.parseCall(x)
			if err != nil {
				return nil, err
			}
			x = call
		case token.Bang, token.Question:
			if t.Span.Start != x.LastToken().Span.End {
				return x, nil
			}
			x = &syntax.Suffixed{X: x, Op: p.bump()}
		default:
			return x, nil
		}
	}
}

func (p *Parser) parseCall(fn syntax.Expr) (syntax.Expr, error) {
	lparen := p.bump()
	call := &syntax.Call{Fn: fn, LParen: lparen}

	for !p.at(token.RParen) {
		if p.at(token.EOF) {
			return nil, errNoParse
		}
		var arg syntax.Arg

		if p.at(token.Ident) && p.peekAt(1).Kind == token.Colon {
			label := p.bump()
			colon := p.bump()
			arg.Label = &label
			arg.Colon = &colon
		}

		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		arg.Value = value

		if p.at(token.Comma) {
			comma := p.bump()
			arg.Comma = &comma
		} else if !p.at(token.RParen) {
			return nil, errNoParse
		}
		call.Args = append(call.Args, arg)
	}

	call.RParen = p.bump()
	return call, nil
}

func (p *Parser) parsePrimary() (syntax.Expr, error) {
	switch t := p.peek(); t.Kind {
	case token.Ident, token.Underscore:
		return &syntax.Ident{Tok: p.bump()}, nil
	case token.IntLit, token.FloatLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwNil, token.Placeholder:
		return &syntax.Literal{Tok: p.bump()}, nil
	case token.LParen:
		lparen := p.bump()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expect(token.RParen)
		if err != nil {
			return nil, err
		}
		return &syntax.Paren{LParen: lparen, X: x, RParen: rparen}, nil
	default:
		return nil, errNoParse
	}
}

// parseType parses a type annotation: a dotted name with optional adjacent
// '!'/'?' marks. Generic or collection types fall outside the subset.
func (p *Parser) parseType() (syntax.Expr, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	var x syntax.Expr = &syntax.Ident{Tok: name}

	for {
		switch t := p.peek(); t.Kind {
		case token.Dot:
			dot := p.bump()
			part, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			x = &syntax.Member{X: x, Dot: dot, Name: part}
		case token.Bang, token.Question:
			if t.Span.Start != x.LastToken().Span.End {
				return x, nil
			}
			x = &syntax.Suffixed{X: x, Op: p.bump()}
		default:
			return x, nil
		}
	}
}
