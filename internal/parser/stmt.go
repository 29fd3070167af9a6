package parser

import (
	"unforce/internal/diag"
	"unforce/internal/syntax"
	"unforce/internal/token"
)

// parseBinding parses "let|var Name [: Type] = Expr [;]".
func (p *Parser) parseBinding() (syntax.Stmt, error) {
	intro := p.bump() // let or var

	name, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}

	b := &syntax.Binding{IntroKw: intro, Name: name}

	if p.at(token.Colon) {
		colon := p.bump()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		b.Colon = &colon
		b.Type = typ
	}

	if b.Assign, err = p.expect(token.Assign); err != nil {
		return nil, err
	}
	if b.Value, err = p.parseExpr(); err != nil {
		return nil, err
	}

	// A same-line semicolon is itself the boundary; the next statement may
	// continue on the same line.
	if p.at(token.Semicolon) && !p.peek().StartsLine() {
		semi := p.bump()
		b.Semi = &semi
	} else if !p.atStmtBoundary() {
		return nil, errNoParse
	}
	return b, nil
}

// parseDoCatch parses "do { ... }" followed by zero or more pattern-less
// "catch { ... }" clauses. A catch with a pattern fails the production so the
// whole statement lands in Raw.
func (p *Parser) parseDoCatch() (syntax.Stmt, error) {
	doKw := p.bump()
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	body := p.parseStmtList(true)
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		p.reportError(diag.SynUnclosedBrace, lbrace.Span, "unclosed '{' in do block")
		return nil, err
	}

	s := &syntax.DoCatch{DoKw: doKw, LBrace: lbrace, Body: body, RBrace: rbrace}

	for p.at(token.KwCatch) {
		if p.peekAt(1).Kind != token.LBrace {
			return nil, errNoParse
		}
		c := syntax.CatchClause{CatchKw: p.bump()}
		c.LBrace = p.bump()
		c.Body = p.parseStmtList(true)
		if c.RBrace, err = p.expect(token.RBrace); err != nil {
			p.reportError(diag.SynUnclosedBrace, c.LBrace.Span, "unclosed '{' in catch clause")
			return nil, err
		}
		s.Clauses = append(s.Clauses, c)
	}
	return s, nil
}

// parseRaw consumes a verbatim token run up to the next statement boundary,
// keeping bracket pairs together. It always consumes at least one token.
func (p *Parser) parseRaw() syntax.Stmt {
	var toks []token.Token
	depth := 0

	for {
		t := p.peek()
		if t.Kind == token.EOF {
			if depth > 0 {
				p.reportError(diag.SynUnclosedBrace, toks[len(toks)-1].Span, "unclosed delimiter at end of file")
			}
			break
		}
		if len(toks) > 0 && depth == 0 {
			if t.Kind == token.RBrace || t.StartsLine() {
				break
			}
		}

		switch t.Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.RBrace:
			// A stray '}' with no opener is swallowed so the parser
			// keeps making progress.
			if depth > 0 {
				depth--
			}
		}
		toks = append(toks, p.bump())

		if depth == 0 && toks[len(toks)-1].Kind == token.Semicolon {
			break
		}
	}

	return &syntax.Raw{Toks: toks}
}
