// Package parser builds a lossless statement tree from a token stream.
//
// The grammar is a small structural subset: bindings, do/catch blocks, and a
// core expression language (identifiers, literals, member access, calls,
// parens, try with markers, postfix '!'/'?'). Anything outside the subset is
// captured verbatim as a Raw statement, so rendering the tree always
// reproduces the input byte for byte.
package parser

import (
	"errors"

	"unforce/internal/diag"
	"unforce/internal/source"
	"unforce/internal/syntax"
	"unforce/internal/token"
)

// errNoParse signals a backtrack: the candidate production did not match.
var errNoParse = errors.New("no parse")

// Options configures a parse.
type Options struct {
	Reporter diag.Reporter // may be nil
}

// Parser is an index-based recursive descent parser over a pre-tokenized
// file. Failed productions reset the index and fall back to Raw.
type Parser struct {
	toks []token.Token
	pos  int
	opts Options
}

// New creates a parser over toks, which must end with an EOF token.
func New(toks []token.Token, opts Options) *Parser {
	return &Parser{toks: toks, opts: opts}
}

// Parse consumes the whole token stream and returns the file tree.
func (p *Parser) Parse() *syntax.File {
	stmts := p.parseStmtList(false)
	return &syntax.File{Stmts: stmts, EOF: p.peek()}
}

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos+n]
}

func (p *Parser) bump() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

// expect consumes a token of the given kind or fails the production.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if !p.at(k) {
		return token.Token{}, errNoParse
	}
	return p.bump(), nil
}

// atStmtBoundary reports whether the current position can legally end a
// statement: end of input, a closing brace or catch keyword belonging to the
// enclosing block, or a token that starts a new line.
func (p *Parser) atStmtBoundary() bool {
	t := p.peek()
	switch t.Kind {
	case token.EOF, token.RBrace, token.KwCatch:
		return true
	}
	return t.StartsLine()
}

// parseStmtList parses statements until EOF, or until a closing brace when
// insideBraces is set. The brace itself is left for the caller.
func (p *Parser) parseStmtList(insideBraces bool) []syntax.Stmt {
	var stmts []syntax.Stmt
	for {
		if p.at(token.EOF) {
			return stmts
		}
		if insideBraces && p.at(token.RBrace) {
			return stmts
		}
		stmts = append(stmts, p.parseStmt())
	}
}

// parseStmt tries each structured production in order and falls back to a
// raw token run.
func (p *Parser) parseStmt() syntax.Stmt {
	mark := p.pos

	if p.at(token.KwDo) && p.peekAt(1).Kind == token.LBrace {
		if s, err := p.parseDoCatch(); err == nil {
			return s
		}
		p.pos = mark
	}

	if p.at(token.KwLet) || p.at(token.KwVar) {
		if s, err := p.parseBinding(); err == nil {
			return s
		}
		p.pos = mark
	}

	if s, err := p.parseExprStmt(); err == nil {
		return s
	}
	p.pos = mark

	return p.parseRaw()
}

func (p *Parser) parseExprStmt() (syntax.Stmt, error) {
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	stmt := &syntax.ExprStmt{X: x}
	if p.at(token.Semicolon) && !p.peek().StartsLine() {
		semi := p.bump()
		stmt.Semi = &semi
	} else if !p.atStmtBoundary() {
		return nil, errNoParse
	}
	return stmt, nil
}

func (p *Parser) reportError(code diag.Code, span source.Span, msg string) {
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, span, msg).Emit()
	}
}

// Parse tokenizes nothing itself; callers lex first and hand the tokens in.
func Parse(toks []token.Token, opts Options) *syntax.File {
	return New(toks, opts).Parse()
}
