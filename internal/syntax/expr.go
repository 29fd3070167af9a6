package syntax

import (
	"strings"

	"unforce/internal/token"
)

// Ident is a bare identifier expression.
type Ident struct {
	Tok token.Token
}

func (e *Ident) exprNode()                 {}
func (e *Ident) FirstToken() token.Token   { return e.Tok }
func (e *Ident) LastToken() token.Token    { return e.Tok }
func (e *Ident) write(b *strings.Builder)  { e.Tok.Write(b) }

// Literal is an int, float, string, bool, or nil literal expression.
type Literal struct {
	Tok token.Token
}

func (e *Literal) exprNode()                {}
func (e *Literal) FirstToken() token.Token  { return e.Tok }
func (e *Literal) LastToken() token.Token   { return e.Tok }
func (e *Literal) write(b *strings.Builder) { e.Tok.Write(b) }

// Member is a dotted access: X.Name.
type Member struct {
	X    Expr
	Dot  token.Token
	Name token.Token
}

func (e *Member) exprNode()               {}
func (e *Member) FirstToken() token.Token { return e.X.FirstToken() }
func (e *Member) LastToken() token.Token  { return e.Name }
func (e *Member) write(b *strings.Builder) {
	e.X.write(b)
	e.Dot.Write(b)
	e.Name.Write(b)
}

// Arg is one call argument, optionally labeled, with its separating comma.
type Arg struct {
	Label *token.Token
	Colon *token.Token
	Value Expr
	Comma *token.Token
}

func (a Arg) write(b *strings.Builder) {
	if a.Label != nil {
		a.Label.Write(b)
	}
	if a.Colon != nil {
		a.Colon.Write(b)
	}
	a.Value.write(b)
	if a.Comma != nil {
		a.Comma.Write(b)
	}
}

// Call is a function or method call: Fn(Args...).
type Call struct {
	Fn     Expr
	LParen token.Token
	Args   []Arg
	RParen token.Token
}

func (e *Call) exprNode()               {}
func (e *Call) FirstToken() token.Token { return e.Fn.FirstToken() }
func (e *Call) LastToken() token.Token  { return e.RParen }
func (e *Call) write(b *strings.Builder) {
	e.Fn.write(b)
	e.LParen.Write(b)
	for _, a := range e.Args {
		a.write(b)
	}
	e.RParen.Write(b)
}

// Paren is a parenthesized expression.
type Paren struct {
	LParen token.Token
	X      Expr
	RParen token.Token
}

func (e *Paren) exprNode()               {}
func (e *Paren) FirstToken() token.Token { return e.LParen }
func (e *Paren) LastToken() token.Token  { return e.RParen }
func (e *Paren) write(b *strings.Builder) {
	e.LParen.Write(b)
	e.X.write(b)
	e.RParen.Write(b)
}

// Suffixed is an expression followed by an adjacent postfix '!' or '?':
// force-unwrap, optional chaining, or an optional type mark.
type Suffixed struct {
	X  Expr
	Op token.Token
}

func (e *Suffixed) exprNode()               {}
func (e *Suffixed) FirstToken() token.Token { return e.X.FirstToken() }
func (e *Suffixed) LastToken() token.Token  { return e.Op }
func (e *Suffixed) write(b *strings.Builder) {
	e.X.write(b)
	e.Op.Write(b)
}

// Try is a try expression with an optional force ('!') or optional-chaining
// ('?') marker directly after the keyword.
type Try struct {
	TryKw  token.Token
	Marker *token.Token // nil for plain 'try'
	X      Expr
}

func (e *Try) exprNode()               {}
func (e *Try) FirstToken() token.Token { return e.TryKw }
func (e *Try) LastToken() token.Token  { return e.X.LastToken() }
func (e *Try) write(b *strings.Builder) {
	e.TryKw.Write(b)
	if e.Marker != nil {
		e.Marker.Write(b)
	}
	e.X.write(b)
}

// WithoutMarker returns a copy of the try expression with the marker
// removed. The marker's trailing trivia is spliced onto the keyword's
// trailing trivia so no comment attached to the marker is lost.
func (e *Try) WithoutMarker() *Try {
	if e.Marker == nil {
		return e
	}
	return &Try{
		TryKw: e.TryKw.AppendTrailing(e.Marker.Trailing),
		X:     e.X,
	}
}
