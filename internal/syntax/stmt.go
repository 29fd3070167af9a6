package syntax

import (
	"strings"

	"unforce/internal/token"
)

// Binding is a let/var declaration with an initializer:
// let Name [: Type] = Value.
type Binding struct {
	IntroKw token.Token // let or var
	Name    token.Token
	Colon   *token.Token // nil without a type annotation
	Type    Expr         // nil without a type annotation
	Assign  token.Token
	Value   Expr
	Semi    *token.Token // nil without a trailing semicolon
}

func (s *Binding) stmtNode()               {}
func (s *Binding) FirstToken() token.Token { return s.IntroKw }
func (s *Binding) LastToken() token.Token {
	if s.Semi != nil {
		return *s.Semi
	}
	return s.Value.LastToken()
}
func (s *Binding) write(b *strings.Builder) {
	s.IntroKw.Write(b)
	s.Name.Write(b)
	if s.Colon != nil {
		s.Colon.Write(b)
	}
	if s.Type != nil {
		s.Type.write(b)
	}
	s.Assign.Write(b)
	s.Value.write(b)
	if s.Semi != nil {
		s.Semi.Write(b)
	}
}

// ExprStmt is a bare expression in statement position.
type ExprStmt struct {
	X    Expr
	Semi *token.Token
}

func (s *ExprStmt) stmtNode()               {}
func (s *ExprStmt) FirstToken() token.Token { return s.X.FirstToken() }
func (s *ExprStmt) LastToken() token.Token {
	if s.Semi != nil {
		return *s.Semi
	}
	return s.X.LastToken()
}
func (s *ExprStmt) write(b *strings.Builder) {
	s.X.write(b)
	if s.Semi != nil {
		s.Semi.Write(b)
	}
}

// CatchClause is one catch clause of a do statement. Only pattern-less
// clauses are structured; anything else falls back to Raw at parse time.
type CatchClause struct {
	CatchKw token.Token
	LBrace  token.Token
	Body    []Stmt
	RBrace  token.Token
}

func (c CatchClause) write(b *strings.Builder) {
	c.CatchKw.Write(b)
	c.LBrace.Write(b)
	for _, s := range c.Body {
		s.write(b)
	}
	c.RBrace.Write(b)
}

// DoCatch is a do block with catch clauses.
type DoCatch struct {
	DoKw    token.Token
	LBrace  token.Token
	Body    []Stmt
	RBrace  token.Token
	Clauses []CatchClause
}

func (s *DoCatch) stmtNode()               {}
func (s *DoCatch) FirstToken() token.Token { return s.DoKw }
func (s *DoCatch) LastToken() token.Token {
	if len(s.Clauses) > 0 {
		return s.Clauses[len(s.Clauses)-1].RBrace
	}
	return s.RBrace
}
func (s *DoCatch) write(b *strings.Builder) {
	s.DoKw.Write(b)
	s.LBrace.Write(b)
	for _, st := range s.Body {
		st.write(b)
	}
	s.RBrace.Write(b)
	for _, c := range s.Clauses {
		c.write(b)
	}
}

// Raw is a verbatim token run for a statement outside the subset.
// It renders losslessly but carries no structure.
type Raw struct {
	Toks []token.Token
}

func (s *Raw) stmtNode() {}
func (s *Raw) FirstToken() token.Token {
	if len(s.Toks) == 0 {
		return token.Token{}
	}
	return s.Toks[0]
}
func (s *Raw) LastToken() token.Token {
	if len(s.Toks) == 0 {
		return token.Token{}
	}
	return s.Toks[len(s.Toks)-1]
}
func (s *Raw) write(b *strings.Builder) {
	for _, tk := range s.Toks {
		tk.Write(b)
	}
}
