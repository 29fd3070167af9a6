package syntax

import (
	"unforce/internal/token"
)

// StmtWithLeading returns a copy of the statement whose first token carries
// the given leading trivia. Everything not on the path to the first token is
// shared with the original.
func StmtWithLeading(s Stmt, pieces []token.Trivia) Stmt {
	return StmtWithFirstToken(s, func(t token.Token) token.Token {
		return t.WithLeading(pieces)
	})
}

// StmtWithFirstToken returns a copy of the statement with f applied to its
// first token.
func StmtWithFirstToken(s Stmt, f func(token.Token) token.Token) Stmt {
	switch n := s.(type) {
	case *Binding:
		out := *n
		out.IntroKw = f(out.IntroKw)
		return &out
	case *ExprStmt:
		out := *n
		out.X = exprWithFirstToken(out.X, f)
		return &out
	case *DoCatch:
		out := *n
		out.DoKw = f(out.DoKw)
		return &out
	case *Raw:
		if len(n.Toks) == 0 {
			return n
		}
		toks := make([]token.Token, len(n.Toks))
		copy(toks, n.Toks)
		toks[0] = f(toks[0])
		return &Raw{Toks: toks}
	default:
		return s
	}
}

// exprWithFirstToken returns a copy of the expression with f applied to its
// first token, copying only the spine down to it.
func exprWithFirstToken(e Expr, f func(token.Token) token.Token) Expr {
	switch n := e.(type) {
	case *Ident:
		out := *n
		out.Tok = f(out.Tok)
		return &out
	case *Literal:
		out := *n
		out.Tok = f(out.Tok)
		return &out
	case *Member:
		out := *n
		out.X = exprWithFirstToken(out.X, f)
		return &out
	case *Call:
		out := *n
		out.Fn = exprWithFirstToken(out.Fn, f)
		return &out
	case *Paren:
		out := *n
		out.LParen = f(out.LParen)
		return &out
	case *Suffixed:
		out := *n
		out.X = exprWithFirstToken(out.X, f)
		return &out
	case *Try:
		out := *n
		out.TryKw = f(out.TryKw)
		return &out
	default:
		return e
	}
}

// TopTry returns the try expression sitting at the top of the statement's
// value position, if any: the initializer of a binding or the expression of
// an expression statement.
func TopTry(s Stmt) (*Try, bool) {
	switch n := s.(type) {
	case *Binding:
		if t, ok := n.Value.(*Try); ok {
			return t, true
		}
	case *ExprStmt:
		if t, ok := n.X.(*Try); ok {
			return t, true
		}
	}
	return nil, false
}

// ReplaceTopTry returns a copy of the statement with its top-level try
// expression swapped for repl. Statements without one come back unchanged.
func ReplaceTopTry(s Stmt, repl Expr) Stmt {
	switch n := s.(type) {
	case *Binding:
		if _, ok := n.Value.(*Try); ok {
			out := *n
			out.Value = repl
			return &out
		}
	case *ExprStmt:
		if _, ok := n.X.(*Try); ok {
			out := *n
			out.X = repl
			return &out
		}
	}
	return s
}
