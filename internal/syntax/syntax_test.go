package syntax_test

import (
	"testing"

	"unforce/internal/syntax"
	"unforce/internal/token"
)

func ident(text string) *syntax.Ident {
	return &syntax.Ident{Tok: token.New(token.Ident, text)}
}

func call(name string) *syntax.Call {
	return &syntax.Call{
		Fn:     ident(name),
		LParen: token.New(token.LParen, "("),
		RParen: token.New(token.RParen, ")"),
	}
}

func TestRenderCall(t *testing.T) {
	c := &syntax.Call{
		Fn:     ident("load"),
		LParen: token.New(token.LParen, "("),
		Args: []syntax.Arg{{
			Value: &syntax.Literal{Tok: token.New(token.StringLit, `"x"`)},
		}},
		RParen: token.New(token.RParen, ")"),
	}
	if got := syntax.Render(c); got != `load("x")` {
		t.Fatalf("render: %q", got)
	}
}

func TestTryWithoutMarkerSplicesTrailing(t *testing.T) {
	marker := token.New(token.Bang, "!").WithTrailing([]token.Trivia{
		token.Spaces(1),
		{Kind: token.TriviaLineComment, Text: "// risky"},
	})
	try := &syntax.Try{
		TryKw:  token.New(token.KwTry, "try"),
		Marker: &marker,
		X:      call("f"),
	}

	stripped := try.WithoutMarker()
	if stripped.Marker != nil {
		t.Fatalf("marker must be removed")
	}
	if got := syntax.Render(stripped); got != "try // riskyf()" {
		t.Fatalf("spliced render: %q", got)
	}
	// The original is untouched.
	if try.Marker == nil || len(try.TryKw.Trailing) != 0 {
		t.Fatalf("original try mutated")
	}
}

func TestStmtWithLeadingSharesUnchangedChildren(t *testing.T) {
	value := call("f")
	orig := &syntax.Binding{
		IntroKw: token.New(token.KwLet, "let").WithTrailing([]token.Trivia{token.Spaces(1)}),
		Name:    token.New(token.Ident, "x").WithTrailing([]token.Trivia{token.Spaces(1)}),
		Assign:  token.New(token.Assign, "=").WithTrailing([]token.Trivia{token.Spaces(1)}),
		Value:   value,
	}

	updated := syntax.StmtWithLeading(orig, []token.Trivia{token.Spaces(4)})
	ub, ok := updated.(*syntax.Binding)
	if !ok {
		t.Fatalf("expected *Binding, got %T", updated)
	}
	if token.TriviaText(ub.IntroKw.Leading) != "    " {
		t.Fatalf("leading not applied: %q", token.TriviaText(ub.IntroKw.Leading))
	}
	if len(orig.IntroKw.Leading) != 0 {
		t.Fatalf("original mutated")
	}
	if ub.Value != value {
		t.Fatalf("unchanged child must be shared")
	}
	if got := syntax.Render(updated); got != "    let x = f()" {
		t.Fatalf("render: %q", got)
	}
}

func TestTopTryAndReplace(t *testing.T) {
	try := &syntax.Try{
		TryKw: token.New(token.KwTry, "try").WithTrailing([]token.Trivia{token.Spaces(1)}),
		X:     call("f"),
	}
	stmt := &syntax.ExprStmt{X: try}

	got, ok := syntax.TopTry(stmt)
	if !ok || got != try {
		t.Fatalf("TopTry must find the top-level try")
	}

	replaced := syntax.ReplaceTopTry(stmt, try.WithoutMarker())
	if replaced == syntax.Stmt(stmt) {
		t.Fatalf("replacement must copy the statement")
	}
	if _, ok := syntax.TopTry(replaced); !ok {
		t.Fatalf("replacement lost the try expression")
	}
}
