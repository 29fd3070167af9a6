package refactor

import (
	"strconv"

	"unforce/internal/syntax"
	"unforce/internal/token"
)

// PlaceholderText is the editor placeholder emitted as the catch body.
const PlaceholderText = "<#code#>"

// ForceTryRule rewrites a statement whose value is a force-try expression
// ("try! expr") into an explicit do/catch block:
//
//	do {
//	    <stmt with plain try>
//	} catch {
//	    <#code#>
//	}
//
// The block reuses the statement's own line indentation and the file's
// indentation unit, and every comment in the input survives the rewrite.
type ForceTryRule struct{}

func (ForceTryRule) ID() string { return "force-try-to-do-catch" }

func (ForceTryRule) Title() string { return "Convert 'try!' to do/catch" }

// Check succeeds only for statements whose top-level try expression carries
// the force marker.
func (ForceTryRule) Check(s syntax.Stmt) error {
	try, ok := syntax.TopTry(s)
	if !ok {
		return NotApplicable("statement has no top-level try expression")
	}
	if try.Marker == nil {
		return NotApplicable("plain 'try' already propagates its error")
	}
	switch try.Marker.Kind {
	case token.Bang:
		return nil
	case token.Question:
		return NotApplicable("'try?' converts the error to an optional instead of trapping")
	default:
		return NotApplicable("unrecognized try marker " + strconv.Quote(try.Marker.Text))
	}
}

// Build constructs the replacement do/catch block. It never mutates s.
func (r ForceTryRule) Build(s syntax.Stmt, ctx RewriteContext) []syntax.Stmt {
	try, ok := syntax.TopTry(s)
	if !ok || try.Marker == nil {
		// Unreachable once Check has passed.
		return []syntax.Stmt{s}
	}

	inner := syntax.ReplaceTopTry(s, try.WithoutMarker())
	innerIndent := joinIndent(ctx.BaseIndent, ctx.Unit.Pieces())

	// Re-home the statement one level deeper: drop everything before its own
	// line, strip exactly one baseIndent prefix, and indent the remainder at
	// baseIndent+unit. Same-line comments ahead of the statement ride along.
	inner = syntax.StmtWithFirstToken(inner, func(t token.Token) token.Token {
		rest := stripIndentPrefix(sameLinePieces(t.Leading), ctx.BaseIndent)
		leading := []token.Trivia{token.Newline()}
		leading = append(leading, joinIndent(innerIndent, rest)...)
		return t.WithLeading(leading)
	})

	placeholder := &syntax.ExprStmt{
		X: &syntax.Literal{
			Tok: token.New(token.Placeholder, PlaceholderText).
				WithLeading(prefixNewline(innerIndent)),
		},
	}

	block := &syntax.DoCatch{
		DoKw: token.New(token.KwDo, "do").
			WithLeading(ctx.BaseIndent).
			WithTrailing([]token.Trivia{token.Spaces(1)}),
		LBrace: token.New(token.LBrace, "{"),
		Body:   []syntax.Stmt{inner},
		RBrace: token.New(token.RBrace, "}").
			WithLeading(prefixNewline(ctx.BaseIndent)).
			WithTrailing([]token.Trivia{token.Spaces(1)}),
		Clauses: []syntax.CatchClause{{
			CatchKw: token.New(token.KwCatch, "catch").
				WithTrailing([]token.Trivia{token.Spaces(1)}),
			LBrace: token.New(token.LBrace, "{"),
			Body:   []syntax.Stmt{placeholder},
			RBrace: token.New(token.RBrace, "}").
				WithLeading(prefixNewline(ctx.BaseIndent)),
		}},
	}

	return []syntax.Stmt{block}
}

func prefixNewline(indent []token.Trivia) []token.Trivia {
	out := make([]token.Trivia, 0, len(indent)+1)
	out = append(out, token.Newline())
	return append(out, indent...)
}
