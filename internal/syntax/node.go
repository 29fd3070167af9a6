package syntax

import (
	"strings"

	"unforce/internal/source"
	"unforce/internal/token"
)

// Node is the common interface of statements and expressions.
type Node interface {
	// FirstToken returns the node's first token, leading trivia included.
	FirstToken() token.Token
	// LastToken returns the node's last token, trailing trivia included.
	LastToken() token.Token
	// write renders the node's tokens with their trivia.
	write(b *strings.Builder)
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Render renders a node to text, trivia included.
func Render(n Node) string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

// RenderStmts renders a statement list in order.
func RenderStmts(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		s.write(&b)
	}
	return b.String()
}

// Span returns the source range covered by the node's tokens, trivia
// excluded. Synthesized nodes yield an empty span.
func Span(n Node) source.Span {
	first := n.FirstToken()
	last := n.LastToken()
	return source.Span{
		File:  first.Span.File,
		Start: first.Span.Start,
		End:   last.Span.End,
	}
}

// EditSpan returns the byte range an edit replacing the node should cover:
// from the first leading piece after the last newline before the node (that
// is, the node's own line indentation) through the end of the last trailing
// piece. Only meaningful for parsed nodes with real spans.
func EditSpan(n Node) source.Span {
	first := n.FirstToken()
	last := n.LastToken()

	start := first.Span.Start
	for i := len(first.Leading) - 1; i >= 0; i-- {
		if first.Leading[i].Kind == token.TriviaNewline {
			break
		}
		start = first.Leading[i].Span.Start
	}

	end := last.Span.End
	if len(last.Trailing) > 0 {
		end = last.Trailing[len(last.Trailing)-1].Span.End
	}

	return source.Span{File: first.Span.File, Start: start, End: end}
}

// File is a parsed source file: a statement list plus the EOF token, whose
// leading trivia holds any file-final whitespace and comments.
type File struct {
	Stmts []Stmt
	EOF   token.Token
}

// Render renders the whole file, reproducing the original source exactly
// when the file came from the parser.
func (f *File) Render() string {
	var b strings.Builder
	for _, s := range f.Stmts {
		s.write(&b)
	}
	for _, p := range f.EOF.Leading {
		b.WriteString(p.Text)
	}
	return b.String()
}
