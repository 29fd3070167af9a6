package token

import (
	"strings"

	"unforce/internal/source"
)

// TriviaKind tags one formatting piece attached to a token.
type TriviaKind uint8

const (
	// TriviaSpace is a run of one or more ' ' characters.
	TriviaSpace TriviaKind = iota
	// TriviaTab is a single '\t'.
	TriviaTab
	// TriviaNewline is a single '\n'.
	TriviaNewline
	// TriviaLineComment is a '//' comment up to (not including) the newline.
	TriviaLineComment
	// TriviaBlockComment is a '/* ... */' comment, nesting allowed.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaTab:
		return "Tab"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(?)"
}

// Trivia is one non-semantic formatting piece: whitespace, a newline, or a
// comment. Pieces compare by exact text when indentation prefixes are diffed.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the piece is a line or block comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment
}

// IsWhitespace reports whether the piece is a space run, tab, or newline.
func (t Trivia) IsWhitespace() bool {
	return t.Kind == TriviaSpace || t.Kind == TriviaTab || t.Kind == TriviaNewline
}

// Spaces builds a space-run piece of the given width.
func Spaces(n int) Trivia {
	return Trivia{Kind: TriviaSpace, Text: strings.Repeat(" ", n)}
}

// Tab builds a single-tab piece.
func Tab() Trivia {
	return Trivia{Kind: TriviaTab, Text: "\t"}
}

// Newline builds a single-newline piece.
func Newline() Trivia {
	return Trivia{Kind: TriviaNewline, Text: "\n"}
}

// TriviaText concatenates the literal text of all pieces.
func TriviaText(pieces []Trivia) string {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Comments returns the comment pieces in order.
func Comments(pieces []Trivia) []Trivia {
	var out []Trivia
	for _, p := range pieces {
		if p.IsComment() {
			out = append(out, p)
		}
	}
	return out
}
