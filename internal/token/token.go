package token

import (
	"strings"

	"unforce/internal/source"
)

// Token represents a single source token with its location and attached
// trivia. Tokens are values: "modifying" one means copying it.
type Token struct {
	Kind     Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// New builds a synthesized token with no location.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// WithLeading returns a copy of the token with the given leading trivia.
func (t Token) WithLeading(pieces []Trivia) Token {
	t.Leading = pieces
	return t
}

// WithTrailing returns a copy of the token with the given trailing trivia.
func (t Token) WithTrailing(pieces []Trivia) Token {
	t.Trailing = pieces
	return t
}

// AppendTrailing returns a copy of the token with pieces appended to its
// trailing trivia. The original slice is never mutated.
func (t Token) AppendTrailing(pieces []Trivia) Token {
	if len(pieces) == 0 {
		return t
	}
	merged := make([]Trivia, 0, len(t.Trailing)+len(pieces))
	merged = append(merged, t.Trailing...)
	merged = append(merged, pieces...)
	t.Trailing = merged
	return t
}

// Write renders leading trivia, token text, and trailing trivia in order.
func (t Token) Write(b *strings.Builder) {
	for _, p := range t.Leading {
		b.WriteString(p.Text)
	}
	b.WriteString(t.Text)
	for _, p := range t.Trailing {
		b.WriteString(p.Text)
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwTry, KwDo, KwCatch, KwLet, KwVar, KwFunc, KwReturn, KwThrow,
		KwThrows, KwIf, KwElse, KwGuard, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a numeric, boolean, string, or nil
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// StartsLine reports whether the token is the first on its line, i.e. its
// leading trivia contains a newline (or the token opens the file).
func (t Token) StartsLine() bool {
	for _, p := range t.Leading {
		if p.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
