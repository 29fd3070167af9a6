package lexer

import (
	"unforce/internal/source"
	"unforce/internal/token"
)

// Lexer produces significant tokens with leading and trailing trivia
// attached, so that the token stream is a lossless view of the file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. Leading trivia covers everything
// since the previous token's trailing trivia ended; trailing trivia runs to
// the end of the token's line, not including the newline. After EOF it keeps
// returning EOF; the EOF token's leading trivia holds any file-final trivia.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	leading := lx.collectTrivia(false)

	if lx.cursor.EOF() {
		return token.Token{
			Kind:    token.EOF,
			Span:    lx.emptySpan(),
			Leading: leading,
		}
	}

	var tok token.Token
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = leading
	tok.Trailing = lx.collectTrivia(true)
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize drains the lexer into a slice ending with the EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
