package lexer

import (
	"unforce/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies keywords.
// Token.Text is exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start)}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}
	return token.Token{Kind: token.LookupKeyword(text), Span: sp, Text: text}
}

// scanNumber scans decimal integer and float literals, underscores allowed.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	digits := func() {
		for {
			b := lx.cursor.Peek()
			if !isDec(b) && b != '_' {
				return
			}
			lx.cursor.Bump()
		}
	}

	digits()
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		digits()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanString scans a double-quoted string literal with backslash escapes.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	terminated := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == '"' {
			terminated = true
			break
		}
		if b == '\n' {
			// Strings do not span lines; back off the newline.
			lx.cursor.Off--
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.report("unterminated-string", sp, "unterminated string literal")
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}
	return token.Token{
		Kind: token.StringLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanPlaceholder scans an editor placeholder token: <# ... #>.
func (lx *Lexer) scanPlaceholder() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '#'

	closed := false
	for !lx.cursor.EOF() {
		if lx.try2('#', '>') {
			closed = true
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report("unterminated-placeholder", sp, "unterminated editor placeholder")
		return token.Token{
			Kind: token.Invalid,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}
	return token.Token{
		Kind: token.Placeholder,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

// scanOperatorOrPunct scans punctuation and operators, greedy first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	make1 := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '<' && b1 == '#' {
		return lx.scanPlaceholder()
	}

	switch {
	case lx.try2('-', '>'):
		return make1(token.Arrow)
	case lx.try2('=', '='):
		return make1(token.EqEq)
	case lx.try2('!', '='):
		return make1(token.BangEq)
	case lx.try2('&', '&'):
		return make1(token.AndAnd)
	case lx.try2('|', '|'):
		return make1(token.OrOr)
	case lx.try2('?', '?'):
		return make1(token.QuestionQuestion)
	}

	b := lx.cursor.Bump()
	switch b {
	case '!':
		return make1(token.Bang)
	case '?':
		return make1(token.Question)
	case '.':
		return make1(token.Dot)
	case ',':
		return make1(token.Comma)
	case ':':
		return make1(token.Colon)
	case ';':
		return make1(token.Semicolon)
	case '=':
		return make1(token.Assign)
	case '(':
		return make1(token.LParen)
	case ')':
		return make1(token.RParen)
	case '{':
		return make1(token.LBrace)
	case '}':
		return make1(token.RBrace)
	case '[':
		return make1(token.LBracket)
	case ']':
		return make1(token.RBracket)
	case '&':
		return make1(token.Amp)
	case '+':
		return make1(token.Plus)
	case '-':
		return make1(token.Minus)
	case '*':
		return make1(token.Star)
	case '/':
		return make1(token.Slash)
	case '%':
		return make1(token.Percent)
	case '<':
		return make1(token.Lt)
	case '>':
		return make1(token.Gt)
	case '@':
		return make1(token.At)
	}

	tok := make1(token.Invalid)
	lx.report("unknown-char", tok.Span, "unknown character "+tok.Text)
	return tok
}
