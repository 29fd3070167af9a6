package lexer

import (
	"unforce/internal/token"
)

// collectTrivia consumes trivia pieces in canonical shape:
//   - a run of ' ' becomes one TriviaSpace piece
//   - each '\t' is its own TriviaTab piece
//   - each '\n' is its own TriviaNewline piece
//   - //... up to \n is a TriviaLineComment
//   - /* ... */ is a TriviaBlockComment (nesting supported; unterminated
//     comments are reported and cut at EOF)
//
// Tabs and newlines stay single pieces so that indentation prefixes can be
// diffed piece-by-piece later. With stopAtNewline set (trailing position)
// collection stops before the first '\n', which then opens the next token's
// leading trivia.
func (lx *Lexer) collectTrivia(stopAtNewline bool) []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' {
			for lx.cursor.Peek() == ' ' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			out = append(out, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\t' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			out = append(out, token.Trivia{Kind: token.TriviaTab, Span: sp, Text: "\t"})
			continue
		}

		if b == '\n' {
			if stopAtNewline {
				break
			}
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			out = append(out, token.Trivia{Kind: token.TriviaNewline, Span: sp, Text: "\n"})
			continue
		}

		if b == '/' {
			if piece, ok := lx.scanComment(); ok {
				out = append(out, piece)
				continue
			}
		}

		break
	}
	return out
}

// scanComment scans //... or /*...*/ starting at '/'. Returns false when the
// slash is an operator, leaving the cursor untouched.
func (lx *Lexer) scanComment() (token.Trivia, bool) {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return token.Trivia{}, false
	}

	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Trivia{
			Kind: token.TriviaLineComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true

	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if depth > 0 {
			lx.report("unterminated-block-comment", sp, "unterminated block comment")
		}
		return token.Trivia{
			Kind: token.TriviaBlockComment,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true

	default:
		// Not a comment; rewind so '/' scans as an operator.
		lx.cursor.Reset(start)
		return token.Trivia{}, false
	}
}
