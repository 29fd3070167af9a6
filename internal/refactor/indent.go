package refactor

import (
	"fmt"

	"unforce/internal/source"
	"unforce/internal/token"
)

// IndentUnit is one nesting level of indentation: a single tab, or a run of
// spaces of the given width.
type IndentUnit struct {
	Tab   bool
	Width int
}

// DefaultIndentUnit is used when a file offers no indentation sample.
func DefaultIndentUnit() IndentUnit {
	return IndentUnit{Width: 2}
}

// Pieces returns the trivia pieces that render one unit of indentation.
func (u IndentUnit) Pieces() []token.Trivia {
	if u.Tab {
		return []token.Trivia{token.Tab()}
	}
	return []token.Trivia{token.Spaces(u.Width)}
}

func (u IndentUnit) String() string {
	if u.Tab {
		return "tab"
	}
	return fmt.Sprintf("%d spaces", u.Width)
}

// InferIndentUnit derives the file's indentation unit by scanning its lines
// for the smallest non-empty leading whitespace run. A tab-indented line
// anywhere wins over spaces. Files with no indented line fall back to the
// default of 2 spaces.
func InferIndentUnit(file *source.File) IndentUnit {
	if file == nil {
		return DefaultIndentUnit()
	}

	minSpaces := 0
	atLineStart := true
	spaces := 0
	for i := 0; i < len(file.Content); i++ {
		c := file.Content[i]
		switch {
		case c == '\n':
			atLineStart = true
			spaces = 0
		case !atLineStart:
			// mid-line, skip
		case c == '\t' && spaces == 0:
			return IndentUnit{Tab: true}
		case c == ' ':
			spaces++
		default:
			if spaces > 0 && (minSpaces == 0 || spaces < minSpaces) {
				minSpaces = spaces
			}
			atLineStart = false
			spaces = 0
		}
	}

	if minSpaces == 0 {
		return DefaultIndentUnit()
	}
	return IndentUnit{Width: minSpaces}
}

// LineIndentation returns the exact whitespace pieces at the start of the
// line holding the token: the leading pieces after the last newline, up to
// the first non-whitespace piece. Empty when the token starts its line flush
// left or opens the file.
func LineIndentation(tok token.Token) []token.Trivia {
	start := 0
	for i, p := range tok.Leading {
		if p.Kind == token.TriviaNewline {
			start = i + 1
		}
	}

	var out []token.Trivia
	for _, p := range tok.Leading[start:] {
		if p.Kind != token.TriviaSpace && p.Kind != token.TriviaTab {
			break
		}
		out = append(out, p)
	}
	return out
}

// sameLinePieces returns the leading pieces after the last newline: the
// token's own-line prefix, indentation and any same-line comments included.
func sameLinePieces(leading []token.Trivia) []token.Trivia {
	start := 0
	for i, p := range leading {
		if p.Kind == token.TriviaNewline {
			start = i + 1
		}
	}
	return leading[start:]
}

// stripIndentPrefix removes exactly one base prefix from pieces, comparing
// piece-by-piece for identical text and stopping at the first mismatch.
// Mixed or non-uniform indentation therefore leaves its residue in place
// rather than erroring.
func stripIndentPrefix(pieces, base []token.Trivia) []token.Trivia {
	i := 0
	for i < len(base) && i < len(pieces) &&
		pieces[i].Kind == base[i].Kind && pieces[i].Text == base[i].Text {
		i++
	}
	return pieces[i:]
}

// joinIndent concatenates trivia runs, merging adjacent space pieces so the
// result keeps the canonical one-piece-per-space-run shape.
func joinIndent(runs ...[]token.Trivia) []token.Trivia {
	var out []token.Trivia
	for _, run := range runs {
		for _, p := range run {
			if p.Kind == token.TriviaSpace && len(out) > 0 &&
				out[len(out)-1].Kind == token.TriviaSpace {
				merged := out[len(out)-1]
				merged.Text += p.Text
				merged.Span = source.Span{}
				out[len(out)-1] = merged
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
