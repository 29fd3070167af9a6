// Package testkit provides invariant checks shared by lexer, parser, and
// syntax tests.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"unforce/internal/source"
	"unforce/internal/syntax"
	"unforce/internal/token"
)

// CheckTokenInvariants runs a minimal set of token stream invariants:
// 1) the stream is non-empty and ends with EOF
// 2) every token span stays within file content bounds
// 3) concatenating leading trivia, token text, and trailing trivia over the
//    whole stream reproduces the file content byte for byte
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	if last := toks[len(toks)-1]; last.Kind != token.EOF {
		return fmt.Errorf("stream does not end with EOF: %v", last.Kind)
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var b strings.Builder
	prevEnd := uint32(0)
	for i, t := range toks {
		sp := t.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span points to different file id: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d has inverted span: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d overlaps previous token: start=%d prevEnd=%d", i, sp.Start, prevEnd)
		}
		prevEnd = sp.End
		t.Write(&b)
	}

	if got := b.String(); got != string(sf.Content) {
		return fmt.Errorf("render does not reproduce content:\n got %q\nwant %q", got, sf.Content)
	}
	return nil
}

// CheckStmtSpans verifies parsed statement spans against the source file:
// every span stays within content bounds, statements appear in source order,
// and the edit span of each statement contains its token span.
func CheckStmtSpans(stmts []syntax.Stmt, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	prevStart := uint32(0)
	for i, s := range stmts {
		sp := syntax.Span(s)
		if sp.File != sf.ID {
			return fmt.Errorf("stmt %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("stmt %d has inverted span: %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("stmt %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevStart {
			return fmt.Errorf("stmt %d out of source order: start=%d prev=%d", i, sp.Start, prevStart)
		}
		prevStart = sp.Start

		edit := syntax.EditSpan(s)
		if edit.Start > sp.Start || edit.End < sp.End {
			return fmt.Errorf("stmt %d edit span %v does not contain span %v", i, edit, sp)
		}
	}
	return nil
}
