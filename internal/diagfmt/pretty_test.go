package diagfmt

import (
	"strings"
	"testing"

	"unforce/internal/diag"
	"unforce/internal/source"
)

func testBag(fs *source.FileSet) (*diag.Bag, source.Span) {
	id := fs.AddVirtual("demo.swift", []byte("let a = try! f()\n"))
	span := source.Span{File: id, Start: 8, End: 12}

	bag := diag.NewBag(0)
	d := diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.RefactorForceTry,
		Message:  "force try traps on error",
		Primary:  span,
		Notes:    []diag.Note{{Span: span, Msg: "consider handling the error"}},
	}
	d = d.WithFixSuggestion(diag.Fix{
		ID:          "fix-1",
		Title:       "Convert 'try!' to do/catch",
		Kind:        diag.FixKindRefactorRewrite,
		IsPreferred: true,
		Edits: []diag.TextEdit{{
			Span:    span,
			NewText: "try",
			OldText: "try!",
		}},
	})
	bag.Add(d)
	return bag, span
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true})
	out := sb.String()

	if !strings.Contains(out, "demo.swift:1:9: INFO RFX0001: force try traps on error") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "let a = try! f()") {
		t.Fatalf("source line missing:\n%s", out)
	}
	if !strings.Contains(out, "        ^~~~") {
		t.Fatalf("caret misaligned:\n%s", out)
	}
	if !strings.Contains(out, "note: consider handling the error") {
		t.Fatalf("note missing:\n%s", out)
	}
	if !strings.Contains(out, "fix [fix-1] *: Convert 'try!' to do/catch") {
		t.Fatalf("fix line missing:\n%s", out)
	}
}

func TestPrettyPreviewShowsBeforeAfter(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowFixes: true, ShowPreview: true})
	out := sb.String()

	if !strings.Contains(out, "- let a = try! f()") {
		t.Fatalf("before line missing:\n%s", out)
	}
	if !strings.Contains(out, "+ let a = try f()") {
		t.Fatalf("after line missing:\n%s", out)
	}
}

func TestPrettyWithoutColorHasNoEscapes(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Color: false})
	if strings.Contains(sb.String(), "\x1b[") {
		t.Fatalf("escape codes leaked:\n%q", sb.String())
	}
}
