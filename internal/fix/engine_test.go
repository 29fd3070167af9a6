package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"unforce/internal/diag"
	"unforce/internal/source"
)

func loadTemp(t *testing.T, content string) (*source.FileSet, source.FileID, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.swift")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, id, path
}

func replaceDiag(id source.FileID, start, end uint32, newText, guard, fixID string) diag.Diagnostic {
	span := source.Span{File: id, Start: start, End: end}
	return diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.RefactorForceTry,
		Message:  "force try traps on error",
		Primary:  span,
		Fixes: []diag.Fix{
			ReplaceSpan("replace", span, newText, guard, WithID(fixID)),
		},
	}
}

func TestApplyAllWritesFile(t *testing.T) {
	src := "let a = try! f()\nlet b = try! g()\n"
	fs, id, path := loadTemp(t, src)

	diagnostics := []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
		replaceDiag(id, 25, 29, "try", "try!", "fix-b"),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(result.Applied) != 2 {
		t.Fatalf("applied = %d, want 2", len(result.Applied))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "let a = try f()\nlet b = try g()\n"
	if string(got) != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
	if len(result.FileChanges) != 1 || result.FileChanges[0].EditCount != 2 {
		t.Fatalf("file changes = %+v", result.FileChanges)
	}
}

func TestApplyOncePicksFirstInFileOrder(t *testing.T) {
	src := "let a = try! f()\nlet b = try! g()\n"
	fs, id, path := loadTemp(t, src)

	// Listed out of order; selection must still pick the earlier span.
	diagnostics := []diag.Diagnostic{
		replaceDiag(id, 25, 29, "try", "try!", "fix-b"),
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0].ID != "fix-a" {
		t.Fatalf("applied = %+v", result.Applied)
	}

	got, _ := os.ReadFile(path)
	want := "let a = try f()\nlet b = try! g()\n"
	if string(got) != want {
		t.Fatalf("file = %q", got)
	}
}

func TestApplyModeSetSelectsByID(t *testing.T) {
	src := "let a = try! f()\nlet b = try! g()\n"
	fs, id, path := loadTemp(t, src)

	diagnostics := []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
		replaceDiag(id, 25, 29, "try", "try!", "fix-b"),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{
		Mode:      ApplyModeSet,
		TargetIDs: []string{"fix-b", "fix-missing"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0].ID != "fix-b" {
		t.Fatalf("applied = %+v", result.Applied)
	}
	foundMissing := false
	for _, s := range result.Skipped {
		if s.ID == "fix-missing" && s.Reason == "fix id not found" {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Fatalf("missing id not reported: %+v", result.Skipped)
	}

	got, _ := os.ReadFile(path)
	want := "let a = try! f()\nlet b = try g()\n"
	if string(got) != want {
		t.Fatalf("file = %q", got)
	}
}

func TestDryRunLeavesFileAlone(t *testing.T) {
	src := "let a = try! f()\n"
	fs, id, path := loadTemp(t, src)

	result, err := Apply(fs, []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
	}, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("applied = %d", len(result.Applied))
	}

	got, _ := os.ReadFile(path)
	if string(got) != src {
		t.Fatalf("dry run modified file: %q", got)
	}
}

func TestBackupSuffixKeepsOriginal(t *testing.T) {
	src := "let a = try! f()\n"
	fs, id, path := loadTemp(t, src)

	_, err := Apply(fs, []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
	}, ApplyOptions{Mode: ApplyModeAll, BackupSuffix: ".bak"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	backup, err := os.ReadFile(path + ".bak")
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != src {
		t.Fatalf("backup = %q, want original", backup)
	}
}

func TestGuardMismatchSkipsFix(t *testing.T) {
	src := "let a = try! f()\n"
	fs, id, path := loadTemp(t, src)

	result, err := Apply(fs, []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "stale text", "fix-a"),
	}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "existing text does not match expected content" {
		t.Fatalf("skipped = %+v", result.Skipped)
	}

	got, _ := os.ReadFile(path)
	if string(got) != src {
		t.Fatalf("file changed despite guard: %q", got)
	}
}

func TestOverlappingFixesConflict(t *testing.T) {
	src := "let a = try! f()\n"
	fs, id, _ := loadTemp(t, src)

	diagnostics := []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
		replaceDiag(id, 8, 16, "try f()", "try! f()", "fix-overlap"),
	}

	result, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(result.Applied) != 1 {
		t.Fatalf("applied = %d, want 1", len(result.Applied))
	}
	if len(result.Skipped) != 1 || result.Skipped[0].ID != "fix-overlap" {
		t.Fatalf("skipped = %+v", result.Skipped)
	}
}

func TestVirtualFileIsSkipped(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.swift", []byte("let a = try! f()\n"))

	result, err := Apply(fs, []diag.Diagnostic{
		replaceDiag(id, 8, 12, "try", "try!", "fix-a"),
	}, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", result.Skipped)
	}
}

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.swift", []byte(""))
	span := source.Span{File: fileID, Start: 0, End: 0}

	diagnostics := []diag.Diagnostic{{
		Code:    diag.RefactorForceTry,
		Message: "force try traps on error",
		Primary: span,
		Fixes: []diag.Fix{
			{
				ID:    "fix-duplicate",
				Title: "rewrite",
				Edits: []diag.TextEdit{{Span: span, NewText: "x"}},
			},
			{
				ID:    "fix-duplicate",
				Title: "rewrite again",
				Edits: []diag.TextEdit{{Span: span, NewText: "x"}},
			},
		},
	}}

	ctx := diag.FixBuildContext{FileSet: fs}
	candidates, skips := gatherCandidates(ctx, diagnostics)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if len(skips) != 1 || skips[0].Reason != "duplicate fix id" {
		t.Fatalf("skips = %+v", skips)
	}
}

func TestRewriteSpanBuildsLazily(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.swift", []byte("try! f()\n"))
	span := source.Span{File: id, Start: 0, End: 8}

	built := 0
	f := RewriteSpan("rewrite", span, "try! f()", func(diag.FixBuildContext) (string, error) {
		built++
		return "do { try f() } catch { }", nil
	}, WithID("fix-lazy"), Preferred())

	if built != 0 {
		t.Fatalf("render ran eagerly")
	}
	resolved, err := diag.MaterializeFixes(diag.FixBuildContext{FileSet: fs}, []diag.Fix{f})
	if err != nil {
		t.Fatal(err)
	}
	if built != 1 || len(resolved[0].Edits) != 1 {
		t.Fatalf("built=%d edits=%d", built, len(resolved[0].Edits))
	}
	if resolved[0].Edits[0].OldText != "try! f()" {
		t.Fatalf("guard = %q", resolved[0].Edits[0].OldText)
	}
}
