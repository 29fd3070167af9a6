package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"unforce/internal/diag"
	"unforce/internal/fix"
	"unforce/internal/source"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestScanFileFindsForceTry(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.swift", []byte(
		"let a = try! load()\n"+
			"let b = try? load()\n"+
			"do {\n"+
			"    let c = try! nested()\n"+
			"} catch {\n"+
			"    print(error)\n"+
			"}\n"))

	result := ScanFile(fs, id, Options{})
	if result.Matches != 2 {
		t.Fatalf("matches = %d, want 2", result.Matches)
	}
	for _, d := range result.Bag.Items() {
		if d.Code != diag.RefactorForceTry {
			t.Fatalf("code = %v", d.Code)
		}
		if len(d.Fixes) != 1 || d.Fixes[0].Thunk == nil {
			t.Fatalf("fix must be lazy: %+v", d.Fixes)
		}
	}
}

func TestDetachedBangIsNotACandidate(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.swift", []byte("let ok = try !flag\n"))

	result := ScanFile(fs, id, Options{})
	if result.Matches != 0 {
		t.Fatalf("matches = %d, want 0: '!' here negates the operand", result.Matches)
	}
}

func TestForceTryBeforeSemicolonIsACandidate(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.swift", []byte("let a = try! f(); let b = g()\n"))

	result := ScanFile(fs, id, Options{})
	if result.Matches != 1 {
		t.Fatalf("matches = %d, want 1", result.Matches)
	}
}

func TestScanAndApplyRewritesFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"app.swift": "func boot() {\n    prepare()\n}\n  let cfg = try! read(path)\n",
	})

	fileSet, results, err := ScanDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	bag := CollectDiagnostics(results, 0)
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}

	applied, err := fix.Apply(fileSet, bag.Items(), fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(applied.Applied) != 1 {
		t.Fatalf("applied = %+v", applied)
	}

	got, err := os.ReadFile(filepath.Join(dir, "app.swift"))
	if err != nil {
		t.Fatal(err)
	}
	want := "func boot() {\n" +
		"    prepare()\n" +
		"}\n" +
		"  do {\n" +
		"    let cfg = try read(path)\n" +
		"  } catch {\n" +
		"    <#code#>\n" +
		"  }\n"
	if string(got) != want {
		t.Fatalf("rewritten file:\n got %q\nwant %q", got, want)
	}
}

func TestScanDirIsDeterministicAndParallel(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.swift":     "try! second()\n",
		"a.swift":     "try! first()\n",
		"sub/c.swift": "let x = try? third()\n",
	})

	_, results, err := ScanDir(context.Background(), dir, Options{Jobs: 4})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.swift" || filepath.Base(results[1].Path) != "b.swift" {
		t.Fatalf("order: %s, %s", results[0].Path, results[1].Path)
	}
	if results[0].Matches != 1 || results[1].Matches != 1 || results[2].Matches != 0 {
		t.Fatalf("matches: %d %d %d", results[0].Matches, results[1].Matches, results[2].Matches)
	}
}

func TestScanCacheRoundTrip(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.swift": "try! f()\n"})
	cache, err := OpenScanCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	_, first, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].FromCache {
		t.Fatalf("first scan must miss the cache")
	}

	_, second, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].FromCache {
		t.Fatalf("second scan must hit the cache")
	}
	if second[0].Matches != 1 {
		t.Fatalf("cached matches = %d", second[0].Matches)
	}
	if second[0].Bag.Len() != 1 || second[0].Bag.Items()[0].Code != diag.RefactorForceTry {
		t.Fatalf("cached diagnostics = %+v", second[0].Bag.Items())
	}

	// Changing the file invalidates the entry via the content hash.
	if err := os.WriteFile(filepath.Join(dir, "a.swift"), []byte("g()\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, third, err := ScanDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third[0].FromCache || third[0].Matches != 0 {
		t.Fatalf("changed file served from cache: %+v", third[0])
	}
}
