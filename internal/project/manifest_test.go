package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromNestedDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[scan]
exclude = ["vendor/*", "*_gen.swift"]
jobs = 3

[fix]
backup_suffix = ".orig"

[cache]
enabled = true
`)
	nested := filepath.Join(root, "src", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(nested)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !ok {
		t.Fatalf("manifest not found from nested dir")
	}
	if m.Root != root {
		t.Fatalf("root = %q, want %q", m.Root, root)
	}
	if m.Config.Scan.Jobs != 3 {
		t.Fatalf("jobs = %d", m.Config.Scan.Jobs)
	}
	if m.Config.Fix.BackupSuffix != ".orig" {
		t.Fatalf("backup suffix = %q", m.Config.Fix.BackupSuffix)
	}
	if !m.Config.Cache.Enabled {
		t.Fatalf("cache must be enabled")
	}
}

func TestLoadMissingManifest(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || m != nil {
		t.Fatalf("expected no manifest, got %+v", m)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[scan]\nthreads = 4\n")

	_, ok, err := Load(dir)
	if !ok {
		t.Fatalf("manifest should be found")
	}
	if err == nil {
		t.Fatalf("unknown key must be rejected")
	}
}

func TestExcluded(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[scan]
exclude = ["vendor/*", "*_gen.swift"]
`)
	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}

	cases := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "vendor", "dep.swift"), true},
		{filepath.Join(root, "models_gen.swift"), true},
		{filepath.Join(root, "src", "main.swift"), false},
	}
	for _, c := range cases {
		if got := m.Excluded(c.path); got != c.want {
			t.Fatalf("Excluded(%q) = %v, want %v", c.path, got, c.want)
		}
	}

	var nilManifest *Manifest
	if nilManifest.Excluded("anything.swift") {
		t.Fatalf("nil manifest must exclude nothing")
	}
}

func TestIncludeGlobsLimitSelection(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[scan]
include = ["src/*.swift"]
`)
	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if m.Excluded(filepath.Join(root, "src", "main.swift")) {
		t.Fatalf("included path was excluded")
	}
	if !m.Excluded(filepath.Join(root, "tools", "gen.swift")) {
		t.Fatalf("path outside include globs must be excluded")
	}
}
