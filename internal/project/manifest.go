// Package project locates and loads the optional .unforce.toml manifest
// that pins per-project scan settings.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name looked up from the scan directory upward.
const ManifestName = ".unforce.toml"

// Manifest is a loaded project manifest with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML structure. Every field is optional; zero values
// mean "use the CLI flag or the built-in default".
type Config struct {
	Scan  ScanConfig  `toml:"scan"`
	Fix   FixConfig   `toml:"fix"`
	Cache CacheConfig `toml:"cache"`
}

// ScanConfig configures candidate discovery.
type ScanConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
	Jobs    int      `toml:"jobs"`
	MaxDiag int      `toml:"max_diagnostics"`
}

// FixConfig configures how rewrites are written out.
type FixConfig struct {
	BackupSuffix string `toml:"backup_suffix"`
}

// CacheConfig configures the scan cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// FindManifest walks up from startDir to locate the manifest file.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the manifest nearest to startDir. ok is false when no manifest
// exists, which is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg Config
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	for _, key := range meta.Undecoded() {
		return nil, true, fmt.Errorf("%s: unknown key %q", manifestPath, key)
	}

	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// Excluded reports whether the path is filtered out by the manifest: it
// matches an exclude glob, or include globs exist and none of them match.
// Globs are matched against both the base name and the slash path relative
// to root.
func (m *Manifest) Excluded(path string) bool {
	if m == nil {
		return false
	}
	if matchesAny(m.Config.Scan.Exclude, m.Root, path) {
		return true
	}
	if len(m.Config.Scan.Include) > 0 && !matchesAny(m.Config.Scan.Include, m.Root, path) {
		return true
	}
	return false
}

func matchesAny(patterns []string, root, path string) bool {
	rel := path
	if r, err := filepath.Rel(root, path); err == nil {
		rel = filepath.ToSlash(r)
	}
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}
