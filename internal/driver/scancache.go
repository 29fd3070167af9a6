package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"unforce/internal/diag"
	"unforce/internal/source"
)

// Bump when the payload format changes; mismatched payloads read as misses.
const scanCacheSchemaVersion uint16 = 1

// ScanCache persists scan results keyed by file content hash, so repeated
// scans of unchanged files skip lexing and parsing. Only counts and plain
// diagnostics are cached; fixes carry closures and are rebuilt on demand.
// Safe for concurrent use.
type ScanCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

type scanPayload struct {
	Schema  uint16
	Path    string
	Matches int
	Diags   []cachedDiagnostic
}

// OpenScanCache initializes a cache under the standard user cache location
// ($XDG_CACHE_HOME or ~/.cache) in a subdirectory named after the app.
func OpenScanCache(app string) (*ScanCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ScanCache{dir: dir}, nil
}

// OpenScanCacheAt initializes a cache rooted at an explicit directory.
func OpenScanCacheAt(dir string) (*ScanCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ScanCache{dir: dir}, nil
}

func (c *ScanCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, "scans", hex.EncodeToString(hash[:])+".mp")
}

// Lookup returns the cached scan result for the file's current content. A
// nil cache, a missing entry, or a schema mismatch all read as a miss.
func (c *ScanCache) Lookup(file *source.File) (ScanResult, bool) {
	if c == nil || file == nil {
		return ScanResult{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file.Hash))
	if err != nil {
		return ScanResult{}, false
	}
	defer f.Close()

	var payload scanPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return ScanResult{}, false
	}
	if payload.Schema != scanCacheSchemaVersion {
		return ScanResult{}, false
	}

	bag := diag.NewBag(0)
	for _, d := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary:  source.Span{File: file.ID, Start: d.Start, End: d.End},
		})
	}

	return ScanResult{
		Path:      file.Path,
		Bag:       bag,
		Matches:   payload.Matches,
		FromCache: true,
	}, true
}

// Store writes the scan result for the file's current content, replacing
// the entry atomically. Errors are swallowed: the cache is best-effort.
func (c *ScanCache) Store(file *source.File, result ScanResult) {
	if c == nil || file == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := scanPayload{
		Schema:  scanCacheSchemaVersion,
		Path:    file.Path,
		Matches: result.Matches,
	}
	for _, d := range result.Bag.Items() {
		payload.Diags = append(payload.Diags, cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}

	p := c.pathFor(file.Hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	if err := msgpack.NewEncoder(tmp).Encode(&payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
	}
}

// DropAll invalidates the whole cache, e.g. after a format change.
func (c *ScanCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
