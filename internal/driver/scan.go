// Package driver orchestrates scanning: loading files, running the lexer
// and parser, consulting the rewrite rule registry, and fanning out over
// directories in parallel.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"unforce/internal/diag"
	"unforce/internal/fix"
	"unforce/internal/lexer"
	"unforce/internal/parser"
	"unforce/internal/refactor"
	"unforce/internal/source"
	"unforce/internal/syntax"
)

// Options configures a scan.
type Options struct {
	MaxDiagnostics int
	Jobs           int
	Registry       *refactor.Registry
	Cache          *ScanCache // optional; serves candidate counts only

	// Exclude, when non-nil, drops matching paths from directory walks.
	Exclude func(path string) bool
}

func (o Options) registry() *refactor.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return refactor.DefaultRegistry()
}

// ScanResult is the outcome of scanning one file.
type ScanResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	Matches   int
	FromCache bool
}

// ScanFile lexes and parses one loaded file, walks its statements, and turns
// every matching rewrite rule into an informational diagnostic with a lazy
// fix. The fix's edits are built only when someone applies or previews it.
func ScanFile(fileSet *source.FileSet, fileID source.FileID, opts Options) ScanResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	file := fileSet.Get(fileID)

	toks := lexer.Tokenize(file, lexer.Options{
		Reporter: lexer.DiagReporter{R: reporter},
	})
	parsed := parser.Parse(toks, parser.Options{Reporter: reporter})

	matches := 0
	registry := opts.registry()
	walkStmts(parsed.Stmts, func(s syntax.Stmt) {
		for _, rule := range registry.Match(s) {
			matches++
			bag.Add(candidateDiagnostic(file, s, rule))
		}
	})

	return ScanResult{
		Path:    file.Path,
		FileID:  fileID,
		Bag:     bag,
		Matches: matches,
	}
}

// candidateDiagnostic builds the diagnostic for one rule match. The fix
// replaces the statement's edit span (own-line indentation through trailing
// trivia) with the rendered replacement, guarded by the current text.
func candidateDiagnostic(file *source.File, s syntax.Stmt, rule refactor.Rule) diag.Diagnostic {
	editSpan := syntax.EditSpan(s)
	guard := string(file.Content[editSpan.Start:editSpan.End])
	code, message := describeRule(rule)

	f := fix.RewriteSpan(rule.Title(), editSpan, guard,
		func(diag.FixBuildContext) (string, error) {
			out := rule.Build(s, refactor.ContextFor(file, s))
			return syntax.RenderStmts(out), nil
		},
		fix.WithID(fmt.Sprintf("%s-%d-%d", rule.ID(), editSpan.File, editSpan.Start)),
		fix.Preferred(),
	)

	return diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     code,
		Message:  message,
		Primary:  anchorSpan(s),
		Fixes:    []diag.Fix{f},
	}
}

func describeRule(rule refactor.Rule) (diag.Code, string) {
	switch rule.ID() {
	case "force-try-to-do-catch":
		return diag.RefactorForceTry, "force try traps when the expression throws"
	default:
		return diag.RefactorInfo, rule.Title()
	}
}

// anchorSpan is the span the diagnostic points at: the try keyword and its
// marker when the statement has a top-level try, otherwise the whole
// statement.
func anchorSpan(s syntax.Stmt) source.Span {
	if try, ok := syntax.TopTry(s); ok {
		sp := try.TryKw.Span
		if try.Marker != nil {
			sp = sp.Cover(try.Marker.Span)
		}
		return sp
	}
	return syntax.Span(s)
}

// walkStmts visits statements depth-first, descending into do/catch bodies.
func walkStmts(stmts []syntax.Stmt, visit func(syntax.Stmt)) {
	for _, s := range stmts {
		visit(s)
		if dc, ok := s.(*syntax.DoCatch); ok {
			walkStmts(dc.Body, visit)
			for _, c := range dc.Clauses {
				walkStmts(c.Body, visit)
			}
		}
	}
}

// listSwiftFiles returns the sorted list of *.swift files under dir,
// skipping paths the exclude predicate rejects.
func listSwiftFiles(dir string, exclude func(string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".swift") {
			return nil
		}
		if exclude != nil && exclude(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ScanDir scans every *.swift file under dir in parallel. Results keep the
// deterministic sorted file order; each goroutine writes only its own index,
// so no locking is needed.
func ScanDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ScanResult, error) {
	files, err := listSwiftFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ScanResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = ScanResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if cached, ok := opts.Cache.Lookup(file); ok {
				cached.FileID = fileID
				results[i] = cached
				return nil
			}

			results[i] = ScanFile(fileSet, fileID, opts)
			opts.Cache.Store(file, results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ScanPath scans a single *.swift file or a whole directory, depending on
// what the path points at.
func ScanPath(ctx context.Context, path string, opts Options) (*source.FileSet, []ScanResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return ScanDir(ctx, path, opts)
	}

	fileSet := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, err
	}
	file := fileSet.Get(fileID)

	if cached, ok := opts.Cache.Lookup(file); ok {
		cached.FileID = fileID
		return fileSet, []ScanResult{cached}, nil
	}
	result := ScanFile(fileSet, fileID, opts)
	opts.Cache.Store(file, result)
	return fileSet, []ScanResult{result}, nil
}

// CollectDiagnostics merges all per-file bags into one sorted bag.
func CollectDiagnostics(results []ScanResult, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, r := range results {
		bag.Merge(r.Bag)
	}
	bag.Sort()
	return bag
}
