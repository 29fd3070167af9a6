package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"unforce/internal/diag"
	"unforce/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~~
//
// followed by notes and fix suggestions when enabled. The bag is expected
// to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostics not shown\n", n)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	sev := severityColor(d.Severity, opts.Color)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(fs, d.Primary.File, opts.PathMode),
		start.Line, start.Col,
		sev.Sprint(d.Severity.String()),
		d.Code.ID(),
		d.Message,
	)
	printContext(w, fs, d.Primary, sev)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			pos, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %s (%s:%d:%d)\n",
				note.Msg,
				formatPath(fs, note.Span.File, opts.PathMode),
				pos.Line, pos.Col,
			)
		}
	}

	if opts.ShowFixes && len(d.Fixes) > 0 {
		printFixes(w, d.Fixes, fs, opts)
	}
}

// printContext prints the source line under the span with a caret underline
// aligned by display width, so wide runes and combining marks line up.
func printContext(w io.Writer, fs *source.FileSet, span source.Span, sev *color.Color) {
	file := fs.Get(span.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	endCol := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol < startCol {
		endCol = startCol
	}

	pad := displayWidth(line[:startCol])
	width := displayWidth(line[startCol:endCol])
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n",
		strings.Repeat(" ", pad),
		sev.Sprint("^"+strings.Repeat("~", width-1)),
	)
}

func printFixes(w io.Writer, fixes []diag.Fix, fs *source.FileSet, opts PrettyOpts) {
	ctx := diag.FixBuildContext{FileSet: fs}
	for _, f := range fixes {
		resolved, err := diag.MaterializeFixes(ctx, []diag.Fix{f})
		if err != nil {
			fmt.Fprintf(w, "  fix: %s (failed to build: %v)\n", f.Title, err)
			continue
		}
		fix := resolved[0]

		mark := ""
		if fix.IsPreferred {
			mark = " *"
		}
		fmt.Fprintf(w, "  fix [%s]%s: %s (%s)\n", fix.ID, mark, fix.Title, fix.Applicability)

		if !opts.ShowPreview {
			continue
		}
		for _, edit := range fix.Edits {
			preview, err := buildFixEditPreview(fs, edit)
			if err != nil {
				continue
			}
			for _, l := range preview.before {
				fmt.Fprintf(w, "    - %s\n", l)
			}
			for _, l := range preview.after {
				fmt.Fprintf(w, "    + %s\n", l)
			}
		}
	}
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan, color.Bold)
	}
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// displayWidth measures the terminal cell width of s. The text is NFC
// normalized first so combining sequences measure as their composed form.
func displayWidth(s string) int {
	return runewidth.StringWidth(norm.NFC.String(s))
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", fs.BaseDir())
	}
}
