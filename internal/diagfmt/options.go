// Package diagfmt renders diagnostics for humans and machines: a pretty
// terminal format with source context and caret underlines, a JSON format
// for editor integration, and token stream dumps for debugging.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color       bool
	PathMode    PathMode
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to every location
	PathMode         PathMode
	Max              int // truncate output after this many diagnostics, 0 = all
	IncludeNotes     bool
	IncludeFixes     bool
	IncludePreviews  bool
}
