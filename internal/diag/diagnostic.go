package diag

import (
	"fmt"

	"unforce/internal/source"
)

// Note is a secondary span with context for a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is one concrete replacement in source byte coordinates.
// OldText, when non-empty, is a guard: the engine verifies the span still
// holds exactly that text before applying the edit.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind coarsely classifies a fix.
type FixKind uint8

const (
	// FixKindQuickFix is a small local correction.
	FixKindQuickFix FixKind = iota
	// FixKindRefactorRewrite restructures code without changing behavior
	// visible to the reader beyond the rewritten form.
	FixKindRefactorRewrite
	// FixKindSourceAction is a whole-file or project-level action.
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quick-fix"
	case FixKindRefactorRewrite:
		return "refactor-rewrite"
	case FixKindSourceAction:
		return "source-action"
	}
	return "fix-kind(?)"
}

// FixApplicability is the confidence level of a fix.
type FixApplicability uint8

const (
	// FixApplicabilityAlwaysSafe fixes may be applied unattended.
	FixApplicabilityAlwaysSafe FixApplicability = iota
	// FixApplicabilitySafeWithHeuristics fixes are safe under the scan's
	// heuristics but deserve a look.
	FixApplicabilitySafeWithHeuristics
	// FixApplicabilityManualReview fixes need a human decision.
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "applicability(?)"
}

// FixBuildContext carries what a lazy fix needs to materialise its edits.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk lazily builds the edits of a fix. Thunks must be deterministic
// and side-effect free.
type FixThunk func(FixBuildContext) ([]TextEdit, error)

// Fix represents a possible automated correction for a diagnostic.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	RequiresAll   bool
	Edits         []TextEdit
	Thunk         FixThunk `msgpack:"-"`
}

// Diagnostic is one finding with optional notes and fixes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// WithFix returns a copy of the diagnostic with a ready-made quick fix
// appended.
func (d Diagnostic) WithFix(title string, edits ...TextEdit) Diagnostic {
	return d.WithFixSuggestion(Fix{
		Title: title,
		Kind:  FixKindQuickFix,
		Edits: edits,
	})
}

// WithFixSuggestion returns a copy of the diagnostic with the fix appended.
func (d Diagnostic) WithFixSuggestion(fix Fix) Diagnostic {
	fixes := make([]Fix, 0, len(d.Fixes)+1)
	fixes = append(fixes, d.Fixes...)
	fixes = append(fixes, fix)
	d.Fixes = fixes
	return d
}

// MaterializeFixes expands lazy fixes into concrete ones. Fixes with both a
// thunk and pre-built edits keep the pre-built edits; the thunk wins only
// when Edits is empty.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	out := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		if len(f.Edits) == 0 && f.Thunk != nil {
			edits, err := f.Thunk(ctx)
			if err != nil {
				return nil, fmt.Errorf("materialize fix %q: %w", f.Title, err)
			}
			f.Edits = edits
		}
		f.Thunk = nil
		out = append(out, f)
	}
	return out, nil
}
