package fix

import (
	"unforce/internal/diag"
	"unforce/internal/source"
)

// Option mutates a fix during construction.
type Option func(*diag.Fix)

// WithApplicability overrides applicability metadata.
func WithApplicability(app diag.FixApplicability) Option {
	return func(f *diag.Fix) {
		f.Applicability = app
	}
}

// WithKind overrides fix classification.
func WithKind(kind diag.FixKind) Option {
	return func(f *diag.Fix) {
		f.Kind = kind
	}
}

// Preferred marks the fix as the preferred suggestion.
func Preferred() Option {
	return func(f *diag.Fix) {
		f.IsPreferred = true
	}
}

// WithRequiresAll marks the fix as only applicable together with all its
// siblings.
func WithRequiresAll() Option {
	return func(f *diag.Fix) {
		f.RequiresAll = true
	}
}

// WithID sets the fix's stable identifier.
func WithID(id string) Option {
	return func(f *diag.Fix) {
		f.ID = id
	}
}

// WithThunk attaches a lazy edit builder to the fix.
func WithThunk(thunk diag.FixThunk) Option {
	return func(f *diag.Fix) {
		f.Thunk = thunk
	}
}

func applyOptions(f diag.Fix, opts []Option) diag.Fix {
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// InsertText creates a fix inserting text at a zero-length span.
func InsertText(title string, at source.Span, text string, guard string, opts ...Option) diag.Fix {
	fix := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits: []diag.TextEdit{{
			Span:    at,
			NewText: text,
			OldText: guard,
		}},
	}
	return applyOptions(fix, opts)
}

// DeleteSpan removes the text covered by span.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	fix := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits: []diag.TextEdit{{
			Span:    span,
			OldText: expect,
		}},
	}
	return applyOptions(fix, opts)
}

// ReplaceSpan replaces the text covered by span with newText.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	fix := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits: []diag.TextEdit{{
			Span:    span,
			NewText: newText,
			OldText: expect,
		}},
	}
	return applyOptions(fix, opts)
}

// RewriteSpan creates a refactor-rewrite fix whose replacement text is built
// lazily by render. The span's current text is re-checked through the guard
// before the edit is applied.
func RewriteSpan(title string, span source.Span, guard string, render func(diag.FixBuildContext) (string, error), opts ...Option) diag.Fix {
	fix := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindRefactorRewrite,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Thunk: func(ctx diag.FixBuildContext) ([]diag.TextEdit, error) {
			text, err := render(ctx)
			if err != nil {
				return nil, err
			}
			return []diag.TextEdit{{
				Span:    span,
				NewText: text,
				OldText: guard,
			}}, nil
		},
	}
	return applyOptions(fix, opts)
}
