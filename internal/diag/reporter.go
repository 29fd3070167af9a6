package diag

import (
	"unforce/internal/source"
)

// Reporter receives diagnostics as they are produced.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter funnels reported diagnostics into a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	r.Bag.Add(d)
}

// ReportBuilder accumulates a diagnostic before emitting it to a reporter.
type ReportBuilder struct {
	r Reporter
	d Diagnostic
}

// NewReport starts a diagnostic destined for r.
func NewReport(r Reporter, sev Severity, code Code, span source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		r: r,
		d: Diagnostic{
			Severity: sev,
			Code:     code,
			Message:  msg,
			Primary:  span,
		},
	}
}

// ReportError starts an error diagnostic.
func ReportError(r Reporter, code Code, span source.Span, msg string) *ReportBuilder {
	return NewReport(r, SevError, code, span, msg)
}

// ReportWarning starts a warning diagnostic.
func ReportWarning(r Reporter, code Code, span source.Span, msg string) *ReportBuilder {
	return NewReport(r, SevWarning, code, span, msg)
}

// ReportInfo starts an informational diagnostic.
func ReportInfo(r Reporter, code Code, span source.Span, msg string) *ReportBuilder {
	return NewReport(r, SevInfo, code, span, msg)
}

// WithNote attaches a secondary span with context.
func (b *ReportBuilder) WithNote(span source.Span, msg string) *ReportBuilder {
	b.d.Notes = append(b.d.Notes, Note{Span: span, Msg: msg})
	return b
}

// WithFix attaches a ready-made quick fix.
func (b *ReportBuilder) WithFix(title string, edits ...TextEdit) *ReportBuilder {
	b.d = b.d.WithFix(title, edits...)
	return b
}

// WithFixSuggestion attaches a structured fix.
func (b *ReportBuilder) WithFixSuggestion(fix Fix) *ReportBuilder {
	b.d = b.d.WithFixSuggestion(fix)
	return b
}

// Emit sends the diagnostic to the reporter.
func (b *ReportBuilder) Emit() {
	if b.r != nil {
		b.r.Report(b.d)
	}
}
