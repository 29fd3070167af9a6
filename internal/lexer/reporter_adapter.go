package lexer

import (
	"unforce/internal/diag"
	"unforce/internal/source"
)

// DiagReporter adapts the lexer's string-keyed findings to the diag model.
type DiagReporter struct {
	R diag.Reporter
}

var kindCodes = map[string]diag.Code{
	"unknown-char":               diag.LexUnknownChar,
	"unterminated-string":        diag.LexUnterminatedString,
	"unterminated-block-comment": diag.LexUnterminatedBlockComment,
	"unterminated-placeholder":   diag.LexUnterminatedPlaceholder,
}

func (a DiagReporter) Report(kind string, span source.Span, msg string) {
	code, ok := kindCodes[kind]
	if !ok {
		code = diag.LexInfo
	}
	diag.ReportError(a.R, code, span, msg).Emit()
}
