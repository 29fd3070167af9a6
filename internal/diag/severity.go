package diag

// Severity ranks how serious a diagnostic is. The zero value is SevInfo, so
// a diagnostic built without an explicit severity never escalates.
type Severity uint8

const (
	// SevInfo marks informational findings, e.g. an available rewrite.
	SevInfo Severity = iota
	// SevWarning marks suspicious input that did not stop processing.
	SevWarning
	// SevError marks findings that make the result unreliable.
	SevError
)

// String returns the uppercase label used in rendered diagnostics.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
