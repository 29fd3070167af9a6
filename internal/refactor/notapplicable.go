package refactor

import (
	"errors"
)

// NotApplicableError means a candidate does not structurally match a rule's
// precondition. It is an expected, recoverable outcome: callers skip the node
// and keep scanning.
type NotApplicableError struct {
	Reason string
}

func (e *NotApplicableError) Error() string {
	return "not applicable: " + e.Reason
}

// NotApplicable builds a NotApplicableError with the given reason.
func NotApplicable(reason string) error {
	return &NotApplicableError{Reason: reason}
}

// IsNotApplicable reports whether err is (or wraps) a NotApplicableError.
func IsNotApplicable(err error) bool {
	var na *NotApplicableError
	return errors.As(err, &na)
}
