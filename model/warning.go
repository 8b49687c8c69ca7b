package model

import (
	"errors"
	"fmt"
)

// Severity classifies a warning.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Warning describes a problem found while loading, parsing, scanning or
// resolving a document. Warnings do not stop the analysis; they travel with
// the feature or document they describe.
type Warning struct {
	Code        string
	Message     string
	Severity    Severity
	SourceRange *SourceRange
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s [%s] %s", w.SourceRange, w.Code, w.Message)
}

// WarningError carries a Warning across an error return. The analysis
// context stores warning-carrying failures in its failed-document table
// instead of propagating them.
type WarningError struct {
	Warning *Warning
}

func (e *WarningError) Error() string {
	return e.Warning.Message
}

// NewWarningError builds a warning-carrying error.
func NewWarningError(code, message string, rng *SourceRange) *WarningError {
	return &WarningError{Warning: &Warning{
		Code:        code,
		Message:     message,
		Severity:    SeverityError,
		SourceRange: rng,
	}}
}

// AsWarning extracts the warning from a warning-carrying error. Any other
// error is wrapped into a synthetic warning anchored at the start of url.
func AsWarning(err error, url string) *Warning {
	var we *WarningError
	if errors.As(err, &we) {
		return we.Warning
	}
	return &Warning{
		Code:        "could-not-load",
		Message:     err.Error(),
		Severity:    SeverityError,
		SourceRange: ZeroRange(url),
	}
}

// IsWarning reports whether err carries a Warning.
func IsWarning(err error) bool {
	var we *WarningError
	return errors.As(err, &we)
}
