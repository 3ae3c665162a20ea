package tokens

import (
	"fmt"
)

// Severity of a diagnostic reported by the tokenizer
type Severity byte

const (
	SeverityWarning Severity = iota + 1
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseError is returned for every error that stops tokenization.
type ParseError struct {
	Severity Severity
	Message  string
	Line     int64
	Column   int64
	Err      error // underlying cause, e.g. charsource.ErrBadEncoding
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line: %d, col: %d] %s", e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives diagnostics from a tokenizer.
//
// Error and Fatal never let tokenization continue: once they return, the
// tokenizer stops and returns a *ParseError for the same condition. A
// handler only observes these conditions; it cannot recover from them.
//
// Warning reports a tolerated problem. Returning nil continues
// tokenization; returning an error aborts it with that error.
type ErrorHandler interface {
	Warning(message string, line, col int64) error
	Error(message string, line, col int64)
	Fatal(message string, line, col int64)
}

// defaultErrorHandler tolerates warnings and leaves errors to the tokenizer.
type defaultErrorHandler struct{}

func (defaultErrorHandler) Warning(string, int64, int64) error { return nil }
func (defaultErrorHandler) Error(string, int64, int64) {}
func (defaultErrorHandler) Fatal(string, int64, int64) {}

// DefaultErrorHandler returns the handler used when Options.ErrorHandler is nil.
func DefaultErrorHandler() ErrorHandler {
	return defaultErrorHandler{}
}

// StrictErrorHandler turns every warning into an error.
type StrictErrorHandler struct{}

func (StrictErrorHandler) Warning(message string, line, col int64) error {
	return &ParseError{Severity: SeverityWarning, Message: message, Line: line, Column: col}
}

func (StrictErrorHandler) Error(string, int64, int64) {}
func (StrictErrorHandler) Fatal(string, int64, int64) {}
