package diagfmt

import (
	"errors"
	"fmt"

	"github.com/aleksaelezovic/rdftok/pkg/rdf"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// Diagnostic is one reported problem in a file. Line and Column are 0 when
// the problem has no source position (I/O failures).
type Diagnostic struct {
	File     string `json:"file" msgpack:"file"`
	Severity string `json:"severity" msgpack:"severity"`
	Message  string `json:"message" msgpack:"message"`
	Line     int64  `json:"line,omitempty" msgpack:"line,omitempty"`
	Column   int64  `json:"column,omitempty" msgpack:"column,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s: %s", d.File, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
}

// IsError reports whether the diagnostic stops processing of its file.
func (d Diagnostic) IsError() bool {
	return d.Severity != tokens.SeverityWarning.String()
}

// Collector gathers the diagnostics of one file. It implements
// tokens.ErrorHandler. Events are also passed to Forward when set; its
// escalation result is ignored.
type Collector struct {
	File             string
	WarningsAsErrors bool
	Diags            []Diagnostic
	Forward          tokens.ErrorHandler
}

var _ tokens.ErrorHandler = (*Collector)(nil)

func NewCollector(file string, warningsAsErrors bool) *Collector {
	return &Collector{File: file, WarningsAsErrors: warningsAsErrors}
}

func (c *Collector) add(sev tokens.Severity, message string, line, col int64) {
	c.Diags = append(c.Diags, Diagnostic{
		File:     c.File,
		Severity: sev.String(),
		Message:  message,
		Line:     line,
		Column:   col,
	})
}

func (c *Collector) Warning(message string, line, col int64) error {
	if c.Forward != nil {
		_ = c.Forward.Warning(message, line, col)
	}
	if c.WarningsAsErrors {
		c.add(tokens.SeverityError, message, line, col)
		return &tokens.ParseError{Severity: tokens.SeverityWarning, Message: message, Line: line, Column: col}
	}
	c.add(tokens.SeverityWarning, message, line, col)
	return nil
}

func (c *Collector) Error(message string, line, col int64) {
	if c.Forward != nil {
		c.Forward.Error(message, line, col)
	}
	c.add(tokens.SeverityError, message, line, col)
}

func (c *Collector) Fatal(message string, line, col int64) {
	if c.Forward != nil {
		c.Forward.Fatal(message, line, col)
	}
	c.add(tokens.SeverityFatal, message, line, col)
}

// AddError records an error that ended processing of the file. Tokenizer
// errors were already seen through the handler methods and are skipped.
func (c *Collector) AddError(err error) {
	if err == nil {
		return
	}
	var pe *tokens.ParseError
	if errors.As(err, &pe) {
		return
	}
	var se *rdf.StatementError
	if errors.As(err, &se) {
		c.Error("error parsing "+se.Role+": "+se.Message, se.Line, se.Column)
		return
	}
	c.Fatal(err.Error(), 0, 0)
}

// HasErrors reports whether any diagnostic is an error or fatal.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diags {
		if d.IsError() {
			return true
		}
	}
	return false
}
