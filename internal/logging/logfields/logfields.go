// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// File is the path of the document being tokenized
	File = "file"

	// Line is the 1-based line of a diagnostic
	Line = "line"

	// Column is the 1-based column of a diagnostic
	Column = "column"

	// Kind is a token kind
	Kind = "kind"

	// Severity is the severity of a tokenizer diagnostic
	Severity = "severity"

	// Tokens is a token count
	Tokens = "tokens"

	// Quads is a statement count
	Quads = "quads"

	// Jobs is the concurrency limit of a batch
	Jobs = "jobs"

	// Files is a file count
	Files = "files"

	// Errors is an error diagnostic count
	Errors = "errors"

	// Warnings is a warning diagnostic count
	Warnings = "warnings"

	// Duration is the elapsed time of an operation
	Duration = "duration"
)
