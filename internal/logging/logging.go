// Package logging sets up the logrus logger used by the rdftok command and
// adapts it to the tokenizer's error handler interface.
package logging

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// DefaultLogLevel is used when the configured level does not parse.
const DefaultLogLevel = logrus.InfoLevel

// New returns a logger writing to stderr with the configured level and format.
func New(cfg config.Log) *logrus.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(cfg config.Log, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(GetFormatter(cfg.Format))

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.WithError(err).Warning("Ignoring user-configured log level")
		level = DefaultLogLevel
	}
	logger.SetLevel(level)
	return logger
}

// GetFormatter returns the logrus formatter for "text" or "json".
func GetFormatter(format string) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{}
	default:
		return &logrus.TextFormatter{DisableTimestamp: true}
	}
}

// ErrWarningEscalated is the cause of a warning that aborted tokenization.
var ErrWarningEscalated = errors.New("warning treated as error")

// ErrorHandler reports tokenizer diagnostics to a logger. With
// WarningsAsErrors set, every warning aborts tokenization.
type ErrorHandler struct {
	Log              logrus.FieldLogger
	WarningsAsErrors bool
}

var _ tokens.ErrorHandler = (*ErrorHandler)(nil)

// NewErrorHandler returns a handler whose entries carry the file name.
func NewErrorHandler(logger logrus.FieldLogger, file string, warningsAsErrors bool) *ErrorHandler {
	return &ErrorHandler{
		Log:              logger.WithField(logfields.File, file),
		WarningsAsErrors: warningsAsErrors,
	}
}

func (h *ErrorHandler) entry(severity tokens.Severity, line, col int64) *logrus.Entry {
	return h.Log.WithFields(logrus.Fields{
		logfields.Severity: severity.String(),
		logfields.Line:     line,
		logfields.Column:   col,
	})
}

func (h *ErrorHandler) Warning(message string, line, col int64) error {
	if h.WarningsAsErrors {
		h.entry(tokens.SeverityWarning, line, col).Error(message)
		return &tokens.ParseError{
			Severity: tokens.SeverityWarning,
			Message:  message,
			Line:     line,
			Column:   col,
			Err:      ErrWarningEscalated,
		}
	}
	h.entry(tokens.SeverityWarning, line, col).Warn(message)
	return nil
}

func (h *ErrorHandler) Error(message string, line, col int64) {
	h.entry(tokens.SeverityError, line, col).Error(message)
}

// Fatal logs at error level. The tokenizer stops on its own; the process
// is not exited here.
func (h *ErrorHandler) Fatal(message string, line, col int64) {
	h.entry(tokens.SeverityFatal, line, col).Error(message)
}
