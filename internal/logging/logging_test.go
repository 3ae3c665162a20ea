package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput(config.Log{Level: "debug", Format: "json"}, &buf)
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", logger.GetLevel())
	}
	logger.WithField(logfields.File, "a.ttl").Info("hello")
	if !strings.Contains(buf.String(), `"file":"a.ttl"`) {
		t.Errorf("expected JSON output with file field, got %s", buf.String())
	}

	buf.Reset()
	logger = NewWithOutput(config.Log{Level: "nonsense", Format: "text"}, &buf)
	if logger.GetLevel() != DefaultLogLevel {
		t.Errorf("expected fallback to %s, got %s", DefaultLogLevel, logger.GetLevel())
	}
}

func TestErrorHandler_LogsDiagnostics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	h := NewErrorHandler(logger, "doc.ttl", false)

	_, err := tokens.NewTokenizerString("<a b> \"open", tokens.Options{ErrorHandler: h}).ReadAll()
	if err == nil {
		t.Fatal("expected tokenizer error")
	}

	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != logrus.WarnLevel || entries[0].Data[logfields.Severity] != "warning" {
		t.Errorf("unexpected first entry: %v %v", entries[0].Level, entries[0].Data)
	}
	if entries[1].Level != logrus.ErrorLevel || entries[1].Data[logfields.Column] != int64(7) {
		t.Errorf("unexpected second entry: %v %v", entries[1].Level, entries[1].Data)
	}
	if entries[1].Data[logfields.File] != "doc.ttl" {
		t.Errorf("expected file field, got %v", entries[1].Data)
	}
}

func TestErrorHandler_WarningsAsErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	h := NewErrorHandler(logger, "doc.nt", true)

	_, err := tokens.NewTokenizerString("<a b>", tokens.Options{ErrorHandler: h}).ReadAll()
	if !errors.Is(err, ErrWarningEscalated) {
		t.Fatalf("expected escalated warning, got %v", err)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.ErrorLevel {
		t.Errorf("expected the warning logged at error level")
	}
}
