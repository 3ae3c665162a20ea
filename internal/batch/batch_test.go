package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/internal/logging"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

func writeFiles(t *testing.T, files map[string]string) map[string]string {
	t.Helper()
	dir := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		paths[name] = path
	}
	return paths
}

func TestTokenizeFiles(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.ttl": "@prefix ex: <http://ex/> .\nex:s ex:p 1 .\n",
		"b.ttl": "ex:s ex:p \"open\n",
		"c.ttl": "<http://ex/a b> .",
	})
	logger, _ := test.NewNullLogger()
	input := []string{paths["a.ttl"], paths["b.ttl"], filepath.Join(filepath.Dir(paths["a.ttl"]), "missing.ttl"), paths["c.ttl"]}

	results, err := TokenizeFiles(context.Background(), input, Options{
		Config: config.Default(),
		Jobs:   2,
		Log:    logger,
	})
	if err != nil {
		t.Fatalf("TokenizeFiles: %v", err)
	}
	if len(results) != len(input) {
		t.Fatalf("expected %d results, got %d", len(input), len(results))
	}
	for i, res := range results {
		if res.Path != input[i] {
			t.Errorf("result %d: expected path %s, got %s", i, input[i], res.Path)
		}
	}

	if results[0].HasErrors() || len(results[0].Tokens) != 8 {
		t.Fatalf("a.ttl: expected 8 tokens and no errors, got %d tokens, %v", len(results[0].Tokens), results[0].Diagnostics)
	}
	if results[0].Tokens[0].Kind != tokens.KindDirective {
		t.Errorf("a.ttl: expected DIRECTIVE first, got %s", results[0].Tokens[0].Kind)
	}

	if !results[1].HasErrors() {
		t.Error("b.ttl: expected an error")
	}
	if d := results[1].Diagnostics[0]; d.Line != 1 || d.Column != 11 {
		t.Errorf("b.ttl: expected error at 1:11, got %v", d)
	}

	missing := results[2]
	if !missing.HasErrors() || missing.Diagnostics[0].Severity != "fatal" {
		t.Errorf("missing.ttl: expected fatal diagnostic, got %v", missing.Diagnostics)
	}
	if !strings.Contains(missing.Diagnostics[0].Message, "failed to read file") {
		t.Errorf("missing.ttl: unexpected message %q", missing.Diagnostics[0].Message)
	}

	if results[3].HasErrors() || len(results[3].Diagnostics) != 1 {
		t.Errorf("c.ttl: expected a single warning, got %v", results[3].Diagnostics)
	}
}

func TestTokenizeFiles_WarningsAsErrors(t *testing.T) {
	paths := writeFiles(t, map[string]string{"c.ttl": "<http://ex/a b> ."})
	cfg := config.Default()
	cfg.WarningsAsErrors = true

	results, err := TokenizeFiles(context.Background(), []string{paths["c.ttl"]}, Options{Config: cfg})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].HasErrors() {
		t.Errorf("expected escalated warning, got %v", results[0].Diagnostics)
	}
}

func TestTokenizeFiles_Quads(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"d.nq": "<http://ex/s> <http://ex/p> \"o\" <http://ex/g> .\n_:b <http://ex/p> <http://ex/o> .\n",
		"e.nq": "<http://ex/s> <http://ex/p> .\n",
	})

	results, err := TokenizeFiles(context.Background(), []string{paths["d.nq"], paths["e.nq"]}, Options{
		Config: config.Default(),
		Mode:   ModeQuads,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results[0].Quads) != 2 || results[0].HasErrors() {
		t.Errorf("d.nq: expected 2 quads, got %d, %v", len(results[0].Quads), results[0].Diagnostics)
	}
	if len(results[0].Tokens) != 0 {
		t.Error("d.nq: tokens should not be kept in quads mode")
	}
	if !results[1].HasErrors() {
		t.Error("e.nq: expected a statement error")
	}
}

func TestTokenizeFiles_CheckMode(t *testing.T) {
	paths := writeFiles(t, map[string]string{"a.ttl": "ex:a ex:b ex:c ."})
	results, err := TokenizeFiles(context.Background(), []string{paths["a.ttl"]}, Options{Config: config.Default(), Mode: ModeCheck})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Tokens != nil || results[0].HasErrors() {
		t.Errorf("expected no tokens and no errors, got %+v", results[0])
	}
}

func TestTokenizeFiles_Cancelled(t *testing.T) {
	paths := writeFiles(t, map[string]string{"a.ttl": "ex:a ."})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := TokenizeFiles(ctx, []string{paths["a.ttl"], paths["a.ttl"]}, Options{Config: config.Default()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTokenizeFiles_Empty(t *testing.T) {
	results, err := TokenizeFiles(context.Background(), nil, Options{})
	if err != nil || len(results) != 0 {
		t.Errorf("expected no results, got %v, %v", results, err)
	}
}

func TestTokenizeFiles_Forward(t *testing.T) {
	paths := writeFiles(t, map[string]string{"c.ttl": "<http://ex/a b> ."})
	logger, hook := test.NewNullLogger()

	_, err := TokenizeFiles(context.Background(), []string{paths["c.ttl"]}, Options{
		Config:  config.Default(),
		Forward: func(path string) tokens.ErrorHandler {
			return logging.NewErrorHandler(logger, path, false)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a forwarded warning, got %v", hook.AllEntries())
	}
	if entry.Data[logfields.File] != paths["c.ttl"] {
		t.Errorf("expected file field %s, got %v", paths["c.ttl"], entry.Data[logfields.File])
	}
}

func TestTokenizeFiles_DetectSyntax(t *testing.T) {
	paths := writeFiles(t, map[string]string{
		"a.nt":  "<http://ex/s> <http://ex/p> <http://ex/o> .\n",
		"a.ttl": "<http://ex/s> <http://ex/p> <http://ex/o> .\n",
	})
	input := []string{paths["a.nt"], paths["a.ttl"]}

	results, err := TokenizeFiles(context.Background(), input, Options{Config: config.Default(), DetectSyntax: true})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(results[0].Tokens); n != 5 || results[0].Tokens[n-1].Kind != tokens.KindNL {
		t.Errorf("a.nt: expected line mode tokens, got %v", results[0].Tokens)
	}
	if n := len(results[1].Tokens); n != 4 {
		t.Errorf("a.ttl: expected 4 tokens, got %v", results[1].Tokens)
	}

	results, err = TokenizeFiles(context.Background(), []string{paths["a.ttl"]}, Options{Config: config.Default(), Mode: ModeQuads})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].HasErrors() || !strings.Contains(results[0].Diagnostics[0].Message, "Turtle") {
		t.Errorf("a.ttl: expected quads mode to reject Turtle, got %v", results[0].Diagnostics)
	}
}
