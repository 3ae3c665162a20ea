// Package batch tokenizes many files concurrently, one tokenizer per file.
package batch

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/internal/diagfmt"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/internal/rdfio"
	"github.com/aleksaelezovic/rdftok/pkg/rdf"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// Mode selects what is produced per file.
type Mode int

const (
	// ModeTokens keeps the token stream.
	ModeTokens Mode = iota
	// ModeQuads reads the file as N-Quads statements.
	ModeQuads
	// ModeCheck only collects diagnostics.
	ModeCheck
)

type Options struct {
	Config config.Config
	Mode   Mode
	// Jobs caps the number of files processed at once. Zero means GOMAXPROCS.
	Jobs int
	Log  logrus.FieldLogger
	// Forward, when set, returns an extra handler that sees every
	// diagnostic of the file as it is reported.
	Forward func(path string) tokens.ErrorHandler
	// DetectSyntax turns on line mode for files whose extension names a
	// line-based syntax (.nt, .nq).
	DetectSyntax bool
}

// Result is the outcome for one file. Diagnostics hold every problem
// found, including a failure to read the file.
type Result struct {
	Path        string
	Source      []byte
	Tokens      []tokens.Token
	Quads       []*rdf.Quad
	Diagnostics []diagfmt.Diagnostic
}

// HasErrors reports whether any diagnostic of the file is an error.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

// TokenizeFiles processes paths in parallel. Results are in input order.
// The returned error is non-nil only when ctx was cancelled; per-file
// problems are reported in the results.
func TokenizeFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	log.WithField(logfields.Jobs, jobs).Debugf("Processing %d files", len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			// Each index is written by exactly one goroutine.
			results[i] = processFile(path, opts, log)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func processFile(path string, opts Options, log logrus.FieldLogger) Result {
	start := time.Now()
	res := Result{Path: path}
	collector := diagfmt.NewCollector(path, opts.Config.WarningsAsErrors)
	if opts.Forward != nil {
		collector.Forward = opts.Forward(path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		collector.AddError(errors.Wrap(err, "failed to read file"))
		res.Diagnostics = collector.Diags
		return res
	}
	res.Source = src

	tokOpts := opts.Config.TokenizerOptions(collector)
	syntax, known := rdfio.ByPath(path)
	if opts.DetectSyntax && known && syntax.LineBased {
		tokOpts.LineMode = true
	}

	switch opts.Mode {
	case ModeQuads:
		if known && !syntax.LineBased {
			collector.AddError(errors.Errorf("%s is not a statement-per-line syntax", syntax.Name))
			res.Diagnostics = collector.Diags
			return res
		}
		reader := rdf.NewQuadReader(bytes.NewReader(src), tokOpts)
		res.Quads, err = reader.ReadAll()
	default:
		tok := tokens.NewTokenizer(bytes.NewReader(src), tokOpts)
		var toks []tokens.Token
		toks, err = tok.ReadAll()
		if opts.Mode == ModeTokens {
			res.Tokens = toks
		}
	}
	collector.AddError(err)
	res.Diagnostics = collector.Diags

	log.WithFields(logrus.Fields{
		logfields.File:     path,
		logfields.Tokens:   len(res.Tokens),
		logfields.Quads:    len(res.Quads),
		logfields.Duration: time.Since(start),
	}).Debug("Processed file")
	return res
}
