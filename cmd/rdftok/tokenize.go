package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aleksaelezovic/rdftok/internal/batch"
	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/internal/diagfmt"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file...",
		Short: "Print the tokens of RDF documents",
		Long:  `Tokenize splits Turtle, TriG, N-Triples, N-Quads or SPARQL text into tokens`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", config.FormatPretty, "output format (pretty|json|msgpack|turtle)")
	cmd.Flags().Bool("line-mode", false, "emit NL tokens at line ends")
	cmd.Flags().Bool("checking", false, "validate terms with the configured policy")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyTokenizeFlags(cmd, &s.cfg); err != nil {
		return err
	}

	results, err := batch.TokenizeFiles(cmd.Context(), args, s.batchOptions(cmd, batch.ModeTokens))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, res := range results {
		if err := s.reportDiagnostics(cmd.ErrOrStderr(), res); err != nil {
			return err
		}
		if res.HasErrors() {
			failed = true
			continue
		}
		if len(results) > 1 && s.cfg.Output.Format == config.FormatPretty {
			fmt.Fprintf(out, "==> %s <==\n", res.Path)
		}
		if err := writeTokens(out, s.cfg.Output.Format, res.Tokens); err != nil {
			return errors.Wrapf(err, "failed to write tokens of %s", res.Path)
		}
		s.log.WithField(logfields.File, res.Path).
			WithField(logfields.Tokens, len(res.Tokens)).
			Debug("Tokenized file")
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func applyTokenizeFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("format") {
		if cfg.Output.Format, err = flags.GetString("format"); err != nil {
			return errors.Wrap(err, "failed to get format flag")
		}
	}
	if flags.Changed("line-mode") {
		if cfg.LineMode, err = flags.GetBool("line-mode"); err != nil {
			return errors.Wrap(err, "failed to get line-mode flag")
		}
	}
	if flags.Changed("checking") {
		if cfg.Checking, err = flags.GetBool("checking"); err != nil {
			return errors.Wrap(err, "failed to get checking flag")
		}
	}
	return cfg.Validate()
}

func writeTokens(w io.Writer, format string, toks []tokens.Token) error {
	if err := diagfmt.FormatTokens(w, format, toks); err != nil {
		return err
	}
	// Re-emitted source ends with a newline like any text file.
	if format == config.FormatTurtle && len(toks) > 0 && toks[len(toks)-1].Kind != tokens.KindNL {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
