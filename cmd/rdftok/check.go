package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aleksaelezovic/rdftok/internal/batch"
	"github.com/aleksaelezovic/rdftok/internal/diagfmt"
	"github.com/aleksaelezovic/rdftok/internal/logging"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/pkg/tokens"
)

// Diagnostic report styles of the check command
const (
	reportPretty = "pretty"
	reportJSON   = "json"
	reportLog    = "log"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file...",
		Short: "Report tokenization problems; exit non-zero on errors",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().String("diagnostics", reportPretty, "diagnostic report (pretty|json|log)")
	cmd.Flags().Bool("line-mode", false, "emit NL tokens at line ends")
	cmd.Flags().Bool("checking", false, "validate terms with the configured policy")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyTokenizeFlags(cmd, &s.cfg); err != nil {
		return err
	}
	report, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return errors.Wrap(err, "failed to get diagnostics flag")
	}

	opts := s.batchOptions(cmd, batch.ModeCheck)
	switch report {
	case reportPretty, reportJSON:
	case reportLog:
		opts.Forward = func(path string) tokens.ErrorHandler {
			return logging.NewErrorHandler(s.log, path, false)
		}
	default:
		return fmt.Errorf("unknown diagnostics report %q", report)
	}

	results, err := batch.TokenizeFiles(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var all []diagfmt.Diagnostic
	errorCount, warningCount := 0, 0
	for _, res := range results {
		for _, d := range res.Diagnostics {
			if d.IsError() {
				errorCount++
			} else {
				warningCount++
			}
		}
		switch report {
		case reportPretty:
			if err := s.reportDiagnostics(cmd.ErrOrStderr(), res); err != nil {
				return err
			}
		case reportJSON:
			all = append(all, res.Diagnostics...)
		}
	}
	if report == reportJSON {
		if err := diagfmt.FormatDiagnosticsJSON(cmd.OutOrStdout(), all); err != nil {
			return errors.Wrap(err, "failed to write diagnostics")
		}
	}

	s.log.WithFields(logrus.Fields{
		logfields.Files:    len(results),
		logfields.Errors:   errorCount,
		logfields.Warnings: warningCount,
	}).Info("Check finished")

	if errorCount > 0 {
		return errDiagnostics
	}
	return nil
}
