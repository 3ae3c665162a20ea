package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aleksaelezovic/rdftok/internal/batch"
	"github.com/aleksaelezovic/rdftok/internal/logging/logfields"
	"github.com/aleksaelezovic/rdftok/pkg/rdf"
)

func newQuadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quads [flags] file...",
		Short: "Read N-Triples or N-Quads and print them in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runQuads,
	}
	cmd.Flags().Bool("checking", false, "validate terms with the configured policy")
	return cmd
}

func runQuads(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := applyTokenizeFlags(cmd, &s.cfg); err != nil {
		return err
	}

	results, err := batch.TokenizeFiles(cmd.Context(), args, s.batchOptions(cmd, batch.ModeQuads))
	if err != nil {
		return err
	}

	failed := false
	for _, res := range results {
		if err := s.reportDiagnostics(cmd.ErrOrStderr(), res); err != nil {
			return err
		}
		if res.HasErrors() {
			failed = true
			continue
		}
		if err := rdf.WriteQuadsCanonical(cmd.OutOrStdout(), res.Quads); err != nil {
			return errors.Wrapf(err, "failed to write quads of %s", res.Path)
		}
		s.log.WithField(logfields.File, res.Path).
			WithField(logfields.Quads, len(res.Quads)).
			Debug("Read quads")
	}
	if failed {
		return errDiagnostics
	}
	return nil
}
