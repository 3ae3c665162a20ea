package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aleksaelezovic/rdftok/internal/batch"
	"github.com/aleksaelezovic/rdftok/internal/config"
	"github.com/aleksaelezovic/rdftok/internal/diagfmt"
	"github.com/aleksaelezovic/rdftok/internal/logging"
)

// errDiagnostics is returned when a file had errors. They have already
// been reported, so main only sets the exit status.
var errDiagnostics = errors.New("errors found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rdftok",
		Short:         "Tokenizer for Turtle, TriG, N-Triples, N-Quads and SPARQL terms",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a TOML configuration file")
	rootCmd.PersistentFlags().String("color", config.ColorAuto, "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (overrides the configuration)")
	rootCmd.PersistentFlags().Int("jobs", 0, "files processed in parallel (0 = GOMAXPROCS)")

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newQuadsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// settings is the configuration after command-line overrides.
type settings struct {
	cfg   config.Config
	log   *logrus.Logger
	jobs  int
	color bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()

	cfg := config.Default()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get config flag")
	}
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return nil, errors.Wrap(err, "failed to load configuration")
		}
	}

	if flags.Changed("color") {
		if cfg.Output.Color, err = flags.GetString("color"); err != nil {
			return nil, errors.Wrap(err, "failed to get color flag")
		}
	}
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return nil, errors.Wrap(err, "failed to get log-level flag")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get jobs flag")
	}

	return &settings{
		cfg:   cfg,
		log:   logging.NewWithOutput(cfg.Log, cmd.ErrOrStderr()),
		jobs:  jobs,
		color: useColor(cfg.Output.Color, cmd.ErrOrStderr()),
	}, nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *settings) batchOptions(cmd *cobra.Command, mode batch.Mode) batch.Options {
	return batch.Options{
		Config:       s.cfg,
		Mode:         mode,
		Jobs:         s.jobs,
		Log:          s.log,
		DetectSyntax: !cmd.Flags().Changed("line-mode"),
	}
}

// reportDiagnostics pretty-prints the diagnostics of one file.
func (s *settings) reportDiagnostics(w io.Writer, res batch.Result) error {
	if len(res.Diagnostics) == 0 {
		return nil
	}
	opts := diagfmt.PrettyOpts{Color: s.color, ShowSource: true}
	if err := diagfmt.Pretty(w, res.Diagnostics, res.Source, opts); err != nil {
		return errors.Wrap(err, "failed to write diagnostics")
	}
	return nil
}
