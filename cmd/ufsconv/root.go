package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/arloliu/ufsconv/format"
	"github.com/arloliu/ufsconv/internal/config"
	"github.com/arloliu/ufsconv/internal/convert"
	"github.com/arloliu/ufsconv/internal/picker"
)

var errNoFiles = errors.New("no input files selected")

// app carries the state shared by all subcommands.
type app struct {
	cfgFile     string
	verbose     bool
	quiet       bool
	compression string
	legacy      bool

	cfg  config.Config
	log  zerolog.Logger
	conv *convert.Converter

	// workDir is searched for candidates when no files are given.
	workDir string
	pick    func(label string, candidates []string) ([]string, error)
}

func newApp() *app {
	return &app{
		workDir: ".",
		pick: func(label string, candidates []string) ([]string, error) {
			return picker.New(label).Pick(candidates)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ufsconv",
		Short: "Convert between CSV tables and UFS spectroscopy files",
		Long: `ufsconv converts 2-D measurement tables between comma-separated text and the
UFS binary container. Run a subcommand without file arguments to pick the input
files interactively.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is "+config.DefaultPath+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "log warnings and errors only")
	flags.StringVar(&a.compression, "compression", "", "compress UFS output: none, zstd, s2 or lz4")
	flags.BoolVar(&a.legacy, "legacy-trailer", false, "end the table at the first non-numeric row and keep the rest as metadata")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	root.AddCommand(newEncodeCmd(a), newDecodeCmd(a), newInspectCmd(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("compression") {
		c, err := format.ParseCompression(a.compression)
		if err != nil {
			return err
		}
		cfg.Compression = c
	}
	if flags.Changed("legacy-trailer") {
		cfg.LegacyTrailer = a.legacy
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
	a.conv = convert.New(cfg, a.log)

	return nil
}

func newLogger(w io.Writer, verbose, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.WarnLevel
	}

	noColor := w != os.Stderr
	if !noColor {
		w = colorable.NewColorableStderr()
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().
		Timestamp().
		Str("run", ksuid.New().String()).
		Logger()
}

// inputs returns args, or asks the operator to pick files when args is empty.
func (a *app) inputs(cmd *cobra.Command, args []string, label string, extensions ...string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	candidates, err := picker.Candidates(a.workDir, extensions...)
	if err != nil {
		return nil, err
	}

	files, err := a.pick(label, candidates)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No input files selected. Exiting.")
		return nil, errNoFiles
	}

	return files, nil
}

// run processes files with fn and reports how many failed.
func (a *app) run(cmd *cobra.Command, files []string, fn convert.FileFunc) ([]convert.Result, error) {
	results, err := a.conv.Run(cmd.Context(), files, fn)
	if err != nil {
		a.log.Debug().Err(err).Msg("run finished with failures")
		return results, fmt.Errorf("%d of %d files failed", len(files)-len(results), len(files))
	}

	return results, nil
}
