// Command expviz draws the charts of the credential status benchmark
// from a table of experiment results.
//
//	expviz --exp states_cost --log debug
//	expviz list
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vdobler/expplot"
	"github.com/vdobler/expplot/experiment"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loadData reads the results table.
var loadData = expplot.ReadFile

type options struct {
	exp    string
	config string
	data   string
	images string
	format string
	show   bool
	level  logLevel
}

func newRootCmd() *cobra.Command {
	opts := &options{level: logLevel(zapcore.InfoLevel)}
	defaults := experiment.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "expviz",
		Short: "Plot experiment results",
		Long: `expviz loads the experiment results table, adds the display columns
and draws the chart of one experiment. The chart is written to the image
directory and opened in the default viewer.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().Var(&opts.level, "log", "log level: d|debug|10, i|info|20 or w|warning|30")

	flags := cmd.Flags()
	flags.StringVar(&opts.exp, "exp", "", "experiment to plot, see 'expviz list'")
	flags.StringVar(&opts.config, "config", "", "YAML config file")
	flags.StringVar(&opts.data, "data", defaults.Data, "results table (.csv, .parquet or .arrow)")
	flags.StringVar(&opts.images, "images", defaults.Images, "output directory")
	flags.StringVar(&opts.format, "format", defaults.Format, "image format")
	flags.BoolVar(&opts.show, "show", true, "open the chart in the default viewer")
	_ = cmd.MarkFlagRequired("exp")

	cmd.AddCommand(newListCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range experiment.Names() {
				r, _ := experiment.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", name, r.Chart)
			}
			return nil
		},
	}
}

func newLogger(level logLevel) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.Level(level))
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func run(cmd *cobra.Command, opts *options) error {
	logger, err := newLogger(opts.level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := experiment.DefaultConfig()
	if opts.config != "" {
		if cfg, err = experiment.LoadConfig(opts.config); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = opts.data
	}
	if flags.Changed("images") {
		cfg.Images = opts.images
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}

	if _, err := experiment.Lookup(opts.exp); err != nil {
		logger.Error("Unknown experiment", zap.String("experiment", opts.exp), zap.Strings("known", experiment.Names()))
		return err
	}

	df, err := loadData(cfg.Data)
	if err != nil {
		return err
	}
	logger.Debug("Loaded results",
		zap.String("path", cfg.Data),
		zap.Int("rows", df.N),
		zap.Strings("columns", df.FieldNames()))

	if err := experiment.AddDerivedColumns(df); err != nil {
		return err
	}

	var viewer expplot.Viewer = expplot.NopViewer{}
	if opts.show {
		viewer = expplot.BrowserViewer{}
	}
	runner, err := experiment.NewRunner(cfg, logger, viewer)
	if err != nil {
		return err
	}
	path, err := runner.Run(opts.exp, df)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
