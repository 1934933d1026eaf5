// Package cmd implements the fracalc command line.
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kbolino/fracalc"
	"github.com/kbolino/fracalc/internal/config"
	"github.com/kbolino/fracalc/internal/logging"
	"github.com/kbolino/fracalc/internal/shell"
)

type rootOptions struct {
	cfgFile       string
	verbose       bool
	epsilon       float64
	maxIterations int
	decimalPlaces int
	noColor       bool
}

// Execute runs the fracalc command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the fracalc command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "fracalc",
		Short: "Fraction calculator",
		Long: `fracalc evaluates equations with one operator and two operands written
in mixed-number notation.

Numbers:
  7       whole number
  3/4     fraction
  2_1/2   mixed number (two and a half)
  -1_1/3  negative numbers take a leading minus

Equations separate operands and operator with spaces:
  1_1/2 * 3/4

Without a subcommand fracalc reads equations from standard input until
q, quit or the end of the input.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvVar+", ./fracalc.toml or ~/.config/fracalc/config.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every evaluation to stderr")
	flags.Float64Var(&opts.epsilon, "epsilon", fracalc.DefaultEpsilon, "tolerance of fraction approximation")
	flags.IntVar(&opts.maxIterations, "max-iterations", fracalc.DefaultMaxIterations, "continued-fraction steps before giving up")
	flags.IntVar(&opts.decimalPlaces, "decimal", -1, "also print results with this many decimal places")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newEvalCommand(opts),
		newDecodeCommand(),
		newEncodeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// load reads the configuration and applies the flags that were set.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("epsilon") {
		cfg.Epsilon = o.epsilon
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = o.maxIterations
	}
	if flags.Changed("decimal") {
		cfg.DecimalPlaces = o.decimalPlaces
	}
	if o.noColor {
		cfg.Color = config.ColorNever
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*logrus.Entry, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return logger.WithField("session", uuid.NewString()), nil
}

func shellOptions(cfg *config.Config, log logrus.FieldLogger, interactive bool) shell.Options {
	useColor := false
	switch cfg.Color {
	case config.ColorAlways:
		useColor = true
	case config.ColorAuto:
		useColor = interactive && !color.NoColor
	}
	return shell.Options{
		QuitWords:     cfg.QuitWords,
		DecimalPlaces: cfg.DecimalPlaces,
		Color:         useColor,
		Codec:         fracalc.Codec{Approximator: cfg.Approximator()},
		Logger:        log,
	}
}

func runShell(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	in, interactive, err := openInput(cmd, cfg)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	log.WithField("interactive", interactive).Debug("starting shell")
	sh := shell.New(in, cmd.OutOrStdout(), shellOptions(cfg, log, interactive))
	return sh.Run(cmd.Context())
}
