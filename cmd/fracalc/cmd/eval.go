package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbolino/fracalc"
	"github.com/kbolino/fracalc/internal/shell"
)

func newEvalCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <equation>",
		Short: "Evaluate a single equation",
		Long: `Evaluate a single equation and print the result.

The arguments are joined with spaces, so quoting is optional. Put -- before
an equation that starts with a negative number:

  fracalc eval 1_1/2 + 3/4
  fracalc eval -- -1/2 * 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			line := strings.Join(args, " ")
			sh := shell.New(nil, cmd.OutOrStdout(), shellOptions(cfg, log, false))
			result, err := sh.Evaluate(line)
			if err != nil {
				return fmt.Errorf("%s: %w", fracalc.KindOf(err), err)
			}
			log.WithField("input", line).WithField("result", result).Debug("evaluated")
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <number>",
		Short: "Print the decimal value of a mixed number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fracalc.DecodeNumber(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", fracalc.KindOf(err), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}
}

func newEncodeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Print a decimal number as a mixed number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%s: %w", fracalc.NumberParseError, err)
			}
			s, err := fracalc.Codec{Approximator: cfg.Approximator()}.Encode(v)
			if err != nil {
				return fmt.Errorf("%s: %w", fracalc.KindOf(err), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}
