package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopsis/config"
	"github.com/katalvlaran/lvtopsis/internal/app"
	"github.com/katalvlaran/lvtopsis/internal/logging"
)

const (
	appName = "topsis"
	version = "v1.0.0"
)

// execute runs the root command and maps the outcome to an exit code.
// Errors are printed to stderr; any failure exits non-zero.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName + " <input_file> <weights> <impacts> <output_file>",
		Short:   "Rank alternatives with TOPSIS",
		Version: version,
		Long: `Rank the rows of a decision table with TOPSIS.

The input is a CSV (or .xlsx) file whose first column names each alternative
and whose remaining columns are numeric criteria. Weights and impacts are
comma-separated lists with one entry per criterion; impacts are '+' (higher is
better) or '-' (lower is better).

The output file repeats the input and appends a score and a rank column.`,
		Example: `  topsis data.csv "1,1,1,2" "+,+,-,+" result.csv
  topsis data.xlsx "0.5,0.5,1" "-,+,+" out.csv --sheet Phones --precision 4
  topsis latin1.csv "1,1,1" "+,+,+" out.csv --encoding iso-8859-1 --log-format json`,
		Args:          cobra.ExactArgs(4),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true // arguments are fine; don't dump usage for run failures
			return runScore(cmd, args, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.BindFlags(cmd.Flags())

	return cmd
}

// runScore resolves configuration, builds the logger and runs the pipeline.
func runScore(cmd *cobra.Command, args []string, stderr io.Writer) error {
	cfg, err := config.Load(config.Path(cmd.Flags()))
	if err != nil {
		return err
	}
	if err = cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(cmd.Context())

	sum, err := app.Run(ctx, cfg, app.Request{
		InputPath:  args[0],
		Weights:    args[1],
		Impacts:    args[2],
		OutputPath: args[3],
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s (best: %s)\n", sum.OutputPath, sum.Best)

	return nil
}
