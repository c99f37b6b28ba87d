// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lhagrid/combine"
	"github.com/katalvlaran/lhagrid/job"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	out       io.Writer
	verbose   bool
	logFormat string

	logger   *zap.Logger
	injected bool // logger supplied by the caller; never rebuilt or synced
}

// newRootCmd builds the command tree. A non-nil logger is used as-is instead
// of one built from the logging flags.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	c := &cli{out: out, logger: logger, injected: logger != nil}

	root := &cobra.Command{
		Use:   "lhacombine",
		Short: "Combine LHAPDF grid files element by element",
		Long: `lhacombine reads two or more LHAPDF grid files with identical structure
(headers, subgrids, x and q axes, flavors) and writes one grid whose values
are the weighted sum, weighted product or average of the inputs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil && !c.injected {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "console", "log encoding: console or json")

	for _, op := range combine.Operations() {
		root.AddCommand(c.newCombineCmd(op))
	}
	root.AddCommand(c.newRunCmd(), c.newOpsCmd())

	return root
}

func (c *cli) loggingConfig() job.LoggingConfig {
	cfg := job.LoggingConfig{Level: "info", Format: c.logFormat}
	if c.verbose {
		cfg.Level = "debug"
	}

	return cfg
}

func (c *cli) initLogger(cmd *cobra.Command, args []string) error {
	if !slices.Contains(job.ValidLogFormats, c.logFormat) {
		return fmt.Errorf("invalid --log-format %q (valid: %v)", c.logFormat, job.ValidLogFormats)
	}
	if c.injected {
		return nil
	}
	logger, err := job.NewLogger(c.loggingConfig())
	if err != nil {
		return err
	}
	c.logger = logger

	return nil
}

// newCombineCmd builds the flag-driven subcommand for op.
func (c *cli) newCombineCmd(op combine.Operation) *cobra.Command {
	var (
		output  string
		weights []float64
		epsilon float64
	)

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s -o OUT [flags] IN1 IN2 [IN...]", op),
		Short: combineShort[op],
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := job.DefaultJob()
			j.Operation = op.String()
			j.Inputs = args
			j.Weights = weights
			j.Output = output
			if op == combine.Multiply {
				j.Epsilon = epsilon
			}
			j.Logging = c.loggingConfig()

			if err := j.Validate(); err != nil {
				return err
			}
			if err := j.Run(cmd.Context(), c.logger); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "wrote %s\n", output)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output grid file")
	cmd.Flags().Float64SliceVarP(&weights, "weights", "w", nil, "one weight per input, comma separated (default 1 each)")
	if op == combine.Multiply {
		cmd.Flags().Float64Var(&epsilon, "epsilon", combine.DefaultEpsilon, "magnitude below which values are clamped")
	}
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

var combineShort = map[combine.Operation]string{
	combine.Add:      "Weighted sum of the inputs",
	combine.Multiply: "Weighted product of the inputs (values raised to their weights)",
	combine.Average:  "Unweighted mean of the inputs",
}

// newRunCmd runs a YAML job file. The job's own logging section applies
// unless a logger was injected.
func (c *cli) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run JOB.yaml",
		Short: "Run a combination described by a YAML job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := job.Load(args[0])
			if err != nil {
				return err
			}
			if err := j.Validate(); err != nil {
				return err
			}
			if !c.injected {
				logger, err := job.NewLogger(j.Logging)
				if err != nil {
					return err
				}
				_ = c.logger.Sync()
				c.logger = logger
			}
			if err := j.Run(cmd.Context(), c.logger); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "wrote %s\n", j.Output)

			return nil
		},
	}
}

func (c *cli) newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range combine.Operations() {
				fmt.Fprintln(c.out, op)
			}

			return nil
		},
	}
}
