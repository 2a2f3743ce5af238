package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/specimen/internal/script"
	"github.com/roach88/specimen/internal/trace"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Trace bool

	// Tokens allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens script.TokenGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration sequence",
		Long: `Run the fixed demonstration sequence and print its canonical lines:

  Hello, 世界!
  Result: 8
  计算结果: 8
  偶数的平方: [0, 4, 16, 36, 64]

The sequence takes no input and always exits 0. With --trace, the recorded
step events are listed after the canonical lines.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "list recorded step events after the output")

	return cmd
}

func runScript(opts *RunOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag. Canonical output never goes
	// through the logger, so this only affects stderr.
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	runner := &script.Runner{
		Out:    cmd.OutOrStdout(),
		Tokens: opts.Tokens,
		Logger: logger,
	}

	var rec *trace.Recorder
	if opts.Trace {
		var err error
		rec, err = trace.Open()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open trace recorder", err)
		}
		defer func() {
			if closeErr := rec.Close(); closeErr != nil {
				logger.Error("error closing trace recorder", "error", closeErr)
			}
		}()
		runner.Recorder = rec
	}

	// Use the command's context if available (set by Execute), otherwise
	// fall back for direct calls from tests.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := runner.Run(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "script run failed", err)
	}

	if opts.Trace {
		events, err := rec.List(ctx, result.RunToken)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list step events", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "trace (%s):\n", result.RunToken)
		for _, ev := range events {
			fmt.Fprintf(out, "  %d %s %s\n", ev.Seq, ev.Step, ev.Detail)
		}
	}

	logger.Debug("run finished", "run_token", result.RunToken, "status", result.Status)
	return nil
}
