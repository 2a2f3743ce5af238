package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/specimen/internal/calc"
)

// NewCalcCommand creates the calc command for direct calculator invocation.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <x> <y>",
		Short: "Invoke the pair calculator directly",
		Long: `Invoke the pair calculator with two integers.

Both values must be strictly positive; the calculator prints its Result
line and the sum. Non-positive inputs produce the 错误 diagnostic line and
exit code 1.

Example:
  specimen calc 5 3
  specimen calc -- -1 3`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCalc(opts *RootOptions, args []string, cmd *cobra.Command) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid x %q", args[0]), err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid y %q", args[1]), err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// The calculator's Result line is part of its contract. In JSON mode it
	// is routed to stderr so stdout stays a single parseable document.
	sumOut := cmd.OutOrStdout()
	if opts.Format == "json" {
		sumOut = formatter.GetErrWriter()
	}

	sum, err := calc.Sum(sumOut, x, y)
	if err != nil {
		de := calc.AsDomainError(err)
		if de == nil {
			return WrapExitError(ExitCommandError, "calculator failed", err)
		}

		if opts.Format == "json" {
			if outErr := formatter.Error(string(de.Code), de.Message, map[string]int{"x": de.X, "y": de.Y}); outErr != nil {
				return WrapExitError(ExitCommandError, "failed to write output", outErr)
			}
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "错误: %s\n", de.Message)
		}
		return WrapExitError(ExitFailure, "calculation rejected", err)
	}

	if opts.Format == "json" {
		if outErr := formatter.Success(map[string]int{"x": x, "y": y, "sum": sum}); outErr != nil {
			return WrapExitError(ExitCommandError, "failed to write output", outErr)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "计算结果: %d\n", sum)
	return nil
}
