package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/specimen/internal/manifest"
)

// NewManifestCommand creates the manifest command.
func NewManifestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the compiled demonstration manifest",
		Long: `Compile the embedded CUE manifest and print the resulting mapping.

The manifest is a fixed, read-only value; this command exists to inspect
what the script constructs in its final step.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(rootOpts, cmd)
		},
	}

	return cmd
}

func runManifest(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	m, err := manifest.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load manifest", err)
	}

	if opts.Format == "json" {
		if outErr := formatter.Success(m); outErr != nil {
			return WrapExitError(ExitCommandError, "failed to write output", outErr)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name: %s\n", m.Name)
	fmt.Fprintf(out, "version: %s\n", m.Version)
	fmt.Fprintf(out, "features: %s\n", strings.Join(m.Features, ", "))
	return nil
}
