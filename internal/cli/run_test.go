package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/specimen/internal/testutil"
)

func TestRunProducesCanonicalOutput(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, canonicalOutput, out.String())
}

func TestRunRejectsPositionalArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "extra"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRunWithTraceListsStepEvents(t *testing.T) {
	out := &bytes.Buffer{}
	opts := &RunOptions{
		RootOptions: &RootOptions{Format: "text"},
		Trace:       true,
		Tokens:      testutil.NewFixedTokenGenerator("run-1"),
	}
	cmd := NewRunCommand(opts.RootOptions)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, runScript(opts, cmd))

	output := out.String()
	assert.True(t, strings.HasPrefix(output, canonicalOutput))
	assert.Contains(t, output, "trace (run-1):")
	assert.Contains(t, output, "1 entity name=世界")
	assert.Contains(t, output, "3 calculate sum=8")
	assert.Contains(t, output, "6 done status=0")
}

func TestRunTraceFlagViaExecute(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--trace"})

	err := cmd.Execute()
	require.NoError(t, err)

	// Canonical lines first, then the six recorded steps.
	output := out.String()
	assert.True(t, strings.HasPrefix(output, canonicalOutput))
	assert.Contains(t, output, "trace (")
	assert.Contains(t, output, "5 manifest name=vim version=9.1 features=3")
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"run", "--verbose"})

	err := cmd.Execute()
	require.NoError(t, err)

	// Debug logging must not contaminate the canonical output.
	assert.Equal(t, canonicalOutput, out.String())
	assert.Contains(t, errOut.String(), "script run complete")
}
