package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and returns the
// captured stdout, stderr, and error.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()

	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return outBuf.String(), errBuf.String(), err
}

// exitCode maps an error returned by the command tree to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "sitemapgen validates a set of page records")
	assert.Contains(t, stdout, "generate")
	assert.Contains(t, stdout, "validate")
	assert.Contains(t, stdout, "diff")
	assert.Contains(t, stdout, "watch")
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	_, _, err := executeCommand(t, "bogus")
	require.Error(t, err)
}

func TestRootCommand_UnknownFlag(t *testing.T) {
	_, _, err := executeCommand(t, "version", "--bogus")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	// Config validation runs in the persistent pre-run of every command
	// except version and completion.
	_, _, err := executeCommand(t, "--log-level", "loud", "validate", "nope.yaml")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestExitError(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := &ExitError{Code: 7, Err: inner}

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))

	bare := &ExitError{Code: 3}
	assert.Equal(t, "exit code 3", bare.Error())
}
