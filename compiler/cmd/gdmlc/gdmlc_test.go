package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ex, ok := errors.Cause(err).(*exitError); ok {
		return ex.code
	}
	return -1
}

func fixture(name string) string { return filepath.Join("testdata", name) }

func TestCheckClean(t *testing.T) {
	_, stderr, err := execute(t, "check", fixture("ok.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "summary: 0 error(s), 0 warning(s)\n", stderr)
}

func TestCheckReportsErrors(t *testing.T) {
	_, stderr, err := execute(t, "check", fixture("errors.yaml"))
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr, "error[GTE0001]: Expected type Bool, got type Int\n  --> bad.gdml:8:")
	assert.Contains(t, stderr, "error[GCE0001]: Unknown name y\n  --> bad.gdml:10:")
	assert.Contains(t, stderr, "summary: 2 error(s), 0 warning(s)\n")

	var ex *exitError
	require.True(t, errors.As(err, &ex))
	failures := multierr.Errors(ex.err)
	require.Len(t, failures, 2)
	assert.Contains(t, failures[0].Error(), "bad.gdml:8:")
	assert.Contains(t, failures[0].Error(), "error[GTE0001]: Expected type Bool, got type Int")
	assert.Contains(t, failures[1].Error(), "error[GCE0001]: Unknown name y")
}

func TestCheckMaxErrors(t *testing.T) {
	_, stderr, err := execute(t, "check", "--max-errors", "1", fixture("errors.yaml"))
	require.Equal(t, 1, exitCode(err))
	assert.Len(t, multierr.Errors(errors.Cause(err).(*exitError).err), 1)
	assert.NotContains(t, stderr, "Unknown name y")
	assert.Contains(t, stderr, "info: too many errors")
	assert.Contains(t, stderr, "summary: 1 error(s), 0 warning(s)\n")
}

func TestCheckWarnings(t *testing.T) {
	_, stderr, err := execute(t, "check", fixture("unused.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning[GLW0001]: Unused variable idle")
	assert.Contains(t, stderr, "summary: 0 error(s), 1 warning(s)\n")

	_, _, err = execute(t, "check", "--werror", fixture("unused.yaml"))
	assert.Equal(t, 1, exitCode(err))
	assert.EqualError(t, err, "exit status 1: 1 warning(s) treated as errors")

	_, stderr, err = execute(t, "check", "--no-warn-unused", "--werror", fixture("unused.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "summary: 0 error(s), 0 warning(s)\n", stderr)
}

func TestCheckEnvironment(t *testing.T) {
	t.Setenv("GDMLC_WERROR", "true")
	_, _, err := execute(t, "check", fixture("unused.yaml"))
	assert.Equal(t, 1, exitCode(err))
}

func TestCheckConfigFile(t *testing.T) {
	_, stderr, err := execute(t, "check", "--config", fixture("gdmlc.yaml"), "--werror", fixture("unused.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "summary: 0 error(s), 0 warning(s)\n", stderr)
}

func TestCheckStructuredLogs(t *testing.T) {
	_, stderr, err := execute(t, "check", "--log-format", "json", fixture("errors.yaml"))
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr, `"msg":"Unknown name y"`)
	assert.Contains(t, stderr, `"code":"GCE0001"`)
	assert.Contains(t, stderr, `"msg":"Finished"`)
	assert.NotContains(t, stderr, "error[GCE0001]")

	_, stderr, err = execute(t, "check", "--log-format", "logfmt", fixture("errors.yaml"))
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr, `msg="Unknown name y"`)
}

func TestCheckRejectsBadInput(t *testing.T) {
	_, _, err := execute(t, "check", "--log-format", "xml", fixture("ok.yaml"))
	require.Error(t, err)
	assert.Equal(t, -1, exitCode(err))
	assert.Contains(t, err.Error(), "unknown log format")

	_, _, err = execute(t, "check", "--config", fixture("no-such-config.yaml"), fixture("ok.yaml"))
	require.Error(t, err)
	assert.Equal(t, -1, exitCode(err))
	assert.Contains(t, err.Error(), "read config")

	_, _, err = execute(t, "check", fixture("missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open fixture")

	_, _, err = execute(t, "check")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	stdout, _, err := execute(t, "dump", fixture("ok.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "// ok.gdml\n")
	assert.Contains(t, stdout, "fn add(a: Int, b: Int) -> Int {\n  return (a + b)\n}\n")
	assert.Contains(t, stdout, "  add(1, limit)\n")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gdmlc dev\n", stdout)
}
