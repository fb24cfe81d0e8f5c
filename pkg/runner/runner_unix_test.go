//go:build unix

package runner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)) //nolint:gosec // test script must be executable
	return path
}

func TestRealRunner_ExitCodes(t *testing.T) {
	r := &RealRunner{}

	c, err := Run(r, 5*time.Second, writeScript(t, "echo tool 1.2.3"))
	require.NoError(t, err)
	assert.True(t, c.Success())
	assert.Equal(t, "tool 1.2.3\n", c.Stdout)

	c, err = Run(r, 5*time.Second, writeScript(t, "echo broken >&2; exit 3"), "--version")
	require.NoError(t, err)
	assert.Equal(t, 3, c.ExitCode)
	assert.Equal(t, "broken\n", c.Output())
}

func TestRealRunner_NotFound(t *testing.T) {
	r := &RealRunner{}

	_, err := Run(r, 2*time.Second, "devcheck-nonexistent-command-12345", "--version")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Run(r, 2*time.Second, filepath.Join(t.TempDir(), "missing"), "--version")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRealRunner_Timeout(t *testing.T) {
	r := &RealRunner{}
	script := writeScript(t, "exec sleep 10")

	start := time.Now()
	_, err := Run(r, 200*time.Millisecond, script)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, elapsed, 3*time.Second)
}
