package cmdcheck

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/devcheck/pkg/check"
	"github.com/vertti/devcheck/pkg/runner"
	"github.com/vertti/devcheck/pkg/testutil"
)

func notInPath(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

func TestCommandCheck_NotFound(t *testing.T) {
	r := &testutil.MockRunner{LookPathFunc: notInPath}

	c := &Check{
		Name:   "nonexistent",
		Label:  "Nonexistent",
		Hint:   "Install it",
		Runner: r,
	}

	result := c.Run()

	assert.Equal(t, check.StatusFail, result.Status)
	assert.Equal(t, "Nonexistent", result.Name)
	assert.Equal(t, "Install it", result.Hint)
	assert.ErrorIs(t, result.Err, runner.ErrNotFound)
	assert.True(t, testutil.ContainsDetail(result.Details, "is not installed or not running"))
	assert.Empty(t, r.Calls, "command must not run when it is not in PATH")
}

func TestCommandCheck_Found(t *testing.T) {
	r := &testutil.MockRunner{RunFunc: testutil.Output("Poetry (version 1.8.3)\n", 0)}

	c := &Check{Name: "poetry", Label: "Poetry", Runner: r}

	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
	assert.Equal(t, "Poetry", result.Name)
	assert.Equal(t, []string{"path: /usr/bin/poetry", "version: Poetry (version 1.8.3)"}, result.Details)
	assert.Equal(t, []string{"poetry --version"}, r.Calls)
}

func TestCommandCheck_NonzeroExitStillPresent(t *testing.T) {
	r := &testutil.MockRunner{RunFunc: testutil.Output("", 2)}

	c := &Check{Name: "poetry", Runner: r}

	result := c.Run()

	assert.Equal(t, check.StatusOK, result.Status)
	assert.Equal(t, "poetry", result.Name)
	assert.True(t, testutil.ContainsDetail(result.Details, "exit status: 2"))
	assert.NoError(t, result.Err)
}

func TestCommandCheck_Timeout(t *testing.T) {
	r := &testutil.MockRunner{RunFunc: testutil.Hang()}

	c := &Check{Name: "poetry", Timeout: 20 * time.Millisecond, Runner: r}

	start := time.Now()
	result := c.Run()

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, check.StatusFail, result.Status)
	assert.ErrorIs(t, result.Err, runner.ErrTimeout)
	assert.True(t, testutil.ContainsDetail(result.Details, "timed out after 20ms"))
	assert.True(t, testutil.ContainsDetail(result.Details, "is not installed or not running"))
}

func TestCommandCheck_CustomVersionArgs(t *testing.T) {
	r := &testutil.MockRunner{}

	c := &Check{Name: "go", VersionArgs: []string{"version"}, Runner: r}
	result := c.Run()

	assert.True(t, result.OK())
	assert.Equal(t, []string{"go version"}, r.Calls)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "", firstLine("  \n"))
	assert.Equal(t, "a", firstLine("a\nb"))
	assert.Equal(t, "Docker version 27.1.1", firstLine(" Docker version 27.1.1 \n"))
}
