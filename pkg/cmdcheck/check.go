// Package cmdcheck verifies that a command is installed and can be invoked.
//
// Only presence is tested: a command that starts and exits before the
// timeout passes even when it reports a nonzero exit status.
package cmdcheck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vertti/devcheck/pkg/check"
	"github.com/vertti/devcheck/pkg/runner"
)

// DefaultTimeout bounds the version query.
const DefaultTimeout = 2 * time.Second

// Check verifies that a command exists and can run.
type Check struct {
	Name        string        // command name to check
	Label       string        // display name (default: Name)
	VersionArgs []string      // args to get version (default: --version)
	Timeout     time.Duration // timeout for version command (default: 2s)
	Hint        string        // remediation hint on failure
	Runner      runner.Runner // injected for testing
}

// Run executes the command check.
func (c *Check) Run() check.Result {
	label := c.label()
	result := check.Result{Name: label}
	result.WithHint(c.Hint)
	missing := fmt.Sprintf("%s is not installed or not running", label)

	path, err := c.Runner.LookPath(c.Name)
	if err != nil {
		return result.Fail(missing, fmt.Errorf("%s: %w: %w", c.Name, runner.ErrNotFound, err))
	}
	result.AddDetailf("path: %s", path)

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	completion, err := runner.Run(c.Runner, timeout, c.Name, args...)
	if err != nil {
		if errors.Is(err, runner.ErrTimeout) {
			result.AddDetailf("version command timed out after %s", timeout)
		}
		return result.Fail(missing, err)
	}

	if !completion.Success() {
		result.AddDetailf("exit status: %d", completion.ExitCode)
	}
	if out := firstLine(completion.Output()); out != "" {
		result.AddDetailf("version: %s", out)
	}
	return result.Pass()
}

func (c *Check) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
