// Package toolcheck verifies a tool that is commonly installed into a
// per-user location outside PATH, such as ~/.local/bin/poetry.
//
// Resolution happens in two steps. The per-user install is tried first; if
// it is conclusively working the check passes. Anything else is
// inconclusive and the check delegates to a plain PATH presence check.
package toolcheck

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vertti/devcheck/pkg/check"
	"github.com/vertti/devcheck/pkg/cmdcheck"
	"github.com/vertti/devcheck/pkg/filecheck"
	"github.com/vertti/devcheck/pkg/runner"
)

// DefaultUserDir is where per-user installers place executables, relative
// to the home directory.
var DefaultUserDir = filepath.Join(".local", "bin")

var errInconclusive = errors.New("per-user install inconclusive")

// Check verifies a tool via its per-user install path, falling back to PATH.
type Check struct {
	Command  string                 // bare command name, e.g. "poetry"
	Label    string                 // display name, e.g. "Poetry"
	UserPath string                 // path relative to home (default: DefaultUserDir/Command)
	Timeout  time.Duration          // version query timeout (default: cmdcheck.DefaultTimeout)
	Hint     string                 // remediation hint on failure
	HomeDir  func() (string, error) // injected for testing
	FS       filecheck.FileSystem   // injected for testing
	Runner   runner.Runner          // injected for testing
}

// Run executes the tool check.
func (c *Check) Run() check.Result {
	if result, err := c.fromUserPath(); err == nil {
		return result
	}
	return c.fallback().Run()
}

// fromUserPath runs the per-user binary. Every failure is reported as
// errInconclusive so the caller can fall back.
func (c *Check) fromUserPath() (check.Result, error) {
	path, err := c.userPath()
	if err != nil {
		return check.Result{}, fmt.Errorf("%w: %w", errInconclusive, err)
	}
	if _, err := c.FS.Stat(path); err != nil {
		return check.Result{}, fmt.Errorf("%w: %w", errInconclusive, err)
	}

	completion, err := runner.Run(c.Runner, c.timeout(), path, "--version")
	if err != nil {
		return check.Result{}, fmt.Errorf("%w: %w", errInconclusive, err)
	}
	if !completion.Success() {
		return check.Result{}, fmt.Errorf("%w: %s exited with status %d", errInconclusive, path, completion.ExitCode)
	}

	result := check.Result{Name: c.label()}
	result.WithHint(c.Hint)
	result.AddDetailf("path: %s", path)
	if banner := strings.TrimSpace(completion.Stdout); banner != "" {
		result.AddDetailf("version: %s", banner)
	}
	return result.Pass(), nil
}

func (c *Check) userPath() (string, error) {
	if filepath.IsAbs(c.UserPath) {
		return c.UserPath, nil
	}
	homeDir := c.HomeDir
	if homeDir == nil {
		return "", errors.New("home directory resolver not configured")
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	rel := c.UserPath
	if rel == "" {
		rel = filepath.Join(DefaultUserDir, c.Command)
	}
	return filepath.Join(home, rel), nil
}

func (c *Check) fallback() *cmdcheck.Check {
	return &cmdcheck.Check{
		Name:    c.Command,
		Label:   c.label(),
		Timeout: c.timeout(),
		Hint:    c.Hint,
		Runner:  c.Runner,
	}
}

func (c *Check) timeout() time.Duration {
	if c.Timeout == 0 {
		return cmdcheck.DefaultTimeout
	}
	return c.Timeout
}

func (c *Check) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Command
}
