// Package runtimecheck verifies that a language runtime meets a minimum
// major.minor version.
package runtimecheck

import (
	"fmt"

	"github.com/vertti/devcheck/pkg/check"
	"github.com/vertti/devcheck/pkg/version"
)

// DefaultMinimum is the lowest accepted runtime version.
var DefaultMinimum = version.Version{Major: 3, Minor: 11}

// Check compares the runtime's (major, minor) against Min.
type Check struct {
	Label  string          // display name, e.g. "Python"
	Min    version.Version // minimum version (inclusive, patch ignored)
	Hint   string          // remediation hint (default: "Install <Label> <Min> or higher")
	Source VersionSource   // injected for testing
}

// Run executes the version check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: c.Label}
	result.WithHint(c.hint())

	v, err := c.Source.Version()
	if err != nil {
		return result.Fail(fmt.Sprintf("%s version unavailable: %v", c.Label, err), err)
	}

	result.Name = fmt.Sprintf("%s %s", c.Label, v.Short())
	if !v.AtLeast(c.Min) {
		return result.Failf("%s %s is too old (need %s+)", c.Label, v.Short(), c.Min.Short())
	}

	result.AddDetailf("version: %s", v)
	return result.Pass()
}

func (c *Check) hint() string {
	if c.Hint != "" {
		return c.Hint
	}
	return fmt.Sprintf("Install %s %s or higher", c.Label, c.Min.Short())
}
