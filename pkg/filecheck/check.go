// Package filecheck verifies that a configuration file is present.
package filecheck

import (
	"fmt"
	"os"

	"github.com/vertti/devcheck/pkg/check"
)

// Check verifies that a file exists at Path.
// The file is stat'ed on every Run; its content is never read.
type Check struct {
	Path     string     // path to check, relative to the working directory
	Template string     // file to copy from when Path is missing, e.g. ".env.example"
	Hint     string     // remediation hint (default derived from Template)
	FS       FileSystem // injected for testing
}

// Run executes the file check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("%s file", c.Path),
	}
	result.WithHint(c.hint())

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail(fmt.Sprintf("%s file not found", c.Path), err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}

	if info.IsDir() {
		result.AddDetail("type: directory")
	}
	return result.Pass()
}

func (c *Check) hint() string {
	switch {
	case c.Hint != "":
		return c.Hint
	case c.Template != "":
		return fmt.Sprintf("Run: cp %s %s", c.Template, c.Path)
	default:
		return fmt.Sprintf("Create %s", c.Path)
	}
}
