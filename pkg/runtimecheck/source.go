package runtimecheck

import (
	"fmt"
	"runtime"
	"time"

	"github.com/vertti/devcheck/pkg/runner"
	"github.com/vertti/devcheck/pkg/version"
)

// VersionSource reports the version of the runtime being checked.
type VersionSource interface {
	Version() (version.Version, error)
}

// GoRuntime reports the version of the Go runtime executing this process.
type GoRuntime struct{}

func (GoRuntime) Version() (version.Version, error) {
	return version.Extract(runtime.Version())
}

// Static reports a fixed version.
type Static version.Version

func (s Static) Version() (version.Version, error) {
	return version.Version(s), nil
}

// Interpreter reads the version banner printed by an interpreter command,
// e.g. "python3 --version". Unlike GoRuntime it spawns a subprocess: a Go
// binary has no in-process view of another language's runtime, so the
// project's interpreter is asked directly, bounded by Timeout.
type Interpreter struct {
	Command string
	Args    []string      // default: --version
	Timeout time.Duration // default: DefaultTimeout
	Runner  runner.Runner
}

// DefaultTimeout bounds the interpreter version query.
const DefaultTimeout = 2 * time.Second

func (i *Interpreter) Version() (version.Version, error) {
	args := i.Args
	if len(args) == 0 {
		args = []string{"--version"}
	}
	timeout := i.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	c, err := runner.Run(i.Runner, timeout, i.Command, args...)
	if err != nil {
		return version.Version{}, err
	}
	if !c.Success() {
		return version.Version{}, fmt.Errorf("%s exited with status %d", i.Command, c.ExitCode)
	}
	return version.Extract(c.Output())
}
