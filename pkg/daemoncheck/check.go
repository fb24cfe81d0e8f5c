// Package daemoncheck verifies that a container engine daemon is reachable
// through its CLI client.
package daemoncheck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vertti/devcheck/pkg/check"
	"github.com/vertti/devcheck/pkg/runner"
)

// DefaultTimeout bounds the daemon handshake. It is longer than a version
// query because the client has to reach the daemon.
const DefaultTimeout = 5 * time.Second

// DefaultArgs asks the client for daemon info as JSON.
var DefaultArgs = []string{"info", "--format", "{{json .}}"}

// Check verifies that the client can talk to its daemon.
type Check struct {
	Label       string        // display name, e.g. "Docker"
	Client      string        // client command, e.g. "docker"
	Args        []string      // diagnostic subcommand (default: DefaultArgs)
	Timeout     time.Duration // default: 5s
	InstallHint string        // hint when the client is missing or hangs
	StartHint   string        // hint when the client reports the daemon down
	Runner      runner.Runner // injected for testing
}

// Run executes the daemon check.
//
// The client's exit status is significant here: a completed invocation with
// a nonzero status means the client is installed but the daemon is down.
// With JSON output the client exits 0 even when the daemon is unreachable,
// so a reported server error counts as down too.
func (c *Check) Run() check.Result {
	result := check.Result{Name: c.Label + " daemon"}

	args := c.Args
	if len(args) == 0 {
		args = DefaultArgs
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	completion, err := runner.Run(c.Runner, timeout, c.Client, args...)
	if err != nil {
		result.WithHint(c.InstallHint)
		if errors.Is(err, runner.ErrTimeout) {
			result.AddDetailf("%s %s timed out after %s", c.Client, strings.Join(args, " "), timeout)
		}
		return result.Fail(fmt.Sprintf("%s is not installed", c.Label), err)
	}

	if !completion.Success() {
		result.WithHint(c.StartHint)
		if msg := strings.TrimSpace(completion.Stderr); msg != "" {
			result.AddDetailf("stderr: %s", firstLine(msg))
		}
		return result.Fail(
			fmt.Sprintf("%s daemon is not running", c.Label),
			fmt.Errorf("%s exited with status %d", c.Client, completion.ExitCode),
		)
	}

	if reason, down := unreachable(completion.Stdout); down {
		result.WithHint(c.StartHint)
		result.AddDetailf("server error: %s", reason)
		if msg := strings.TrimSpace(completion.Stderr); msg != "" {
			result.AddDetailf("stderr: %s", firstLine(msg))
		}
		return result.Fail(
			fmt.Sprintf("%s daemon is not running", c.Label),
			fmt.Errorf("%s reported a server error: %s", c.Client, reason),
		)
	}

	if v := serverVersion(completion.Stdout); v != "" {
		result.AddDetailf("server version: %s", v)
	}
	return result.Pass()
}

// serverVersion extracts the daemon version from JSON info output.
// Plain-text output yields "".
func serverVersion(out string) string {
	out = strings.TrimSpace(out)
	if !gjson.Valid(out) {
		return ""
	}
	return gjson.Get(out, "ServerVersion").String()
}

// unreachable reports whether JSON info output describes a daemon the
// client could not reach: ServerErrors is non-empty or ServerVersion is
// present but blank. Plain-text output is never judged here.
func unreachable(out string) (string, bool) {
	out = strings.TrimSpace(out)
	if !gjson.Valid(out) {
		return "", false
	}
	if errs := gjson.Get(out, "ServerErrors").Array(); len(errs) > 0 {
		return firstLine(strings.TrimSpace(errs[0].String())), true
	}
	if v := gjson.Get(out, "ServerVersion"); v.Exists() && v.String() == "" {
		return "no server version reported", true
	}
	return "", false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
