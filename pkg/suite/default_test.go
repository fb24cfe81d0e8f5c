package suite

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/devcheck/pkg/config"
	"github.com/vertti/devcheck/pkg/output"
	"github.com/vertti/devcheck/pkg/testutil"
)

func home() (string, error) { return "/home/dev", nil }

// machine simulates the commands available on a developer machine.
func machine(python string, poetry bool, dockerExit int) *testutil.MockRunner {
	return &testutil.MockRunner{
		LookPathFunc: func(file string) (string, error) {
			if file == "poetry" && !poetry {
				return "", errors.New("executable file not found in $PATH")
			}
			return "/usr/bin/" + file, nil
		},
		RunFunc: func(ctx context.Context, name string, args ...string) (string, string, error) {
			switch name {
			case "python3":
				return python + "\n", "", nil
			case "poetry":
				if !poetry {
					return "", "", &exec.Error{Name: name, Err: exec.ErrNotFound}
				}
				return "Poetry (version 1.8.3)\n", "", nil
			case "docker":
				if dockerExit != 0 {
					return "", "Cannot connect to the Docker daemon", &testutil.ExitError{Code: dockerExit}
				}
				return `{"ServerVersion":"27.1.1"}`, "", nil
			}
			return "", "", &exec.Error{Name: name, Err: exec.ErrNotFound}
		},
	}
}

func TestDefault_Order(t *testing.T) {
	s, err := Default(config.Default(), Env{})
	require.NoError(t, err)

	var names []string
	for _, e := range s.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Python Version", "Poetry", "Docker", "Environment File"}, names)
}

func TestDefault_InvalidMin(t *testing.T) {
	cfg := config.Default()
	cfg.Runtime.Min = "latest"

	_, err := Default(cfg, Env{})
	assert.Error(t, err)
}

func TestDefault_AllPass(t *testing.T) {
	cfg := config.Default()
	cfg.NextSteps = []string{"./scripts/dev.sh start    - Start services"}
	env := Env{
		Runner:  machine("Python 3.12.4", true, 0),
		FS:      &testutil.MockFileSystem{StatFunc: testutil.Files(".env")},
		HomeDir: home,
	}
	s, err := Default(cfg, env)
	require.NoError(t, err)
	var buf bytes.Buffer
	s.Out = output.New(&buf)

	report := s.Run()

	out := buf.String()
	assert.Equal(t, 0, report.ExitCode())
	assert.Equal(t, 4, strings.Count(out, "[OK]"), out)
	assert.Equal(t, 0, strings.Count(out, "[FAIL]"), out)
	assert.Contains(t, out, "Python 3.12")
	assert.Contains(t, out, "server version: 27.1.1")
	assert.Contains(t, out, "All checks passed! Your environment is ready.")
	assert.Contains(t, out, "./scripts/dev.sh start")
}

func TestDefault_AllFail(t *testing.T) {
	env := Env{
		Runner:  machine("Python 3.9.18", false, 1),
		FS:      &testutil.MockFileSystem{StatFunc: testutil.Files()},
		HomeDir: home,
	}
	s, err := Default(config.Default(), env)
	require.NoError(t, err)
	var buf bytes.Buffer
	s.Out = output.New(&buf)

	report := s.Run()

	out := buf.String()
	assert.Equal(t, 1, report.ExitCode())
	assert.Equal(t, 4, strings.Count(out, "[FAIL]"), out)

	hints := map[string]bool{}
	for _, r := range report.Results {
		require.False(t, r.OK(), r.Name)
		require.NotEmpty(t, r.Hint, r.Name)
		hints[r.Hint] = true
	}
	assert.Len(t, hints, 4, "each failure has its own remediation hint")

	assert.Contains(t, out, "Python 3.9 is too old (need 3.11+)")
	assert.Contains(t, out, "Poetry is not installed or not running")
	assert.Contains(t, out, "Docker daemon is not running")
	assert.Contains(t, out, "hint: Please start Docker Desktop or Docker Engine")
	assert.Contains(t, out, "hint: Run: cp .env.example .env")
	assert.Contains(t, out, "Some checks failed. Please fix the issues above.")
	assert.Contains(t, out, "Install and start Docker Desktop")
	assert.Contains(t, out, "Create .env file from template")
}

func TestDefault_GoRuntimeSource(t *testing.T) {
	cfg := config.Default()
	cfg.Runtime.Label = "Go"
	cfg.Runtime.Source = config.SourceGo
	cfg.Runtime.Min = "1.0"
	r := machine("unused", true, 0)
	env := Env{Runner: r, FS: &testutil.MockFileSystem{StatFunc: testutil.Files(".env")}, HomeDir: home}

	s, err := Default(cfg, env)
	require.NoError(t, err)
	report := s.Run()

	assert.True(t, report.Results[0].OK(), report.Results[0].Details)
	for _, call := range r.Calls {
		assert.False(t, strings.HasPrefix(call, "python3"), "go source must not spawn the interpreter")
	}
}
