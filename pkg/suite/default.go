package suite

import (
	"fmt"
	"os"

	"github.com/vertti/devcheck/pkg/config"
	"github.com/vertti/devcheck/pkg/daemoncheck"
	"github.com/vertti/devcheck/pkg/filecheck"
	"github.com/vertti/devcheck/pkg/runner"
	"github.com/vertti/devcheck/pkg/runtimecheck"
	"github.com/vertti/devcheck/pkg/toolcheck"
)

// Env is the operating environment the default checks probe.
type Env struct {
	Runner  runner.Runner
	FS      filecheck.FileSystem
	HomeDir func() (string, error)
}

// RealEnv probes the actual system.
func RealEnv() Env {
	return Env{
		Runner:  &runner.RealRunner{},
		FS:      &filecheck.RealFileSystem{},
		HomeDir: os.UserHomeDir,
	}
}

// Default builds the standard suite from cfg: runtime version, dependency
// manager, container daemon and environment file, in that order.
func Default(cfg *config.Config, env Env) (*Suite, error) {
	minVersion, err := cfg.Runtime.MinVersion()
	if err != nil {
		return nil, fmt.Errorf("runtime.min: %w", err)
	}

	var source runtimecheck.VersionSource = runtimecheck.GoRuntime{}
	if cfg.Runtime.Source == config.SourceInterpreter {
		source = &runtimecheck.Interpreter{
			Command: cfg.Runtime.Command,
			Timeout: cfg.Runtime.Timeout.Std(),
			Runner:  env.Runner,
		}
	}

	entries := []Entry{
		{
			Name:   cfg.Runtime.Label + " Version",
			Remedy: cfg.Runtime.Remedy,
			Check: &runtimecheck.Check{
				Label:  cfg.Runtime.Label,
				Min:    minVersion,
				Hint:   cfg.Runtime.Hint,
				Source: source,
			},
		},
		{
			Name:   cfg.Tool.Label,
			Remedy: cfg.Tool.Remedy,
			Check: &toolcheck.Check{
				Command:  cfg.Tool.Command,
				Label:    cfg.Tool.Label,
				UserPath: cfg.Tool.UserPath,
				Timeout:  cfg.Tool.Timeout.Std(),
				Hint:     cfg.Tool.Hint,
				HomeDir:  env.HomeDir,
				FS:       env.FS,
				Runner:   env.Runner,
			},
		},
		{
			Name:   cfg.Daemon.Label,
			Remedy: cfg.Daemon.Remedy,
			Check: &daemoncheck.Check{
				Label:       cfg.Daemon.Label,
				Client:      cfg.Daemon.Client,
				Args:        cfg.Daemon.Args,
				Timeout:     cfg.Daemon.Timeout.Std(),
				InstallHint: cfg.Daemon.InstallHint,
				StartHint:   cfg.Daemon.StartHint,
				Runner:      env.Runner,
			},
		},
		{
			Name:   "Environment File",
			Remedy: cfg.EnvFile.Remedy,
			Check: &filecheck.Check{
				Path:     cfg.EnvFile.Path,
				Template: cfg.EnvFile.Template,
				Hint:     cfg.EnvFile.Hint,
				FS:       env.FS,
			},
		},
	}

	return &Suite{
		Project:   cfg.Project,
		Entries:   entries,
		NextSteps: cfg.NextSteps,
	}, nil
}

