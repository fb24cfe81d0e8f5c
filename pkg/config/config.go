// Package config loads the devcheck configuration.
//
// Every field has a default, so running without a configuration file
// checks for Python 3.11+, Poetry, a running Docker daemon and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vertti/devcheck/pkg/version"
)

// FileName is the configuration file searched for by Discover.
const FileName = ".devcheck.yaml"

// Runtime version sources.
const (
	SourceInterpreter = "interpreter"
	SourceGo          = "go"
)

// ErrNotFound is returned by Discover when no configuration file exists.
var ErrNotFound = errors.New(FileName + " not found")

// Config describes the environment to check.
type Config struct {
	Project   string        `yaml:"project"`
	Runtime   RuntimeConfig `yaml:"runtime"`
	Tool      ToolConfig    `yaml:"tool"`
	Daemon    DaemonConfig  `yaml:"daemon"`
	EnvFile   FileConfig    `yaml:"env_file"`
	NextSteps []string      `yaml:"next_steps"`
}

// RuntimeConfig configures the runtime version check.
type RuntimeConfig struct {
	Label   string   `yaml:"label"`
	Source  string   `yaml:"source"`  // "interpreter" or "go"
	Command string   `yaml:"command"` // interpreter command for the interpreter source
	Min     string   `yaml:"min"`     // minimum major.minor, e.g. "3.11"
	Timeout Duration `yaml:"timeout"`
	Hint    string   `yaml:"hint"`
	Remedy  string   `yaml:"remedy"`
}

// MinVersion parses Min.
func (r RuntimeConfig) MinVersion() (version.Version, error) {
	return version.Parse(r.Min)
}

// ToolConfig configures the dependency manager check.
type ToolConfig struct {
	Label    string   `yaml:"label"`
	Command  string   `yaml:"command"`
	UserPath string   `yaml:"user_path"` // relative to the home directory
	Timeout  Duration `yaml:"timeout"`
	Hint     string   `yaml:"hint"`
	Remedy   string   `yaml:"remedy"`
}

// DaemonConfig configures the container engine daemon check.
type DaemonConfig struct {
	Label       string   `yaml:"label"`
	Client      string   `yaml:"client"`
	Args        []string `yaml:"args"`
	Timeout     Duration `yaml:"timeout"`
	InstallHint string   `yaml:"install_hint"`
	StartHint   string   `yaml:"start_hint"`
	Remedy      string   `yaml:"remedy"`
}

// FileConfig configures the configuration file presence check.
type FileConfig struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template"`
	Hint     string `yaml:"hint"`
	Remedy   string `yaml:"remedy"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Runtime: RuntimeConfig{
			Label:   "Python",
			Source:  SourceInterpreter,
			Command: "python3",
			Min:     "3.11",
			Timeout: Duration(2 * time.Second),
			Remedy:  "Install Python 3.11 or higher",
		},
		Tool: ToolConfig{
			Label:    "Poetry",
			Command:  "poetry",
			UserPath: filepath.Join(".local", "bin", "poetry"),
			Timeout:  Duration(2 * time.Second),
			Hint:     "Install Poetry: curl -sSL https://install.python-poetry.org | python3 -",
			Remedy:   "Install Poetry: curl -sSL https://install.python-poetry.org | python3 -",
		},
		Daemon: DaemonConfig{
			Label:       "Docker",
			Client:      "docker",
			Args:        []string{"info", "--format", "{{json .}}"},
			Timeout:     Duration(5 * time.Second),
			InstallHint: "Install Docker Desktop or Docker Engine",
			StartHint:   "Please start Docker Desktop or Docker Engine",
			Remedy:      "Install and start Docker Desktop",
		},
		EnvFile: FileConfig{
			Path:     ".env",
			Template: ".env.example",
			Remedy:   "Create .env file from template",
		},
	}
}

// Load reads the configuration file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading user-provided config file
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Runtime.MinVersion(); err != nil {
		return fmt.Errorf("runtime.min: %w", err)
	}
	switch c.Runtime.Source {
	case SourceInterpreter:
		if c.Runtime.Command == "" {
			return errors.New("runtime.command is required for the interpreter source")
		}
	case SourceGo:
	default:
		return fmt.Errorf("runtime.source: unknown source %q (want %q or %q)", c.Runtime.Source, SourceInterpreter, SourceGo)
	}
	if c.Tool.Command == "" {
		return errors.New("tool.command is required")
	}
	if c.Daemon.Client == "" {
		return errors.New("daemon.client is required")
	}
	if c.EnvFile.Path == "" {
		return errors.New("env_file.path is required")
	}

	timeouts := []struct {
		name string
		d    Duration
	}{
		{"runtime.timeout", c.Runtime.Timeout},
		{"tool.timeout", c.Tool.Timeout},
		{"daemon.timeout", c.Daemon.Timeout},
	}
	for _, t := range timeouts {
		if t.d <= 0 {
			return fmt.Errorf("%s must be positive", t.name)
		}
	}
	return nil
}

// Duration is a time.Duration read from YAML as "2s" or as whole seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if secs, err := strconv.Atoi(s); err == nil {
		*d = Duration(time.Duration(secs) * time.Second)
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
