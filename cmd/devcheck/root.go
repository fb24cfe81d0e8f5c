package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/devcheck/pkg/config"
	"github.com/vertti/devcheck/pkg/logging"
	"github.com/vertti/devcheck/pkg/output"
	"github.com/vertti/devcheck/pkg/suite"
)

var (
	configPath string
	jsonOutput bool
	noColor    bool
	verbose    bool
	logLevel   string
)

// newEnv is replaced in tests.
var newEnv = suite.RealEnv

var rootCmd = &cobra.Command{
	Use:   "devcheck",
	Short: "Check that the local development environment is ready",
	Long: `By default devcheck verifies the local development environment:

  - the Python interpreter is 3.11 or newer
  - Poetry is installed (~/.local/bin/poetry or on PATH)
  - the Docker daemon is running
  - the .env file exists

Each check prints a status line; failed checks print a hint.
Exit status is 0 when every check passes and 1 otherwise.

Settings are read from .devcheck.yaml, searched upward from the
current directory, or from the file given with --config.`,
	Example: `  # Run all checks
  devcheck

  # Machine-readable output
  devcheck --json

  # Show what each probe did
  devcheck --verbose`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChecks,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: search for "+config.FileName+")")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log probe details to stderr")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
}

func runChecks(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), logLevel, verbose)
	if err != nil {
		return err
	}
	if noColor {
		output.DisableColor()
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, path, err := config.Resolve(wd, configPath)
	if err != nil {
		return err
	}
	if path == "" {
		logger.Debug("no config file found, using defaults")
	} else {
		logger.WithField("path", path).Debug("loaded config")
	}

	s, err := suite.Default(cfg, newEnv())
	if err != nil {
		return err
	}
	s.Log = logger
	if !jsonOutput {
		s.Out = output.New(cmd.OutOrStdout())
	}

	report := s.Run()

	if jsonOutput {
		if err := output.WriteJSON(cmd.OutOrStdout(), report.Results, report.Passed()); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
	}
	return report.Err()
}
