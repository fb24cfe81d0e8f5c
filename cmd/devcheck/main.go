package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vertti/devcheck/pkg/suite"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, suite.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "devcheck: %v\n", err)
		}
		os.Exit(1)
	}
}
