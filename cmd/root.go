// Package cmd wires the kitforge command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/kitforge/internal/config"
	"github.com/llehouerou/kitforge/internal/errmsg"
)

// Execute loads the configuration and runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	if err := RootCommand(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCommand creates the root command with config values as flag
// defaults, so command-line flags override the config file.
func RootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kitforge",
		Short:        "Organize loose sample libraries into TAL Drum kits",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(scanCommand(cfg), generateCommand(cfg))

	return rootCmd
}

// valueOr returns the configured value, or a fallback when the config
// leaves it empty.
func valueOr(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}
