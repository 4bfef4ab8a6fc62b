package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bfhl-hq/bfhl/pkg/cli"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bfhl",
	Short: "bfhl - token classification service",
	Long: `bfhl serves an HTTP endpoint that classifies a list of strings.

Given {"data": [...]} it returns the tokens made only of ASCII digits, the
tokens that are exactly one ASCII letter, and the highest letter compared
case-insensitively, together with a fixed identity.

Configuration is read from a YAML or TOML file (--config) with BFHL_*
environment overrides. Without a file the built-in defaults apply.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the status for its error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
