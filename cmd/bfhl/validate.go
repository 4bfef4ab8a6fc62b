package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bfhl-hq/bfhl/pkg/cli"
	"bfhl-hq/bfhl/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Load the configuration file with environment overrides applied and
report every invalid field.

Examples:
  # Validate a YAML file
  bfhl validate --config config.yaml

  # Validate the built-in defaults plus BFHL_* overrides
  bfhl validate`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		if fieldErrs := cli.ConfigErrors(err); len(fieldErrs) > 0 {
			fmt.Fprintf(out, "✗ Configuration invalid (%d errors)\n", len(fieldErrs))
			for _, fe := range fieldErrs {
				fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
			}
		}
		return cli.NewCommandError("validate", err)
	}

	source := cfgFile
	if source == "" {
		source = "defaults"
	}

	fmt.Fprintf(out, "✓ Configuration valid (%s)\n", source)
	if verbose {
		fmt.Fprintf(out, "  listen:         %s\n", cfg.Server.ListenAddress)
		fmt.Fprintf(out, "  paths:          %s\n", strings.Join(cfg.API.Paths, ", "))
		fmt.Fprintf(out, "  numeric policy: %s\n", cfg.Classifier.NumericPolicy)
		fmt.Fprintf(out, "  user id:        %s\n", cfg.Identity.UserID)
		fmt.Fprintf(out, "  tls:            %t\n", cfg.Server.TLS.Enabled)
	}
	return nil
}
