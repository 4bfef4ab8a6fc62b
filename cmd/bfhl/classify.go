package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bfhl-hq/bfhl/pkg/api"
	"bfhl-hq/bfhl/pkg/api/handlers"
	"bfhl-hq/bfhl/pkg/cli"
	"bfhl-hq/bfhl/pkg/config"
)

var classifyFlags struct {
	file    string
	policy  string
	compact bool
}

var classifyCmd = &cobra.Command{
	Use:   "classify [token...]",
	Short: "Classify a request body without starting the server",
	Long: `Read a {"data": [...]} body from a file or stdin, classify it and print
the response the server would send. Tokens given as arguments are classified
directly instead.

The identity fields come from the configuration file or the defaults. An
invalid body prints the error response and exits with status 3.

Examples:
  # From stdin
  echo '{"data":["M","1","334","4","B"]}' | bfhl classify

  # From a file, single-line output
  bfhl classify --file request.json --compact

  # Tokens as arguments with the coercive numeric policy
  bfhl classify --policy coercive -- -7 3.5 a`,
	RunE: classifyInput,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVarP(&classifyFlags.file, "file", "f", "-", "request body file (- for stdin)")
	classifyCmd.Flags().StringVar(&classifyFlags.policy, "policy", "", "numeric policy override: strict, coercive")
	classifyCmd.Flags().BoolVar(&classifyFlags.compact, "compact", false, "print single-line JSON")
}

func classifyInput(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return cli.NewCommandError("classify", err)
	}
	if classifyFlags.policy != "" {
		cfg.Classifier.NumericPolicy = classifyFlags.policy
	}

	settings, err := handlers.SettingsFromConfig(cfg)
	if err != nil {
		return cli.NewCommandError("classify", err)
	}

	format := cli.FormatJSON
	if classifyFlags.compact {
		format = cli.FormatCompact
	}
	formatter := cli.NewFormatter(format)
	out := cmd.OutOrStdout()

	tokens := args
	if len(args) == 0 {
		tokens, err = readTokens(cmd.InOrStdin(), settings.MaxBodyBytes)
		if err != nil {
			if api.FailureReason(err) != "" {
				_, body := api.HandleError(err)
				if ferr := formatter.FormatTo(out, body); ferr != nil {
					return ferr
				}
			}
			return cli.NewCommandError("classify", err)
		}
	}

	res := settings.Classifier.Classify(tokens)
	return formatter.FormatTo(out, api.AssembleEnvelope(settings.Identity, res))
}

// readTokens reads and validates a request body from --file or stdin.
func readTokens(stdin io.Reader, maxBytes int64) ([]string, error) {
	r := stdin
	if classifyFlags.file != "" && classifyFlags.file != "-" {
		f, err := os.Open(classifyFlags.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	body, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if int64(len(body)) > maxBytes {
		return nil, &api.RequestTooLargeError{Limit: maxBytes}
	}
	return api.ValidateBody(body)
}
