/*
Package cli provides helpers shared by the bfhl commands.

Output Formatting:

Command results are written as indented JSON, compact JSON or text:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, envelope); err != nil {
		return err
	}

Errors and Exit Codes:

ConfigError and CommandError wrap failures with the offending field or
command. ExitCode maps an error to the process exit status:

	0  success
	1  any other failure
	2  invalid configuration
	3  invalid classification input

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()
*/
package cli
