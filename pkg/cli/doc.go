/*
Package cli provides command-line utilities shared by the textgate
subcommands: output formatters, typed command errors, and signal-aware
shutdown contexts.

Output Formatting:

Command results render as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Signal Handling:

Long-running commands cancel on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Pass ctx to operations that should stop on shutdown
*/
package cli
