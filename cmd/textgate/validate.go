package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Joe3566/Joe-filter-sub002/pkg/cli"
	"github.com/Joe3566/Joe-filter-sub002/pkg/config"
	"github.com/Joe3566/Joe-filter-sub002/pkg/patterns"
)

var validateFlags struct {
	patternsFile string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and pattern files",
	Long: `Validate the configuration file and, when one is named, a pattern
file. All problems are reported at once rather than stopping at the
first.

Pattern files are validated by building the full index: empty
categories, empty phrases, phrases that normalize to nothing, and
duplicates across categories are all rejected.

Examples:
  # Validate the default configuration file
  textgate validate

  # Validate a specific configuration and pattern file
  textgate validate --config /etc/textgate/config.yaml --patterns patterns.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.patternsFile, "patterns", "", "pattern file to validate (defaults to the configured file source)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := false

	cfg, err := validateConfigFile()
	if err != nil {
		failed = true
		var verr config.ValidationError
		if errors.As(err, &verr) {
			fmt.Printf("config %s: %d problem(s)\n", cfgFile, len(verr.Errors))
			for _, fe := range verr.Errors {
				fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
			}
		} else {
			fmt.Printf("config %s: %v\n", cfgFile, err)
		}
	} else {
		fmt.Printf("config %s: OK\n", cfgFile)
	}

	patternsFile := validateFlags.patternsFile
	if patternsFile == "" && cfg != nil && cfg.Patterns.Source == "file" {
		patternsFile = cfg.Patterns.FilePath
	}
	if patternsFile != "" {
		index, err := patterns.LoadFile(patternsFile)
		if err != nil {
			failed = true
			fmt.Printf("patterns %s: %v\n", patternsFile, err)
		} else {
			fmt.Printf("patterns %s: OK (%d phrases, %d categories)\n",
				patternsFile, index.Len(), len(index.Categories()))
		}
	}

	if failed {
		// The findings are already printed; signal failure without
		// repeating them.
		os.Exit(1)
	}
	return nil
}

// validateConfigFile loads and validates the configuration file. A
// missing default file validates the built-in defaults instead.
func validateConfigFile() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
			return config.Default(), nil
		}
		return nil, cli.NewConfigError("", fmt.Sprintf("cannot read config file %q: %v", cfgFile, err))
	}
	return config.LoadConfig(cfgFile)
}
