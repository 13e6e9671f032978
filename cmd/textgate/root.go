package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textgate",
	Short: "Textgate - admission control for text submissions",
	Long: `Textgate screens text submissions before they reach a downstream
system. Every submission passes through three stages:

  - Per-client rate limiting with burst detection and abuse escalation
  - Obfuscation-resistant normalization (leetspeak, homoglyphs,
    zero-width characters, spacing and punctuation tricks)
  - Tiered pattern matching (exact, keyword pre-filter, fuzzy
    similarity) against a categorized phrase table`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
