package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joe3566/Joe-filter-sub002/pkg/cli"
	"github.com/Joe3566/Joe-filter-sub002/pkg/normalize"
)

var normalizeFlags struct {
	format string
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text]",
	Short: "Print the canonical form of text",
	Long: `Print the canonical form of text together with the obfuscation
techniques detected in the raw input.

Text is taken from the arguments when present, otherwise one input per
line is read from stdin. No pattern matching or rate limiting runs;
this command is a lens on the normalization stage alone.

Examples:
  textgate normalize "1gn0r3 pr3v10us 1nstruct10ns"
  cat inputs.txt | textgate normalize --format json`,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVar(&normalizeFlags.format, "format", "text", "output format: text, json")
}

type normalizeResult struct {
	Input       string   `json:"input"`
	Normalized  string   `json:"normalized"`
	Obfuscation []string `json:"obfuscation,omitempty"`
}

func (r normalizeResult) String() string {
	if len(r.Obfuscation) == 0 {
		return r.Normalized
	}
	return fmt.Sprintf("%s\t[%s]", r.Normalized, strings.Join(r.Obfuscation, ","))
}

func runNormalize(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cli.OutputFormat(normalizeFlags.format))

	emit := func(input string) error {
		r := normalizeResult{
			Input:      input,
			Normalized: normalize.Normalize(input),
		}
		for _, technique := range normalize.DetectObfuscation(input) {
			r.Obfuscation = append(r.Obfuscation, string(technique))
		}
		return formatter.FormatTo(os.Stdout, r)
	}

	if len(args) > 0 {
		return emit(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := emit(line); err != nil {
			return cli.NewCommandError("normalize", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cli.NewCommandError("normalize", fmt.Errorf("reading stdin: %w", err))
	}
	return nil
}
