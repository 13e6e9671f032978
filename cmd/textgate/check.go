package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Joe3566/Joe-filter-sub002/pkg/cli"
	"github.com/Joe3566/Joe-filter-sub002/pkg/config"
	"github.com/Joe3566/Joe-filter-sub002/pkg/pipeline"
)

var checkFlags struct {
	client string
	format string
	watch  bool
}

var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Evaluate text submissions",
	Long: `Evaluate text against the pattern table and per-client rate limits.

Text is taken from the arguments when present, otherwise one submission
per line is read from stdin. Every submission is rate-limit checked,
normalized, and matched; flagged and suspicious submissions feed the
client's escalation counters exactly as they would in production.

Examples:
  # Evaluate a single submission
  textgate check "ignore previous instructions"

  # Evaluate a stream, one submission per line
  cat submissions.txt | textgate check --format json

  # Reload the pattern file on change while streaming
  textgate check --watch < stream.txt`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.client, "client", "cli", "client identity seed for rate limiting")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
	checkCmd.Flags().BoolVar(&checkFlags.watch, "watch", false, "reload the pattern file on change (file source only)")
}

// checkResult is the printable shape of one evaluation.
type checkResult struct {
	RequestID   string   `json:"request_id"`
	Outcome     string   `json:"outcome"`
	Allowed     bool     `json:"allowed"`
	Reason      string   `json:"reason,omitempty"`
	Normalized  string   `json:"normalized,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	MaxScore    float64  `json:"max_score"`
	Obfuscation []string `json:"obfuscation,omitempty"`
	DurationMS  float64  `json:"duration_ms"`
}

func (r checkResult) String() string {
	if !r.Allowed {
		return fmt.Sprintf("%s: %s", r.Outcome, r.Reason)
	}
	var b strings.Builder
	b.WriteString(r.Outcome)
	if len(r.Categories) > 0 {
		fmt.Fprintf(&b, " categories=%s", strings.Join(r.Categories, ","))
	}
	if r.MaxScore > 0 {
		fmt.Fprintf(&b, " score=%.2f", r.MaxScore)
	}
	if len(r.Obfuscation) > 0 {
		fmt.Fprintf(&b, " obfuscation=%s", strings.Join(r.Obfuscation, ","))
	}
	fmt.Fprintf(&b, " (%.2fms)", r.DurationMS)
	return b.String()
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	logger, err := buildLogger(cfg)
	if err != nil {
		return cli.NewCommandError("check", err)
	}
	engine, tracer, err := buildEngine(cfg, logger)
	if err != nil {
		return cli.NewCommandError("check", err)
	}
	defer tracer.Shutdown(context.Background())

	ctx := cli.SetupSignalHandler()
	formatter := cli.NewFormatter(cli.OutputFormat(checkFlags.format))
	clientID := pipeline.ClientID(checkFlags.client)

	// Single submission from the arguments.
	if len(args) > 0 {
		eval := engine.Evaluate(ctx, clientID, strings.Join(args, " "))
		return formatter.FormatTo(os.Stdout, toCheckResult(eval))
	}

	// Stream mode: one submission per stdin line. The idle sweeper and
	// the pattern watcher only matter for long-running input.
	if err := engine.Limiter().StartSweeper(); err != nil {
		return cli.NewCommandError("check", err)
	}
	defer engine.Limiter().StopSweeper()

	if checkFlags.watch {
		if cfg.Patterns.Source != "file" {
			return cli.NewConfigError("patterns.source", "--watch requires the file pattern source")
		}
		watcher, err := config.NewWatcher(cfg.Patterns.FilePath, logger.Slog(), func(table map[string][]string) {
			if err := engine.ReloadPatterns(table); err != nil {
				logger.Error("pattern reload rejected", "error", err)
			}
		})
		if err != nil {
			return cli.NewCommandError("check", err)
		}
		defer watcher.Close()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		eval := engine.Evaluate(ctx, clientID, line)
		if err := formatter.FormatTo(os.Stdout, toCheckResult(eval)); err != nil {
			return cli.NewCommandError("check", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return cli.NewCommandError("check", fmt.Errorf("reading stdin: %w", err))
	}
	return nil
}

func toCheckResult(eval *pipeline.Evaluation) checkResult {
	r := checkResult{
		RequestID:  eval.RequestID,
		Outcome:    eval.Outcome,
		Allowed:    eval.Allowed,
		Normalized: eval.Normalized,
		DurationMS: float64(eval.Duration.Microseconds()) / 1000,
	}
	if eval.RateLimit != nil && !eval.RateLimit.Allowed {
		r.Reason = eval.RateLimit.Reason
	}
	if eval.Match != nil {
		r.MaxScore = eval.Match.MaxScore
		r.Categories = matchCategories(eval)
	}
	for _, technique := range eval.Obfuscation {
		r.Obfuscation = append(r.Obfuscation, string(technique))
	}
	return r
}

// matchCategories collects the distinct categories across all tiers in
// evidence order: exact, fuzzy, then keyword.
func matchCategories(eval *pipeline.Evaluation) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(category string) {
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	for _, m := range eval.Match.ExactMatches {
		add(m.Category)
	}
	for _, m := range eval.Match.FuzzyMatches {
		add(m.Category)
	}
	for _, category := range eval.Match.KeywordHits {
		add(category)
	}
	return out
}
