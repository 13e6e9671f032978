package main

import (
	"fmt"
	"os"

	"github.com/Joe3566/Joe-filter-sub002/pkg/cli"
	"github.com/Joe3566/Joe-filter-sub002/pkg/config"
	"github.com/Joe3566/Joe-filter-sub002/pkg/patterns"
	"github.com/Joe3566/Joe-filter-sub002/pkg/pipeline"
	"github.com/Joe3566/Joe-filter-sub002/pkg/telemetry/logging"
	"github.com/Joe3566/Joe-filter-sub002/pkg/telemetry/metrics"
	"github.com/Joe3566/Joe-filter-sub002/pkg/telemetry/tracing"
)

// loadConfiguration resolves the effective configuration. A missing
// file is only an error when the user named one explicitly; the default
// "config.yaml" falls back to built-in defaults.
func loadConfiguration() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
			return config.Default(), nil
		}
		return nil, cli.NewConfigError("", fmt.Sprintf("cannot read config file %q: %v", cfgFile, err))
	}

	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	return cfg, nil
}

// buildLogger creates the CLI logger. Diagnostics go to stderr so
// command output on stdout stays machine-readable; --verbose forces
// debug level.
func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
		Writer:    os.Stderr,
	})
}

// buildIndex loads the pattern table named by the configuration.
func buildIndex(cfg *config.Config) (*patterns.Index, error) {
	switch cfg.Patterns.Source {
	case "file":
		index, err := patterns.LoadFile(cfg.Patterns.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load pattern file: %w", err)
		}
		return index, nil
	default:
		return patterns.Default(), nil
	}
}

// buildEngine assembles the full pipeline from configuration.
func buildEngine(cfg *config.Config, logger *logging.Logger) (*pipeline.Engine, *tracing.Tracer, error) {
	index, err := buildIndex(cfg)
	if err != nil {
		return nil, nil, err
	}

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	engine, err := pipeline.New(index, cfg, logger, collector, tracer)
	if err != nil {
		return nil, nil, err
	}
	return engine, tracer, nil
}
