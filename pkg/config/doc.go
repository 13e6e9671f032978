// Package config provides configuration management for textgate.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention TEXTGATE_SECTION_FIELD.
// For example:
//
//   - TEXTGATE_PATTERNS_FILE_PATH overrides patterns.file_path
//   - TEXTGATE_MATCHER_FUZZY_THRESHOLD overrides matcher.fuzzy_threshold
//   - TEXTGATE_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Pattern Hot-Reload
//
// When patterns.watch is enabled, a Watcher can be attached to the pattern
// file so edits take effect without a restart:
//
//	w, err := config.NewWatcher(cfg.Patterns.FilePath, logger, func(table map[string][]string) {
//	    // swap the matcher's index
//	})
//	defer w.Close()
//
// A reload that fails validation keeps the previous pattern table in place.
package config
