package patterns

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a pattern table from a YAML file and builds an Index.
//
// The file format is a flat mapping of category names to phrase lists:
//
//	explosives:
//	  - how to make a bomb
//	  - pipe bomb instructions
//	violence:
//	  - how to kill someone
//
// Malformed files and invalid tables surface as errors; the caller gets
// either a fully usable Index or nothing.
func LoadFile(path string) (*Index, error) {
	table, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	idx, err := Build(table)
	if err != nil {
		return nil, fmt.Errorf("pattern file %q: %w", path, err)
	}
	return idx, nil
}

// ReadFile reads and parses a pattern table from a YAML file without
// building an Index. Useful for validation tooling and hot-reload, where
// the table is built separately.
func ReadFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %q: %w", path, err)
	}

	var table map[string][]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %q: %w", path, err)
	}

	return table, nil
}
