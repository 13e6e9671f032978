package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	output, err := formatter.Format("clean")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if string(output) != "clean\n" {
		t.Errorf("Format() = %q, want %q", string(output), "clean\n")
	}

	buf := &bytes.Buffer{}
	if err := formatter.FormatTo(buf, "clean"); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != "clean\n" {
		t.Errorf("FormatTo() = %q, want %q", buf.String(), "clean\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{Indent: true}
	data := map[string]any{"outcome": "suspicious", "max_score": 0.92}

	output, err := formatter.Format(data)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(output, &decoded); err != nil {
		t.Fatalf("Format() produced invalid JSON: %v", err)
	}
	if decoded["outcome"] != "suspicious" {
		t.Errorf("outcome = %v, want suspicious", decoded["outcome"])
	}
	if !strings.Contains(string(output), "\n  ") {
		t.Error("Expected indented output")
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("Expected JSONFormatter for FormatJSON")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("Expected TextFormatter for FormatText")
	}
	if _, ok := NewFormatter("csv").(*TextFormatter); !ok {
		t.Error("Expected text fallback for unknown format")
	}
}
