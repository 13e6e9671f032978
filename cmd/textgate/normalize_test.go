package main

import "testing"

func TestNormalizeResultString(t *testing.T) {
	r := normalizeResult{
		Input:      "H3LL0",
		Normalized: "hello",
	}
	if got := r.String(); got != "hello" {
		t.Errorf("String() = %q, want %q", got, "hello")
	}

	r.Obfuscation = []string{"leetspeak", "mixed_case"}
	if got := r.String(); got != "hello\t[leetspeak,mixed_case]" {
		t.Errorf("String() = %q", got)
	}
}
