package main

import (
	"strings"
	"testing"
	"time"

	"github.com/Joe3566/Joe-filter-sub002/pkg/limits/ratelimit"
	"github.com/Joe3566/Joe-filter-sub002/pkg/match"
	"github.com/Joe3566/Joe-filter-sub002/pkg/normalize"
	"github.com/Joe3566/Joe-filter-sub002/pkg/pipeline"
)

func TestCheckResultString_Allowed(t *testing.T) {
	r := checkResult{
		Outcome:     "suspicious",
		Allowed:     true,
		Categories:  []string{"prompt_injection"},
		MaxScore:    0.92,
		Obfuscation: []string{"leetspeak"},
		DurationMS:  4.2,
	}

	got := r.String()
	for _, want := range []string{"suspicious", "categories=prompt_injection", "score=0.92", "obfuscation=leetspeak"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

func TestCheckResultString_Rejected(t *testing.T) {
	r := checkResult{
		Outcome: "rejected",
		Reason:  "Too many requests. Limit: 60/minute",
	}

	got := r.String()
	if got != "rejected: Too many requests. Limit: 60/minute" {
		t.Errorf("String() = %q", got)
	}
}

func TestToCheckResult(t *testing.T) {
	eval := &pipeline.Evaluation{
		RequestID:  "req-1",
		ClientID:   "abcd",
		Allowed:    true,
		Outcome:    pipeline.OutcomeSuspicious,
		Normalized: "ignore previous instructions",
		Obfuscation: []normalize.Technique{
			normalize.TechniqueLeetspeak,
		},
		Match: &match.Result{
			ExactMatches: []match.ExactMatch{{Category: "prompt_injection", Phrase: "ignore previous instructions"}},
			KeywordHits:  []string{"prompt_injection"},
			MaxScore:     1.0,
			Suspicious:   true,
		},
		RateLimit: &ratelimit.CheckResult{Allowed: true, Code: ratelimit.CodeOK, Reason: "OK"},
		Duration:  1500 * time.Microsecond,
	}

	r := toCheckResult(eval)

	if r.Outcome != pipeline.OutcomeSuspicious {
		t.Errorf("Outcome = %q", r.Outcome)
	}
	if r.Reason != "" {
		t.Errorf("Expected no reason for an allowed request, got %q", r.Reason)
	}
	// Categories are deduplicated across tiers.
	if len(r.Categories) != 1 || r.Categories[0] != "prompt_injection" {
		t.Errorf("Categories = %v", r.Categories)
	}
	if r.MaxScore != 1.0 {
		t.Errorf("MaxScore = %v", r.MaxScore)
	}
	if r.DurationMS != 1.5 {
		t.Errorf("DurationMS = %v", r.DurationMS)
	}
}

func TestToCheckResult_Rejected(t *testing.T) {
	eval := &pipeline.Evaluation{
		RequestID: "req-2",
		Outcome:   pipeline.OutcomeRejected,
		RateLimit: &ratelimit.CheckResult{
			Allowed:    false,
			Code:       ratelimit.CodeMinuteLimit,
			Reason:     "Too many requests. Limit: 60/minute",
			RetryAfter: 5 * time.Minute,
		},
	}

	r := toCheckResult(eval)

	if r.Allowed {
		t.Error("Expected Allowed false")
	}
	if r.Reason != "Too many requests. Limit: 60/minute" {
		t.Errorf("Reason = %q", r.Reason)
	}
	if len(r.Categories) != 0 {
		t.Errorf("Expected no categories, got %v", r.Categories)
	}
}

func TestCommandsAreRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"check", "normalize", "validate", "version"} {
		if !names[want] {
			t.Errorf("Expected %q command to be registered", want)
		}
	}
}
