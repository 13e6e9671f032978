package pipeline

import (
	"time"

	"github.com/Joe3566/Joe-filter-sub002/pkg/limits/ratelimit"
	"github.com/Joe3566/Joe-filter-sub002/pkg/match"
	"github.com/Joe3566/Joe-filter-sub002/pkg/normalize"
)

// Evaluation outcomes. These are bounded and double as metric label
// values.
const (
	// OutcomeClean means the request passed the rate limiter and no
	// tier produced match evidence.
	OutcomeClean = "clean"

	// OutcomeSuspicious means the request was admitted but produced
	// match evidence or showed obfuscation techniques.
	OutcomeSuspicious = "suspicious"

	// OutcomeRejected means the rate limiter refused the request before
	// any content analysis ran.
	OutcomeRejected = "rejected"
)

// Evaluation is the complete result of one pipeline pass. It is created
// fresh per request and never mutated after return.
type Evaluation struct {
	// RequestID is the unique identifier assigned to this evaluation.
	RequestID string

	// ClientID is the caller-supplied client identity the rate limiter
	// keyed on.
	ClientID string

	// Allowed indicates whether the rate limiter admitted the request.
	// When false, Normalized, Obfuscation, and Match are unset: content
	// analysis never runs for rejected requests.
	Allowed bool

	// RateLimit is the limiter's typed decision, including the
	// rejection code and retry hint when Allowed is false.
	RateLimit *ratelimit.CheckResult

	// Normalized is the canonical form of the submitted text.
	Normalized string

	// Obfuscation lists the evasion techniques detected in the raw
	// text, in detector order.
	Obfuscation []normalize.Technique

	// Match is the tiered match evidence for the normalized text.
	Match *match.Result

	// Outcome classifies the evaluation: OutcomeClean,
	// OutcomeSuspicious, or OutcomeRejected.
	Outcome string

	// Duration is the end-to-end evaluation time.
	Duration time.Duration
}

// Flagged reports whether the evaluation produced a definite pattern
// hit (exact or fuzzy). Keyword hits alone do not flag.
func (e *Evaluation) Flagged() bool {
	return e.Match != nil &&
		(len(e.Match.ExactMatches) > 0 || len(e.Match.FuzzyMatches) > 0)
}
