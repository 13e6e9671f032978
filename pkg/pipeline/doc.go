// Package pipeline coordinates the textgate admission decision for a
// single submission: rate-limit check, obfuscation-resistant
// normalization, tiered pattern matching, and the feedback of match
// evidence into the limiter's escalation counters.
//
// The Engine is the only entry point callers need. It owns no policy of
// its own; every decision is delegated to the ratelimit, normalize, and
// match packages, and the Engine's job is ordering, telemetry, and
// producing one immutable Evaluation per request.
package pipeline
