package tracing

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for textgate spans.
const (
	// AttrRequestID is the per-evaluation request identifier.
	AttrRequestID = "textgate.request_id"

	// AttrClientID is the opaque client identifier.
	AttrClientID = "textgate.client_id"

	// AttrOutcome is the evaluation outcome (clean, suspicious, rejected).
	AttrOutcome = "textgate.outcome"

	// AttrRejectionCode is the rate-limit rejection code, if any.
	AttrRejectionCode = "textgate.rejection_code"

	// AttrCategories is the number of matched categories.
	AttrCategories = "textgate.categories"

	// AttrMaxScore is the strongest match score of the evaluation.
	AttrMaxScore = "textgate.max_score"

	// AttrTextLength is the rune length of the input text.
	AttrTextLength = "textgate.text_length"

	// AttrObfuscation is the number of detected obfuscation techniques.
	AttrObfuscation = "textgate.obfuscation"
)

// RequestID returns a request ID span attribute.
func RequestID(id string) attribute.KeyValue {
	return attribute.String(AttrRequestID, id)
}

// ClientID returns a client ID span attribute.
func ClientID(id string) attribute.KeyValue {
	return attribute.String(AttrClientID, id)
}

// Outcome returns an evaluation outcome span attribute.
func Outcome(outcome string) attribute.KeyValue {
	return attribute.String(AttrOutcome, outcome)
}

// RejectionCode returns a rate-limit rejection code span attribute.
func RejectionCode(code string) attribute.KeyValue {
	return attribute.String(AttrRejectionCode, code)
}

// Categories returns a matched-category count span attribute.
func Categories(n int) attribute.KeyValue {
	return attribute.Int(AttrCategories, n)
}

// MaxScore returns a match score span attribute.
func MaxScore(score float64) attribute.KeyValue {
	return attribute.Float64(AttrMaxScore, score)
}

// TextLength returns an input length span attribute.
func TextLength(n int) attribute.KeyValue {
	return attribute.Int(AttrTextLength, n)
}

// Obfuscation returns an obfuscation technique count span attribute.
func Obfuscation(n int) attribute.KeyValue {
	return attribute.Int(AttrObfuscation, n)
}
