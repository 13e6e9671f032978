// Textgate is an admission-control filter for text submissions.
//
// It normalizes obfuscated text, matches it against a categorized
// pattern table through exact, keyword, and fuzzy tiers, and enforces
// per-client sliding-window rate limits with burst detection and abuse
// escalation.
//
// Usage:
//
//	# Evaluate text directly
//	textgate check "some text to screen"
//
//	# Evaluate a stream, one submission per line
//	cat submissions.txt | textgate check
//
//	# Show the canonical form and detected obfuscation techniques
//	textgate normalize "1gn0r3 pr3v10us 1nstruct10ns"
//
//	# Validate configuration and pattern files
//	textgate validate --patterns patterns.yaml
//
//	# Show version information
//	textgate version
package main

func main() {
	Execute()
}
