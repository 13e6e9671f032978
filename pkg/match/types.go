package match

// Options configures the tiered matcher. Zero values are replaced by
// defaults in NewMatcher.
type Options struct {
	// FuzzyThreshold is the minimum edit-similarity ratio for a fuzzy
	// match to be reported. Default: 0.8.
	FuzzyThreshold float64

	// TopK caps the number of fuzzy matches kept per category. Default: 3.
	TopK int

	// MinFuzzyLength is the minimum query length (in runes) before the
	// fuzzy tier is entered. Short queries are served by the exact and
	// keyword tiers alone. Default: 10.
	MinFuzzyLength int

	// EnableFuzzy toggles the fuzzy tier. Disabling it under load only
	// reduces recall, never correctness. Default: true.
	EnableFuzzy bool

	// MaxCompareLength truncates the query (in runes) before fuzzy
	// comparison so pathological inputs cannot blow up edit-distance
	// cost. Default: 1000.
	MaxCompareLength int

	// CacheSize bounds the similarity cache entry count. Default: 1024.
	CacheSize int
}

// DefaultOptions returns the matcher defaults.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold:   0.8,
		TopK:             3,
		MinFuzzyLength:   10,
		EnableFuzzy:      true,
		MaxCompareLength: 1000,
		CacheSize:        1024,
	}
}

// withDefaults fills unset fields. EnableFuzzy cannot be defaulted from
// its zero value, so callers constructing Options by hand should start
// from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FuzzyThreshold <= 0 {
		o.FuzzyThreshold = d.FuzzyThreshold
	}
	if o.TopK <= 0 {
		o.TopK = d.TopK
	}
	if o.MinFuzzyLength <= 0 {
		o.MinFuzzyLength = d.MinFuzzyLength
	}
	if o.MaxCompareLength <= 0 {
		o.MaxCompareLength = d.MaxCompareLength
	}
	if o.CacheSize <= 0 {
		o.CacheSize = d.CacheSize
	}
	return o
}

// ExactMatch records a whole-text hit against a stored phrase.
type ExactMatch struct {
	Category string
	Phrase   string
}

// FuzzyMatch records an approximate hit against a stored phrase.
type FuzzyMatch struct {
	Category string
	Phrase   string
	Score    float64
}

// SimilarPattern pairs a candidate phrase with its similarity score,
// for the ad-hoc FindSimilar and BatchSimilar queries.
type SimilarPattern struct {
	Phrase string
	Score  float64
}

// Result is the match evidence for a single query. It is created fresh
// per query and never mutated after return.
type Result struct {
	// ExactMatches holds whole-text hits. Non-empty only when the query
	// equals a stored phrase, in which case no other tier ran.
	ExactMatches []ExactMatch

	// FuzzyMatches holds approximate hits at or above the threshold,
	// sorted by descending score.
	FuzzyMatches []FuzzyMatch

	// KeywordHits holds the sorted categories selected by the keyword
	// pre-filter.
	KeywordHits []string

	// MaxScore is the best similarity observed, in [0, 1]. Exact hits
	// score 1.0.
	MaxScore float64

	// Suspicious is set when any tier produced evidence.
	Suspicious bool
}

// CacheStats is a snapshot of similarity-cache behavior.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
}
