package match

import (
	"sort"
	"strings"

	"github.com/Joe3566/Joe-filter-sub002/pkg/patterns"
)

// Matcher evaluates normalized text against a pattern index using three
// ordered cost tiers. The index is read-only and the similarity cache is
// internally synchronized, so a single Matcher is safe for concurrent
// use across request handlers.
type Matcher struct {
	index *patterns.Index
	cache *similarityCache
	opts  Options
}

// NewMatcher creates a matcher over the given index. Zero option fields
// take their defaults.
func NewMatcher(index *patterns.Index, opts Options) *Matcher {
	opts = opts.withDefaults()
	return &Matcher{
		index: index,
		cache: newSimilarityCache(opts.CacheSize),
		opts:  opts,
	}
}

// Match evaluates normalized text with the matcher's configured options.
func (m *Matcher) Match(text string) *Result {
	return m.MatchWithOptions(text, m.opts)
}

// MatchWithOptions evaluates normalized text with per-call options. The
// text must already be canonicalized (see the normalize package); the
// matcher compares it verbatim.
//
// Match never fails: an empty query or a query with no hits returns an
// empty Result with MaxScore 0.
func (m *Matcher) MatchWithOptions(text string, opts Options) *Result {
	opts = opts.withDefaults()
	result := &Result{}

	if text == "" {
		return result
	}

	// Tier 1: whole-text set membership. A hit is authoritative and
	// skips the remaining tiers entirely.
	if category, ok := m.index.ExactCategory(text); ok {
		result.ExactMatches = append(result.ExactMatches, ExactMatch{
			Category: category,
			Phrase:   text,
		})
		result.MaxScore = 1.0
		result.Suspicious = true
		return result
	}

	// Tier 2: keyword pre-filter.
	tokens := strings.Fields(text)
	candidates := m.keywordCandidates(tokens)
	if len(candidates) > 0 {
		result.KeywordHits = sortedKeys(candidates)
		result.Suspicious = true
	}

	// Tier 3: fuzzy comparison, only for queries past the minimum length
	// and only against the phrase lists the keyword tier selected.
	if opts.EnableFuzzy && len([]rune(text)) > opts.MinFuzzyLength {
		m.fuzzyTier(text, tokens, candidates, opts, result)
	}

	return result
}

// keywordCandidates unions the categories indexed for every token longer
// than three characters.
func (m *Matcher) keywordCandidates(tokens []string) map[string]bool {
	var candidates map[string]bool
	for _, token := range tokens {
		for category := range m.index.KeywordCategories(token) {
			if candidates == nil {
				candidates = make(map[string]bool)
			}
			candidates[category] = true
		}
	}
	return candidates
}

// fuzzyTier compares the query against candidate phrase lists and folds
// kept matches into result.
func (m *Matcher) fuzzyTier(text string, tokens []string, candidates map[string]bool, opts Options, result *Result) {
	query := truncateRunes(text, opts.MaxCompareLength)

	queryWords := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		queryWords[token] = true
	}

	// Categories iterate in sorted order so results are deterministic.
	for _, category := range sortedKeys(candidates) {
		var kept []FuzzyMatch
		for _, phrase := range m.index.Phrases(category) {
			// Set-intersection rejection: skip phrases sharing no word
			// with the query before paying for edit distance.
			if !sharesWord(phrase, queryWords) {
				continue
			}

			score := m.cache.similarity(query, phrase)
			if score >= opts.FuzzyThreshold {
				kept = append(kept, FuzzyMatch{Category: category, Phrase: phrase, Score: score})
			}
		}

		sort.Slice(kept, func(i, j int) bool {
			if kept[i].Score != kept[j].Score {
				return kept[i].Score > kept[j].Score
			}
			return kept[i].Phrase < kept[j].Phrase
		})
		if len(kept) > opts.TopK {
			kept = kept[:opts.TopK]
		}

		for _, fm := range kept {
			result.FuzzyMatches = append(result.FuzzyMatches, fm)
			if fm.Score > result.MaxScore {
				result.MaxScore = fm.Score
			}
		}
	}

	if len(result.FuzzyMatches) > 0 {
		result.Suspicious = true
	}
}

// FuzzyContains reports whether pattern is fuzzily present anywhere
// inside query. An exact substring check runs first as a fast path;
// otherwise a window of the pattern's length slides across the query
// and the call returns true once any window meets the threshold.
func (m *Matcher) FuzzyContains(query, pattern string, threshold float64) bool {
	query = strings.ToLower(query)
	pattern = strings.ToLower(pattern)

	if pattern == "" {
		return false
	}
	if strings.Contains(query, pattern) {
		return true
	}

	queryRunes := []rune(query)
	patternLen := len([]rune(pattern))
	if len(queryRunes) < patternLen {
		return false
	}

	for i := 0; i+patternLen <= len(queryRunes); i++ {
		window := string(queryRunes[i : i+patternLen])
		if m.cache.similarity(window, pattern) >= threshold {
			return true
		}
	}
	return false
}

// FindSimilar scores query against each candidate phrase and returns
// the ones at or above threshold, best first (ties break on phrase),
// capped at the matcher's TopK. Candidates sharing no word with the
// query are skipped before any edit distance is paid, as in the fuzzy
// tier.
func (m *Matcher) FindSimilar(query string, candidates []string, threshold float64) []SimilarPattern {
	query = strings.ToLower(query)
	queryWords := make(map[string]bool)
	for _, w := range strings.Fields(query) {
		queryWords[w] = true
	}

	var found []SimilarPattern
	for _, candidate := range candidates {
		phrase := strings.ToLower(candidate)
		if !sharesWord(phrase, queryWords) {
			continue
		}
		if score := m.cache.similarity(query, phrase); score >= threshold {
			found = append(found, SimilarPattern{Phrase: candidate, Score: score})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].Score != found[j].Score {
			return found[i].Score > found[j].Score
		}
		return found[i].Phrase < found[j].Phrase
	})
	if len(found) > m.opts.TopK {
		found = found[:m.opts.TopK]
	}
	return found
}

// BatchSimilar runs FindSimilar for every query against the same
// candidate set, keyed by the original query text.
func (m *Matcher) BatchSimilar(queries, candidates []string, threshold float64) map[string][]SimilarPattern {
	results := make(map[string][]SimilarPattern, len(queries))
	for _, query := range queries {
		results[query] = m.FindSimilar(query, candidates, threshold)
	}
	return results
}

// ResetCache clears the similarity cache. Results are unaffected; only
// latency changes.
func (m *Matcher) ResetCache() {
	m.cache.purge()
}

// CacheStats returns a snapshot of similarity-cache counters.
func (m *Matcher) CacheStats() CacheStats {
	return m.cache.stats()
}

// Index returns the matcher's pattern index.
func (m *Matcher) Index() *patterns.Index {
	return m.index
}

// sharesWord reports whether any word of phrase is in words.
func sharesWord(phrase string, words map[string]bool) bool {
	for _, w := range strings.Fields(phrase) {
		if words[w] {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
