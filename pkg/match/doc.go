// Package match implements the tiered pattern matcher.
//
// # Overview
//
// Matching runs in three strictly ordered, early-exiting cost tiers
// against a read-only patterns.Index:
//
//  1. Exact tier: O(1) set membership of the whole normalized text
//     against stored phrases. A hit returns immediately with MaxScore 1.0,
//     making replayed known attacks the fastest path.
//  2. Keyword tier: tokens longer than three characters are looked up in
//     the keyword index and candidate categories unioned. This is a
//     pre-filter and suspicion signal, not a verdict.
//  3. Fuzzy tier: edit-similarity comparison of the query against the
//     phrase lists the keyword tier selected, with per-phrase shared-word
//     rejection before any expensive comparison. Scores at or above the
//     threshold are kept, sorted descending, and truncated to a top-K per
//     category.
//
// # Caching
//
// Every computed pairwise similarity lands in a bounded LRU cache keyed
// by the unordered pair of strings, so repeated queries against the same
// or overlapping phrase sets become cache hits. The cache is an
// optimization only: clearing it never changes a result, and a racing
// duplicate computation resolves last-writer-wins.
//
// # Failure policy
//
// Match never fails; absence of a match is a normal result. The fuzzy
// tier can be disabled under load (Options.EnableFuzzy) with reduced
// recall but no correctness loss.
package match
