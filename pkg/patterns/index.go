package patterns

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Joe3566/Joe-filter-sub002/pkg/normalize"
)

// Index build errors.
var (
	// ErrNoPatterns indicates the input table contained no phrases at all.
	ErrNoPatterns = errors.New("pattern table is empty")

	// ErrEmptyCategory indicates a category with an empty name.
	ErrEmptyCategory = errors.New("category name is empty")

	// ErrEmptyPhrase indicates an empty phrase (or one that normalizes to
	// the empty string).
	ErrEmptyPhrase = errors.New("phrase is empty")

	// ErrDuplicatePhrase indicates the same normalized phrase appears more
	// than once within a category.
	ErrDuplicatePhrase = errors.New("duplicate phrase")
)

// minKeywordLength is the minimum word length indexed for keyword lookup.
// Shorter words (articles, pronouns) carry no signal.
const minKeywordLength = 3

// Entry is a single stored pattern: a normalized phrase belonging to
// exactly one category.
type Entry struct {
	Category string
	Phrase   string
}

// Index is the process-wide pattern index. It is immutable after Build
// and safe for concurrent readers.
type Index struct {
	// exact maps a normalized phrase to its category for O(1) whole-text
	// lookup.
	exact map[string]string

	// byCategory maps a category to its normalized phrase list, in the
	// order the phrases were supplied.
	byCategory map[string][]string

	// keywords maps a normalized word (length > minKeywordLength) to the
	// set of categories containing a pattern with that word.
	keywords map[string]map[string]bool

	// categories holds the sorted category names.
	categories []string
}

// Build constructs an Index from a category -> phrases table. Every
// phrase is normalized before storage so the exact tier can compare
// against normalized queries directly.
//
// Build validates the whole table before returning: empty category
// names, empty phrases, and duplicate phrases within a category are
// configuration errors, and the Index is never partially usable.
func Build(table map[string][]string) (*Index, error) {
	idx := &Index{
		exact:      make(map[string]string),
		byCategory: make(map[string][]string),
		keywords:   make(map[string]map[string]bool),
	}

	total := 0
	for category, phrases := range table {
		if strings.TrimSpace(category) == "" {
			return nil, fmt.Errorf("building pattern index: %w", ErrEmptyCategory)
		}

		for _, phrase := range phrases {
			normalized := normalize.Normalize(phrase)
			if normalized == "" {
				return nil, fmt.Errorf("building pattern index: category %q: %w", category, ErrEmptyPhrase)
			}
			// A phrase belongs to exactly one category, so duplicates are
			// rejected across the whole table, not just within a category.
			if _, exists := idx.exact[normalized]; exists {
				return nil, fmt.Errorf("building pattern index: category %q: %q: %w", category, phrase, ErrDuplicatePhrase)
			}

			idx.exact[normalized] = category
			idx.byCategory[category] = append(idx.byCategory[category], normalized)
			idx.indexKeywords(normalized, category)
			total++
		}
	}

	if total == 0 {
		return nil, ErrNoPatterns
	}

	idx.categories = make([]string, 0, len(idx.byCategory))
	for category := range idx.byCategory {
		idx.categories = append(idx.categories, category)
	}
	sort.Strings(idx.categories)

	return idx, nil
}

// indexKeywords adds every meaningful word of a normalized phrase to the
// keyword index.
func (idx *Index) indexKeywords(phrase, category string) {
	for _, word := range strings.Fields(phrase) {
		if len(word) <= minKeywordLength {
			continue
		}
		set, ok := idx.keywords[word]
		if !ok {
			set = make(map[string]bool)
			idx.keywords[word] = set
		}
		set[category] = true
	}
}

// ExactCategory returns the category of the stored phrase equal to the
// normalized text, if any.
func (idx *Index) ExactCategory(normalized string) (string, bool) {
	category, ok := idx.exact[normalized]
	return category, ok
}

// KeywordCategories returns the categories whose patterns contain the
// given normalized word, or nil if the word is not indexed.
func (idx *Index) KeywordCategories(word string) map[string]bool {
	return idx.keywords[word]
}

// Phrases returns the normalized phrase list for a category. The
// returned slice must not be modified.
func (idx *Index) Phrases(category string) []string {
	return idx.byCategory[category]
}

// Categories returns the sorted category names. The returned slice must
// not be modified.
func (idx *Index) Categories() []string {
	return idx.categories
}

// Len returns the total number of stored patterns.
func (idx *Index) Len() int {
	return len(idx.exact)
}

// KeywordCount returns the number of indexed keywords.
func (idx *Index) KeywordCount() int {
	return len(idx.keywords)
}
