package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Technique identifies an obfuscation technique detected in raw input.
type Technique string

const (
	TechniqueLeetspeak            Technique = "leetspeak"
	TechniqueExcessiveSpacing     Technique = "excessive_spacing"
	TechniqueInvisibleChars       Technique = "invisible_chars"
	TechniqueHomoglyphs           Technique = "homoglyphs"
	TechniqueMixedCase            Technique = "mixed_case"
	TechniquePunctuationInsertion Technique = "punctuation_insertion"
	TechniqueUnicodeTricks        Technique = "unicode_tricks"
)

var (
	reMixedCase   = regexp.MustCompile(`[a-z][A-Z][a-z]|[A-Z][a-z][A-Z]`)
	rePunctInsert = regexp.MustCompile(`\w[.,;:!?-]+\w`)
)

const leetIndicators = "0134578@$!|"

// DetectObfuscation reports which obfuscation techniques appear in text.
// It is a diagnostic side channel for logging and telemetry; the result
// never influences Normalize's output. The returned slice is sorted for
// deterministic output.
func DetectObfuscation(text string) []Technique {
	found := make(map[Technique]bool)

	if strings.ContainsAny(text, leetIndicators) {
		found[TechniqueLeetspeak] = true
	}
	if hasSpacedRun(text) {
		found[TechniqueExcessiveSpacing] = true
	}
	if rePunctInsert.MatchString(text) {
		found[TechniquePunctuationInsertion] = true
	}
	if reMixedCase.MatchString(text) {
		found[TechniqueMixedCase] = true
	}

	for _, r := range text {
		if invisibleRunes[r] {
			found[TechniqueInvisibleChars] = true
		}
		if _, ok := confusables[r]; ok {
			found[TechniqueHomoglyphs] = true
		}
		if r > unicode.MaxASCII {
			found[TechniqueUnicodeTricks] = true
		}
	}

	techniques := make([]Technique, 0, len(found))
	for t := range found {
		techniques = append(techniques, t)
	}
	sort.Slice(techniques, func(i, j int) bool { return techniques[i] < techniques[j] })
	return techniques
}

// hasSpacedRun reports whether text contains three or more single word
// characters separated by whitespace, the signature of a spacing attack.
func hasSpacedRun(text string) bool {
	runes := []rune(text)
	for i := range runes {
		if i > 0 && isWordRune(runes[i-1]) {
			continue
		}
		if _, _, ok := scanSpacedRunSpacesOnly(runes, i); ok {
			return true
		}
	}
	return false
}

// scanSpacedRunSpacesOnly is the whitespace-only variant of scanSpacedRun
// used for detection, so "k.i.l.l" registers as punctuation insertion
// rather than spacing.
func scanSpacedRunSpacesOnly(rs []rune, i int) (int, string, bool) {
	if i >= len(rs) || !isWordRune(rs[i]) {
		return 0, "", false
	}

	count := 0
	pos := i
	for pos < len(rs) && isWordRune(rs[pos]) {
		if pos+1 < len(rs) && isWordRune(rs[pos+1]) {
			break
		}
		count++
		pos++

		sep := pos
		for sep < len(rs) && unicode.IsSpace(rs[sep]) {
			sep++
		}
		if sep == pos || sep >= len(rs) || !isWordRune(rs[sep]) {
			break
		}
		if sep+1 < len(rs) && isWordRune(rs[sep+1]) {
			break
		}
		pos = sep
	}

	if count < 3 {
		return 0, "", false
	}
	return pos, "", true
}
