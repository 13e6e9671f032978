package normalize

import (
	"regexp"
	"sort"
)

// invisibleRunes is the fixed allow-listed set of zero-width and invisible
// code points stripped during normalization.
var invisibleRunes = map[rune]bool{
	'\u200b': true, // zero width space
	'\u200c': true, // zero width non-joiner
	'\u200d': true, // zero width joiner
	'\u2060': true, // word joiner
	'\ufeff': true, // zero width no-break space
	'\u00ad': true, // soft hyphen
}

// leetSingle maps single leetspeak characters to their decoded letter.
// Every value is stable under a second decoding pass, which keeps the
// overall normalization idempotent.
var leetSingle = map[rune]rune{
	'0': 'o', '1': 'i', '3': 'e', '4': 'a', '5': 's',
	'6': 'g', '7': 't', '8': 'b', '9': 'g',
	'@': 'a', '$': 's', '!': 'i', '|': 'i', '€': 'e',
	'£': 'l', '¥': 'y', '+': 't', '×': 'x',
	'§': 's', '¶': 'p', '©': 'c', '®': 'r',
	'°': 'o', '±': 'i', 'µ': 'u',
	'¹': 'i', '²': '2', '³': 'e', '¼': 'i', '½': 'i', '¾': 'e',
}

// leetMulti maps multi-character leetspeak tokens to their decoded letter.
// Tokens must be tried longest-first so a three-character token decodes
// before its single-character prefix would corrupt it.
var leetMulti = map[string]string{
	`()`:     "o",
	`[]`:     "i",
	`{}`:     "o",
	`<>`:     "o",
	`/\/\`:   "m",
	`\/\/`:   "w",
	`|)`:     "d",
	`|3`:     "b",
	`|<`:     "k",
	`|_`:     "l",
	`|o`:     "p",
	`7h`:     "th",
	`|\/|`:   "m",
	`|\|`:    "n",
	`|2`:     "r",
	`(_)`:    "u",
	`\/`:     "v",
	`\|/`:    "y",
	`><`:     "x",
}

// leetMultiOrdered holds the leetMulti keys sorted longest-first.
var leetMultiOrdered = func() []string {
	keys := make([]string, 0, len(leetMulti))
	for k := range leetMulti {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// confusables maps look-alike characters from non-Latin scripts to their
// Latin equivalent. NFD folding does not handle cross-script confusables:
// Cyrillic а (U+0430) stays а, not Latin a.
var confusables = map[rune]rune{
	// Cyrillic lookalikes
	'а': 'a', 'е': 'e', 'о': 'o', 'р': 'p', 'с': 'c',
	'і': 'i', 'х': 'x', 'у': 'y', 'ѕ': 's', 'һ': 'h',
	'ј': 'j', 'ԁ': 'd', 'ɡ': 'g', 'ӏ': 'l', 'ո': 'n',
	// Greek lookalikes
	'α': 'a', 'β': 'b', 'ε': 'e', 'ι': 'i', 'ο': 'o',
	'ρ': 'p', 'σ': 's', 'τ': 't', 'υ': 'u', 'χ': 'x',
	// Mathematical lookalikes
	'∩': 'n', '⊂': 'c', '⊃': 'u', '∨': 'v', '∧': 'a',
	'⊗': 'o', '⊕': 'o', '∅': 'o', '∈': 'e', '∋': 'e',
	// Fullwidth forms (NFD does not fold compatibility characters).
	// Both cases are listed: the leet pass lowercases before this fold
	// runs, and lowercasing maps fullwidth capitals to the fullwidth
	// small forms, not to ASCII.
	'Ａ': 'a', 'Ｂ': 'b', 'Ｃ': 'c', 'Ｄ': 'd', 'Ｅ': 'e',
	'Ｆ': 'f', 'Ｇ': 'g', 'Ｈ': 'h', 'Ｉ': 'i', 'Ｊ': 'j',
	'ａ': 'a', 'ｂ': 'b', 'ｃ': 'c', 'ｄ': 'd', 'ｅ': 'e',
	'ｆ': 'f', 'ｇ': 'g', 'ｈ': 'h', 'ｉ': 'i', 'ｊ': 'j',
}

// homoglyphClass folds a class of accented or confusable variants to a
// single base letter. These catch characters that do not decompose under
// NFD (ø, đ, ə, ...) as well as whole-class confusables.
type homoglyphClass struct {
	pattern *regexp.Regexp
	base    string
}

var homoglyphClasses = []homoglyphClass{
	{regexp.MustCompile(`(?i)[кḱǩḵƙķ]`), "k"},
	{regexp.MustCompile(`(?i)[ɑαа]`), "a"},
	{regexp.MustCompile(`(?i)[ḇḃƀ]`), "b"},
	{regexp.MustCompile(`(?i)[çćčċƈ]`), "c"},
	{regexp.MustCompile(`(?i)[ďḍḋđ]`), "d"},
	{regexp.MustCompile(`(?i)[éèêëēėęěĕəәеɛ]`), "e"},
	{regexp.MustCompile(`(?i)[íìîïīįĭıі]`), "i"},
	{regexp.MustCompile(`(?i)[óòôöōőøǿоο]`), "o"},
	{regexp.MustCompile(`(?i)[úùûüūůűų]`), "u"},
	{regexp.MustCompile(`(?i)[ýÿŷ]`), "y"},
}
