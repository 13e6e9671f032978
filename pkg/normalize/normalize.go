package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes input (NFD), removes combining marks, and
// recomposes. This turns "é" into "e" regardless of how the accent was
// encoded.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	reWhitespaceRun = regexp.MustCompile(`\s+`)
	rePunctRun      = regexp.MustCompile(`([!?.,;:]){2,}`)
	reTrailingPunct = regexp.MustCompile(`(\w)[!?.,;:]+(\s|$)`)
)

// Normalize canonicalizes text for pattern matching. It is total (never
// fails, empty or whitespace-only input yields "") and idempotent.
//
// The folding steps run in a fixed order; see the package documentation
// for why the order matters.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = stripMarks(text)
	text = stripInvisible(text)
	text = collapseInsertions(text)
	text = decodeLeetspeak(text)
	text = foldHomoglyphs(text)
	// Decoding can mint single-letter words out of symbols ("@ b c"
	// becomes "a b c"), so spaced runs are collapsed once more to keep
	// the output a fixed point.
	text = collapseInsertions(text)
	text = strings.ToLower(text)
	text = normalizePunctuation(text)

	return text
}

// stripMarks applies unicode decomposition and removes accent marks.
func stripMarks(text string) string {
	folded, _, err := transform.String(foldMarks, text)
	if err != nil {
		// Transform only fails on malformed input; keep the raw text and
		// let the remaining steps operate on it.
		return text
	}
	return folded
}

// stripInvisible removes the allow-listed zero-width and invisible runes.
func stripInvisible(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !invisibleRunes[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// insertionPunct is the fixed punctuation set treated as an obfuscation
// separator when it sits between word characters.
func insertionPunct(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?', '-':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// collapseInsertions defeats spacing and punctuation-insertion attacks
// ("b o m b", "k.i.l.l") by joining runs of three or more single word
// characters separated by whitespace or insertion punctuation. Multi
// character words are left untouched so ordinary prose survives intact.
// Remaining whitespace runs collapse to a single space.
func collapseInsertions(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(runes) {
		start, joined, ok := scanSpacedRun(runes, i)
		if ok {
			b.WriteString(joined)
			i = start
			continue
		}
		b.WriteRune(runes[i])
		i++
	}

	out := reWhitespaceRun.ReplaceAllString(b.String(), " ")
	return strings.TrimSpace(out)
}

// scanSpacedRun detects a run of single word characters separated by
// obfuscation separators starting at position i. It returns the position
// after the run, the joined characters, and whether a run of at least
// three characters was found.
func scanSpacedRun(rs []rune, i int) (int, string, bool) {
	// A run member is a word rune that is not part of a longer word.
	if i > 0 && isWordRune(rs[i-1]) {
		return 0, "", false
	}
	if i >= len(rs) || !isWordRune(rs[i]) {
		return 0, "", false
	}

	var joined []rune
	pos := i
	for pos < len(rs) && isWordRune(rs[pos]) {
		// The segment must be exactly one word rune.
		if pos+1 < len(rs) && isWordRune(rs[pos+1]) {
			break
		}
		joined = append(joined, rs[pos])
		pos++

		// Consume one separator run before the next segment.
		sep := pos
		for sep < len(rs) && (unicode.IsSpace(rs[sep]) || insertionPunct(rs[sep])) {
			sep++
		}
		if sep == pos || sep >= len(rs) || !isWordRune(rs[sep]) {
			break
		}
		// Peek: the next segment must also be a single word rune to
		// continue the run.
		if sep+1 < len(rs) && isWordRune(rs[sep+1]) {
			break
		}
		pos = sep
	}

	if len(joined) < 3 {
		return 0, "", false
	}
	return pos, string(joined), true
}

// decodeLeetspeak converts leetspeak digits and symbols to letters.
// Multi-character tokens are replaced longest-first before single
// characters are translated, so "|<" decodes to "k" rather than having
// the pipe consumed on its own.
func decodeLeetspeak(text string) string {
	result := strings.ToLower(text)

	for _, token := range leetMultiOrdered {
		if strings.Contains(result, token) {
			result = strings.ReplaceAll(result, token, leetMulti[token])
		}
	}

	return strings.Map(func(r rune) rune {
		if repl, ok := leetSingle[r]; ok {
			return repl
		}
		return r
	}, result)
}

// foldHomoglyphs replaces known look-alike characters with their Latin
// base letter, then applies class-based folding for variants that do not
// decompose under NFD.
func foldHomoglyphs(text string) string {
	text = strings.Map(func(r rune) rune {
		if repl, ok := confusables[r]; ok {
			return repl
		}
		return r
	}, text)

	for _, hc := range homoglyphClasses {
		if hc.pattern.MatchString(text) {
			text = hc.pattern.ReplaceAllString(text, hc.base)
		}
	}
	return text
}

// normalizePunctuation collapses repeated punctuation to a single
// instance and strips punctuation that trails a word.
func normalizePunctuation(text string) string {
	text = rePunctRun.ReplaceAllString(text, "$1")
	text = reTrailingPunct.ReplaceAllString(text, "$1$2")
	return strings.TrimSpace(text)
}
