package phoneme

import (
	"regexp"
	"strings"

	"codeberg.org/snonux/phonemize/internal/language"
)

// syllabicRe matches a phoneme character carrying U+0329 (combining
// vertical line below), the engine's syllabic-consonant mark.
var syllabicRe = regexp.MustCompile(`(\S)\x{0329}`)

// Normalize rewrites a raw engine phoneme string into the canonical
// alphabet for the given language. It never fails: rules that do not match
// are no-ops, and empty input yields empty output.
func Normalize(raw string, lang language.Language) string {
	ps := strings.TrimSpace(raw)
	if ps == "" {
		return ""
	}

	for _, r := range sortedRules {
		ps = strings.ReplaceAll(ps, r.pattern, r.replacement)
	}

	// Syllabic consonants become a superscript schwa plus the consonant.
	// Any mark left over after that was not attached to a character.
	ps = syllabicRe.ReplaceAllString(ps, "ᵊ$1")
	ps = strings.ReplaceAll(ps, "\u0329", "")

	var dialect []rule
	if lang == language.BritishEnglish {
		dialect = britishRules
	} else {
		dialect = americanRules
	}
	for _, r := range dialect {
		ps = strings.ReplaceAll(ps, r.pattern, r.replacement)
	}

	// espeak-ng releases before 1.52 emit a bare "o" where newer releases
	// emit "ɔ". Must run after the dialect branch so diphthongs containing
	// "o" are consumed first.
	ps = strings.ReplaceAll(ps, "o", "ɔ")

	// Diphthong boundary markers are internal to the rules above.
	ps = strings.ReplaceAll(ps, "^", "")

	return ps
}
