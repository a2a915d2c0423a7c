package phoneme

import "sort"

// rule is a literal substring substitution.
type rule struct {
	pattern     string
	replacement string
}

// commonRules maps engine phoneme notation to the canonical alphabet,
// independent of dialect. Several patterns contain others as substrings
// (e.g. "e^ɪ" contains "e"), so the table is applied longest-pattern-first;
// see sortedRules.
var commonRules = []rule{
	{"ʔˌn\u0329", "tn"},
	{"ʔn\u0329", "tn"},
	{"ʔ", "t"},
	{"a^ɪ", "I"},
	{"a^ʊ", "W"},
	{"d^ʒ", "ʤ"},
	{"e^ɪ", "A"},
	{"e", "A"},
	{"t^ʃ", "ʧ"},
	{"ɔ^ɪ", "Y"},
	{"ə^l", "ᵊl"},
	{"ʲo", "jo"},
	{"ʲə", "jə"},
	{"ʲ", ""},
	{"ɚ", "əɹ"},
	{"r", "ɹ"},
	{"x", "k"},
	{"ç", "k"},
	{"ɐ", "ə"},
	{"ɬ", "l"},
	{"\u0303", ""}, // combining tilde (nasalization)
}

// britishRules apply only to en-GB output. Order matters.
var britishRules = []rule{
	{"e^ə", "ɛː"},
	{"iə", "ɪə"},
	{"o^ʊ", "Q"},
}

// americanRules apply to every dialect except en-GB. Order matters: the
// rhotic rewrites must see their length marks before the final rule strips
// every remaining U+02D0. British output keeps its length marks.
var americanRules = []rule{
	{"o^ʊ", "O"},
	{"ɜːɹ", "ɜɹ"},
	{"ɜː", "ɜɹ"},
	{"ɪə", "iə"},
	{"ː", ""},
}

// sortedRules is commonRules ordered by descending pattern length so that a
// short pattern never fires inside a longer one that contains it. Computed
// once at init; never mutated afterwards.
var sortedRules = func() []rule {
	rules := make([]rule, len(commonRules))
	copy(rules, commonRules)
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].pattern) > len(rules[j].pattern)
	})
	return rules
}()
