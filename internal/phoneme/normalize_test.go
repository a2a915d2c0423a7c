package phoneme

import (
	"strings"
	"testing"

	"codeberg.org/snonux/phonemize/internal/language"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		lang language.Language
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			lang: language.AmericanEnglish,
			want: "",
		},
		{
			name: "whitespace only",
			raw:  " \t\n",
			lang: language.AmericanEnglish,
			want: "",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  həlˈW\n",
			lang: language.AmericanEnglish,
			want: "həlˈW",
		},
		{
			name: "ai diphthong longest match first",
			raw:  "a^ɪ",
			lang: language.AmericanEnglish,
			want: "I",
		},
		{
			name: "au diphthong",
			raw:  "a^ʊ",
			lang: language.AmericanEnglish,
			want: "W",
		},
		{
			name: "ei diphthong beats bare e rule",
			raw:  "e^ɪ",
			lang: language.AmericanEnglish,
			want: "A",
		},
		{
			name: "bare e",
			raw:  "e",
			lang: language.AmericanEnglish,
			want: "A",
		},
		{
			name: "oi diphthong",
			raw:  "ɔ^ɪ",
			lang: language.AmericanEnglish,
			want: "Y",
		},
		{
			name: "affricate dezh",
			raw:  "d^ʒ",
			lang: language.AmericanEnglish,
			want: "ʤ",
		},
		{
			name: "affricate tesh",
			raw:  "t^ʃ",
			lang: language.AmericanEnglish,
			want: "ʧ",
		},
		{
			name: "glottal stop becomes t",
			raw:  "ʔ",
			lang: language.AmericanEnglish,
			want: "t",
		},
		{
			name: "glottal stop with syllabic n",
			raw:  "ʔn̩",
			lang: language.AmericanEnglish,
			want: "tn",
		},
		{
			name: "glottal stop with stressed syllabic n",
			raw:  "ʔˌn̩",
			lang: language.AmericanEnglish,
			want: "tn",
		},
		{
			name: "syllabic consonant gains schwa marker",
			raw:  "n̩",
			lang: language.AmericanEnglish,
			want: "ᵊn",
		},
		{
			name: "standalone syllabic mark stripped",
			raw:  "̩",
			lang: language.AmericanEnglish,
			want: "",
		},
		{
			name: "schwa l marker",
			raw:  "ə^l",
			lang: language.AmericanEnglish,
			want: "ᵊl",
		},
		{
			name: "palatalized o",
			raw:  "ʲo",
			lang: language.AmericanEnglish,
			want: "jɔ",
		},
		{
			name: "palatalized schwa",
			raw:  "ʲə",
			lang: language.AmericanEnglish,
			want: "jə",
		},
		{
			name: "bare palatalization mark removed",
			raw:  "tʲ",
			lang: language.AmericanEnglish,
			want: "t",
		},
		{
			name: "rhotacized schwa",
			raw:  "ɚ",
			lang: language.AmericanEnglish,
			want: "əɹ",
		},
		{
			name: "plain r",
			raw:  "r",
			lang: language.AmericanEnglish,
			want: "ɹ",
		},
		{
			name: "velar fricative x",
			raw:  "x",
			lang: language.AmericanEnglish,
			want: "k",
		},
		{
			name: "velar fricative c cedilla",
			raw:  "ç",
			lang: language.AmericanEnglish,
			want: "k",
		},
		{
			name: "near-open central vowel",
			raw:  "ɐ",
			lang: language.AmericanEnglish,
			want: "ə",
		},
		{
			name: "lateral fricative",
			raw:  "ɬ",
			lang: language.AmericanEnglish,
			want: "l",
		},
		{
			name: "nasalization tilde stripped",
			raw:  "ɑ̃",
			lang: language.French,
			want: "ɑ",
		},
		{
			name: "goat diphthong american",
			raw:  "o^ʊ",
			lang: language.AmericanEnglish,
			want: "O",
		},
		{
			name: "goat diphthong british placeholder before legacy o rewrite",
			raw:  "o^ʊ",
			lang: language.BritishEnglish,
			want: "Q",
		},
		{
			name: "legacy bare o becomes open o",
			raw:  "to",
			lang: language.AmericanEnglish,
			want: "tɔ",
		},
		{
			name: "length mark stripped for american",
			raw:  "ɑːt",
			lang: language.AmericanEnglish,
			want: "ɑt",
		},
		{
			name: "length mark kept for british",
			raw:  "ɑːt",
			lang: language.BritishEnglish,
			want: "ɑːt",
		},
		{
			name: "rhotic long vowel collapsed for american",
			raw:  "ɜːr",
			lang: language.AmericanEnglish,
			want: "ɜɹ",
		},
		{
			name: "rhotic long vowel kept for british",
			raw:  "ɜːr",
			lang: language.BritishEnglish,
			want: "ɜːɹ",
		},
		{
			name: "centering diphthong american",
			raw:  "ɪə",
			lang: language.AmericanEnglish,
			want: "iə",
		},
		{
			name: "centering diphthong british",
			raw:  "iə",
			lang: language.BritishEnglish,
			want: "ɪə",
		},
		{
			name: "length mark stripped for japanese",
			raw:  "kaː",
			lang: language.Japanese,
			want: "ka",
		},
		{
			name: "unknown symbols pass through",
			raw:  "ʘǂ",
			lang: language.AmericanEnglish,
			want: "ʘǂ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw, tt.lang)
			if got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.raw, tt.lang, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	inputs := []string{"", "a^ɪ", "ʔˌn̩", "həlˈo^ʊ wˈɜːrld", "ɜːr ɪə ɚ"}

	for _, lang := range append(language.All(), language.None) {
		for _, raw := range inputs {
			first := Normalize(raw, lang)
			second := Normalize(raw, lang)
			if first != second {
				t.Errorf("Normalize(%q, %v) not deterministic: %q != %q", raw, lang, first, second)
			}
		}
	}
}

func TestNormalizeEmptyForAllLanguages(t *testing.T) {
	for _, lang := range append(language.All(), language.None) {
		if got := Normalize("", lang); got != "" {
			t.Errorf("Normalize(\"\", %v) = %q, want \"\"", lang, got)
		}
	}
}

func TestNormalizeLeavesNoCarets(t *testing.T) {
	inputs := []string{
		"a^ɪ", "a^ʊ", "e^ɪ", "ɔ^ɪ", "d^ʒ", "t^ʃ", "o^ʊ", "ə^l",
		"mˈa^ɪt t^ʃˈe^ɪn d^ʒˈʌmp o^ʊld",
		"^", "^^", "x^y",
	}

	for _, lang := range append(language.All(), language.None) {
		for _, raw := range inputs {
			if got := Normalize(raw, lang); strings.Contains(got, "^") {
				t.Errorf("Normalize(%q, %v) = %q, contains residual caret", raw, lang, got)
			}
		}
	}
}

func TestSortedRulesLongestFirst(t *testing.T) {
	for i := 1; i < len(sortedRules); i++ {
		if len(sortedRules[i-1].pattern) < len(sortedRules[i].pattern) {
			t.Fatalf("rule %d (%q) is shorter than rule %d (%q)",
				i-1, sortedRules[i-1].pattern, i, sortedRules[i].pattern)
		}
	}
}
