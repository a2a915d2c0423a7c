package language

import "fmt"

// Language identifies one of the supported language/dialect variants.
// The zero value None is a sentinel meaning "no language selected" and is
// never a valid registry key.
type Language int

const (
	None Language = iota
	AmericanEnglish
	BritishEnglish
	Japanese
	Cantonese
	French
	Hindi
	Italian
	Spanish
	BrazilianPortuguese
)

// All returns every supported language except the None sentinel, in a
// stable order.
func All() []Language {
	return []Language{
		AmericanEnglish,
		BritishEnglish,
		Japanese,
		Cantonese,
		French,
		Hindi,
		Italian,
		Spanish,
		BrazilianPortuguese,
	}
}

// Code returns the engine language identifier for l, or "" for None.
func (l Language) Code() string {
	switch l {
	case AmericanEnglish:
		return "en-us"
	case BritishEnglish:
		return "en-gb"
	case Japanese:
		return "ja"
	case Cantonese:
		return "yue"
	case French:
		return "fr-fr"
	case Hindi:
		return "hi"
	case Italian:
		return "it"
	case Spanish:
		return "es"
	case BrazilianPortuguese:
		return "pt-br"
	}
	return ""
}

// String returns a human-readable name for l.
func (l Language) String() string {
	switch l {
	case None:
		return "none"
	case AmericanEnglish:
		return "American English"
	case BritishEnglish:
		return "British English"
	case Japanese:
		return "Japanese"
	case Cantonese:
		return "Cantonese"
	case French:
		return "French"
	case Hindi:
		return "Hindi"
	case Italian:
		return "Italian"
	case Spanish:
		return "Spanish"
	case BrazilianPortuguese:
		return "Brazilian Portuguese"
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Parse maps an engine language identifier (e.g. "en-us") to its Language.
func Parse(code string) (Language, error) {
	for _, l := range All() {
		if l.Code() == code {
			return l, nil
		}
	}
	return None, fmt.Errorf("unsupported language code: %q", code)
}

// Voice is implemented by application voice types that know which language
// they speak. It decouples voice catalogs from the phonemization pipeline.
type Voice interface {
	Language() Language
}
