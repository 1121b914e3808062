package era

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects the vocabulary used for era aware labels.
// The zero value is English.
type Language uint8

const (
	English Language = iota
	German
)

// vocabulary holds the fragments a language contributes to a rendered label
type vocabulary struct {
	code       string
	tag        language.Tag
	era        string
	decade     string
	century    string
	millennium string
	ordinal    func(magnitude uint64) string
}

var vocabularies = map[Language]vocabulary{
	English: {
		code:       "en",
		tag:        language.English,
		era:        " BCE",
		decade:     "s",
		century:    "century",
		millennium: "millennium",
		ordinal:    englishOrdinal,
	},
	German: {
		code:       "de",
		tag:        language.German,
		era:        " v.Chr.",
		decade:     "er",
		century:    "Jahrhundert",
		millennium: "Jahrtausend",
		ordinal:    func(uint64) string { return "." },
	},
}

// Languages returns the supported languages.
func Languages() []Language {
	return []Language{English, German}
}

// LanguageFromCode maps a two letter code to a Language. The code is lower cased
// and trimmed; anything other than "de" falls back to English.
func LanguageFromCode(code string) Language {
	if lang, ok := lookupLanguage(code); ok {
		return lang
	}
	return English
}

// lookupLanguage is the strict form of LanguageFromCode.
func lookupLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, lang := range Languages() {
		if vocabularies[lang].code == code {
			return lang, true
		}
	}
	return English, false
}

// languageForTag matches the base language of tag against the supported
// languages. Low confidence guesses do not match.
func languageForTag(tag language.Tag) (Language, bool) {
	base, confidence := tag.Base()
	if confidence < language.High {
		return English, false
	}
	for _, lang := range Languages() {
		if supported, _ := vocabularies[lang].tag.Base(); supported == base {
			return lang, true
		}
	}
	return English, false
}

func (l Language) vocabulary() vocabulary {
	if v, ok := vocabularies[l]; ok {
		return v
	}
	return vocabularies[English]
}

// Code returns the two letter code, "en" or "de".
func (l Language) Code() string {
	return l.vocabulary().code
}

func (l Language) String() string {
	return l.Code()
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	return l.vocabulary().tag
}

// EraSuffix returns the marker appended to negative years, or "" otherwise.
func (l Language) EraSuffix(year int) string {
	if year >= 0 {
		return ""
	}
	return l.vocabulary().era
}

// OrdinalExtension returns the suffix that turns n into an ordinal.
// English only looks at the last digit, so 11 yields "st".
func (l Language) OrdinalExtension(n int) string {
	return l.vocabulary().ordinal(magnitude(n))
}

func (l Language) DecadeFragment() string {
	return l.vocabulary().decade
}

func (l Language) CenturyFragment() string {
	return l.vocabulary().century
}

func (l Language) MillenniumFragment() string {
	return l.vocabulary().millennium
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}

// UnmarshalText never fails; unknown codes decode as English.
func (l *Language) UnmarshalText(text []byte) error {
	*l = LanguageFromCode(string(text))
	return nil
}

func englishOrdinal(n uint64) string {
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
