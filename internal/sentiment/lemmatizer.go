// AngelaMos | 2026
// lemmatizer.go

package sentiment

import (
	"unicode"

	"github.com/kljensen/snowball"
)

type Lemmatizer interface {
	Lemma(word string) string
}

// IdentityLemmatizer returns words unchanged.
type IdentityLemmatizer struct{}

func (IdentityLemmatizer) Lemma(word string) string {
	return word
}

// SnowballLemmatizer stems English and Russian words, picking the language
// from the word's script. Words it cannot stem pass through unchanged.
type SnowballLemmatizer struct{}

func (SnowballLemmatizer) Lemma(word string) string {
	lang := stemLanguage(word)
	if lang == "" {
		return word
	}

	stem, err := snowball.Stem(word, lang, true)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

// stemLanguage returns "" for mixed scripts and for Cyrillic words carrying
// Ukrainian-only letters, which the Russian stemmer would mangle.
func stemLanguage(word string) string {
	var latin, cyrillic bool

	for _, r := range word {
		switch {
		case isUkrainianOnly(r):
			return ""
		case unicode.Is(unicode.Latin, r):
			latin = true
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic = true
		}
	}

	switch {
	case latin && !cyrillic:
		return "english"
	case cyrillic && !latin:
		return "russian"
	default:
		return ""
	}
}

func isUkrainianOnly(r rune) bool {
	switch r {
	case 'і', 'ї', 'є', 'ґ', 'І', 'Ї', 'Є', 'Ґ':
		return true
	}
	return false
}

// NewLemmatizer maps a configured lemmatizer name to an implementation.
// Unknown names fall back to identity.
func NewLemmatizer(name string) Lemmatizer {
	if name == "snowball" {
		return SnowballLemmatizer{}
	}
	return IdentityLemmatizer{}
}
