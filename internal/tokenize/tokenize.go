// AngelaMos | 2026
// tokenize.go

// Package tokenize splits free text into lower-case alphabetic words.
//
// Tokenization never fails from the caller's point of view: a Chain tries a
// primary Unicode-aware tokenizer and falls back to a regular-expression
// splitter over Latin and Cyrillic (including Ukrainian letters) when the
// primary cannot handle the input.
package tokenize

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidUTF8 = errors.New("tokenize: input is not valid UTF-8")

type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Unicode segments NFC-normalized text on every rune that is not a letter.
type Unicode struct{}

func (Unicode) Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	return strings.FieldsFunc(norm.NFC.String(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	}), nil
}

var wordPattern = regexp.MustCompile(`[A-Za-zА-Яа-яЁёІіЇїЄєҐґ]+`)

// Regex matches runs of Latin and Cyrillic letters. It accepts any input.
type Regex struct{}

func (Regex) Tokenize(text string) ([]string, error) {
	return wordPattern.FindAllString(text, -1), nil
}

type Chain struct {
	Primary  Tokenizer
	Fallback Tokenizer
}

func Default() Chain {
	return Chain{Primary: Unicode{}, Fallback: Regex{}}
}

// Words lower-cases text and returns its alphabetic tokens.
func (c Chain) Words(text string) []string {
	text = strings.ToLower(text)

	if c.Primary != nil {
		if words, err := c.Primary.Tokenize(text); err == nil {
			return words
		}
	}

	fallback := c.Fallback
	if fallback == nil {
		fallback = Regex{}
	}

	words, err := fallback.Tokenize(text)
	if err != nil {
		words, _ = Regex{}.Tokenize(text) //nolint:errcheck // Regex never fails
	}
	return words
}

func Words(text string) []string {
	return Default().Words(text)
}

// Normalize lower-cases and NFC-composes text so substring checks line up
// with tokens produced by Words.
func Normalize(text string) string {
	if !utf8.ValidString(text) {
		return strings.ToLower(text)
	}
	return strings.ToLower(norm.NFC.String(text))
}
