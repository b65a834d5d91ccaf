package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies the style class of a block.
type Kind string

// Block kinds in the order the classifier tests them.
const (
	KindSpacer  Kind = "spacer"
	KindTitle   Kind = "title"
	KindHeading Kind = "heading"
	KindBody    Kind = "body"
)

// Heuristic thresholds.
const (
	minHeadingRunes = 6 // all-caps lines must be longer than 5 runes
	numberedPrefix  = 5 // a "." must appear within the first 5 runes
	titleMarker     = "PRODUCT REQUIREMENTS"
	titleAcronym    = "PRD"
)

// Classify decides the kind of an already trimmed line. The first matching
// rule wins: empty, all-caps (title or heading), numbered heading, body.
func Classify(line string) Kind {
	if line == "" {
		return KindSpacer
	}

	if isUpper(line) && utf8.RuneCountInString(line) >= minHeadingRunes {
		if strings.Contains(line, titleMarker) || strings.Contains(strings.ToUpper(line), titleAcronym) {
			return KindTitle
		}
		return KindHeading
	}

	if isNumbered(line) {
		return KindHeading
	}

	return KindBody
}

// isUpper reports whether s has at least one cased rune and no lower-case
// or title-case runes. Digits and punctuation are ignored. Other_Lowercase
// runes (ª, ⓐ) count as lower-case and Other_Uppercase runes (Ⅰ, Ⓐ) as
// upper-case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r), unicode.Is(unicode.Other_Lowercase, r):
			return false
		case unicode.IsUpper(r), unicode.Is(unicode.Other_Uppercase, r):
			cased = true
		}
	}
	return cased
}

// isNumbered reports whether s starts with a digit and has a "." within
// its first numberedPrefix runes, as in "1. Overview" or "12.3 Scope".
func isNumbered(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsDigit(first) {
		return false
	}
	n := 0
	for _, r := range s {
		if n == numberedPrefix {
			break
		}
		if r == '.' {
			return true
		}
		n++
	}
	return false
}
