package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state between calls, so every helper builds its own.

func Title(value string) string {
	return cases.Title(language.English).String(value)
}

func Lower(value string) string {
	return cases.Lower(language.English).String(value)
}

// Normalize lowercases a free-text attribute such as a color or a style tag and
// collapses its whitespace to single spaces.
func Normalize(value string) string {
	return strings.Join(strings.Fields(Lower(value)), " ")
}

type Picker interface {
	IntN(n int) int
}

// Pick returns a uniformly chosen phrase, or "" for an empty bank.
func Pick(rng Picker, phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[rng.IntN(len(phrases))]
}

// JoinWords joins the non-empty words with single spaces.
func JoinWords(words ...string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}
