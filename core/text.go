package core

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// FoldWord trims and case-folds a word for comparison
// Folding is locale-independent so accented Portuguese words compare consistently
func FoldWord(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// FoldRune case-folds a single typed rune
// Runes whose fold expands to several runes are returned unchanged
func FoldRune(r rune) rune {
	folded := cases.Fold().String(string(r))
	if utf8.RuneCountInString(folded) != 1 {
		return r
	}
	f, _ := utf8.DecodeRuneInString(folded)
	return f
}
