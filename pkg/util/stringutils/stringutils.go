package stringutils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// CapitalizeEachWord uppercases the first character of every space-separated word
// and leaves the rest of each word untouched. Runs of spaces are kept as they are.
// Blank input yields an empty string.
func CapitalizeEachWord(sentence string) string {
	if IsBlank(sentence) {
		return ""
	}

	words := strings.Split(sentence, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}

	return strings.Join(words, " ")
}
