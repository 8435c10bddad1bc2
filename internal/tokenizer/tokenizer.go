// Package tokenizer splits raw text into normalized word tokens.
package tokenizer

import (
	"iter"
	"regexp"
	"strings"
)

// wordRe matches a maximal run of Unicode letters. Digits, punctuation and
// whitespace act as separators.
var wordRe = regexp.MustCompile(`\p{L}+`)

// Tokens returns the word tokens of text as a lazy sequence, each token
// lower-cased. The sequence is finite and restartable: ranging over it again
// tokenizes text from the start. Empty text yields an empty sequence.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		pos := 0
		for pos < len(text) {
			loc := wordRe.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			word := strings.ToLower(text[pos+loc[0] : pos+loc[1]])
			pos += loc[1]
			if !yield(word) {
				return
			}
		}
	}
}
