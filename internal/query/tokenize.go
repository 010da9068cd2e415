// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"
	"unicode"
)

// Word is one maximal run of letters and digits in a text, located by
// byte offsets into the original string.
type Word struct {
	Start int
	End   int
	// Lower is the lower-cased word.
	Lower string
}

// Words splits s on every non-alphanumeric boundary. Lower-casing uses
// Unicode simple case mapping and never depends on the locale.
func Words(s string) []Word {
	var words []Word
	start := -1
	for i, r := range s {
		alnum := unicode.IsLetter(r) || unicode.IsDigit(r)
		switch {
		case alnum && start < 0:
			start = i
		case !alnum && start >= 0:
			words = append(words, Word{Start: start, End: i, Lower: strings.ToLower(s[start:i])})
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, Word{Start: start, End: len(s), Lower: strings.ToLower(s[start:])})
	}
	return words
}

// Tokenize returns the lower-cased words of s in order.
func Tokenize(s string) []string {
	words := Words(s)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]string, len(words))
	for i, w := range words {
		tokens[i] = w.Lower
	}
	return tokens
}

// ContainsRun reports whether needle occurs as a contiguous run in hay.
func ContainsRun(hay, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(hay) {
		return false
	}
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j, tok := range needle {
			if hay[i+j] != tok {
				continue outer
			}
		}
		return true
	}
	return false
}

// NormalizeName lower-cases a name and collapses internal whitespace.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

