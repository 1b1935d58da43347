package tokenizer

import (
	"iter"
	"strings"
)

// isSpace reports whether r is one of the ASCII whitespace characters
// (space, \t, \n, \v, \f, \r).
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isAlnum reports whether b is an ASCII letter or digit.
func isAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// Fold lowercases the ASCII letters of s and leaves every other byte untouched.
// It is the single case-folding step shared by matching and tokenization.
func Fold(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Fields splits text on runs of ASCII whitespace without any normalization.
// Punctuation-only chunks such as "--" are kept.
func Fields(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}

// CountWords returns the number of raw whitespace-delimited chunks in text.
func CountWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if isSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}

// normalize folds a raw chunk and drops every byte that is not an ASCII letter or digit.
func normalize(chunk string) string {
	var b strings.Builder
	b.Grow(len(chunk))
	for i := 0; i < len(chunk); i++ {
		if isAlnum(chunk[i]) {
			b.WriteByte(chunk[i])
		}
	}
	return Fold(b.String())
}

// Tokenize returns a lazy sequence of normalized tokens in left-to-right order.
// Each chunk between runs of whitespace is lowercased and stripped of non-alphanumeric
// characters; chunks that end up empty are skipped.
// The sequence is restartable: every range over it tokenizes text from scratch.
func Tokenize(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range text {
			if isSpace(r) {
				if start >= 0 {
					if token := normalize(text[start:i]); token != "" && !yield(token) {
						return
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			if token := normalize(text[start:]); token != "" {
				yield(token)
			}
		}
	}
}

// Tokens collects Tokenize into a slice. It never returns nil.
func Tokens(text string) []string {
	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for token := range Tokenize(text) {
		tokens = append(tokens, token)
	}
	return tokens
}
