package analyzer

import "sort"

// stopWords is never written after package initialization.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "a": {},
	"an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "with": {},
	"to": {}, "for": {}, "of": {}, "as": {}, "by": {}, "from": {},
}

// IsStopWord reports whether word is in the stop-word set. word must already be normalized.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWords returns a sorted copy of the stop-word set.
func StopWords() []string {
	words := make([]string, 0, len(stopWords))
	for w := range stopWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
