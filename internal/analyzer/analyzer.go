// Package analyzer computes word statistics over a body of text: token
// frequencies, stop-word filtered keywords and a reading-time estimate.
package analyzer

import (
	"sort"

	"github.com/gcbaptista/go-text-toolkit/internal/tokenizer"
)

const (
	// DefaultKeywordLimit is the keyword count used when a caller has no preference.
	DefaultKeywordLimit = 10

	// MinKeywordLength is the shortest token length kept as a keyword.
	MinKeywordLength = 4

	// WordsPerMinute is the reading speed used by EstimateReadingTime.
	WordsPerMinute = 200.0
)

// FrequencyTable maps each token to the number of times it occurs.
type FrequencyTable map[string]int

// Total returns the sum of all counts.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, count := range ft {
		total += count
	}
	return total
}

// Keyword is a token that survived keyword filtering, with its occurrence count.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequency tokenizes text and counts every distinct token.
// Empty text yields an empty, non-nil table.
func WordFrequency(text string) FrequencyTable {
	frequency := make(FrequencyTable)
	for token := range tokenizer.Tokenize(text) {
		frequency[token]++
	}
	return frequency
}

// ExtractKeywords returns the most frequent tokens longer than three characters
// that are not stop words, ordered by count descending. Tokens with equal counts
// are ordered alphabetically so the output does not depend on map iteration.
// At most limit keywords are returned; limit <= 0 yields none.
func ExtractKeywords(text string, limit int) []Keyword {
	if limit <= 0 {
		return make([]Keyword, 0)
	}
	return rankKeywords(WordFrequency(text), limit)
}

func rankKeywords(frequency FrequencyTable, limit int) []Keyword {
	keywords := make([]Keyword, 0)
	if limit <= 0 {
		return keywords
	}

	for word, count := range frequency {
		if len(word) < MinKeywordLength || IsStopWord(word) {
			continue
		}
		keywords = append(keywords, Keyword{Word: word, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

// EstimateReadingTime returns the minutes needed to read text at WordsPerMinute.
// Words are raw whitespace-delimited chunks, so punctuation-only chunks count.
// The value is not rounded.
func EstimateReadingTime(text string) float64 {
	return float64(tokenizer.CountWords(text)) / WordsPerMinute
}
