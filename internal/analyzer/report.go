package analyzer

import "github.com/gcbaptista/go-text-toolkit/internal/tokenizer"

// Report summarizes one body of text.
type Report struct {
	WordCount          int       `json:"word_count"`    // raw whitespace-delimited chunks
	TokenCount         int       `json:"token_count"`   // normalized, non-empty tokens
	UniqueTokens       int       `json:"unique_tokens"` // distinct normalized tokens
	ReadingTimeMinutes float64   `json:"reading_time_minutes"`
	Keywords           []Keyword `json:"keywords"`
}

// Analyze builds a Report for text, keeping at most keywordLimit keywords.
// The frequency table is built once and shared by the token counts and keyword ranking.
func Analyze(text string, keywordLimit int) Report {
	frequency := WordFrequency(text)
	words := tokenizer.CountWords(text)

	return Report{
		WordCount:          words,
		TokenCount:         frequency.Total(),
		UniqueTokens:       len(frequency),
		ReadingTimeMinutes: float64(words) / WordsPerMinute,
		Keywords:           rankKeywords(frequency, keywordLimit),
	}
}
