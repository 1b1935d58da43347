package model

import (
	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
)

// SearchRequest asks for candidates ranked against a query.
// A nil MaxResults selects the configured default.
type SearchRequest struct {
	Candidates []string `json:"candidates"`
	Query      string   `json:"query"`
	MaxResults *int     `json:"max_results,omitempty"`
}

// SearchResponse carries the ranked results of a SearchRequest.
type SearchResponse struct {
	Results []matcher.ScoredResult `json:"results"`
	Total   int                    `json:"total"`
	Took    int64                  `json:"took"`     // microseconds
	QueryID string                 `json:"query_id"` // unique UUID for this search query
}

// TextRequest carries a body of text. Limit is only read by keyword operations;
// nil selects the configured default.
type TextRequest struct {
	Text  string `json:"text"`
	Limit *int   `json:"limit,omitempty"`
}

// FrequencyResponse is the word-frequency table of a text.
type FrequencyResponse struct {
	Frequency    analyzer.FrequencyTable `json:"frequency"`
	UniqueTokens int                     `json:"unique_tokens"`
	TotalTokens  int                     `json:"total_tokens"`
}

// KeywordsResponse lists extracted keywords, most frequent first.
type KeywordsResponse struct {
	Keywords []analyzer.Keyword `json:"keywords"`
}

// ReadingTimeResponse is the reading-time estimate of a text.
type ReadingTimeResponse struct {
	Minutes   float64 `json:"minutes"`
	WordCount int     `json:"word_count"`
}
