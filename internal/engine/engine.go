package engine

import (
	"github.com/gcbaptista/go-text-toolkit/config"
	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
)

// Engine applies configured default limits and delegates to the matcher and analyzer.
// It implements the services.TextProcessor interface.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	settings config.Settings
}

// NewEngine creates a new text processing engine. Zero-valued settings fields
// receive their defaults.
func NewEngine(settings config.Settings) *Engine {
	settings.ApplyDefaults()
	return &Engine{settings: settings}
}

// Settings returns a copy of the engine's settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

func resolveLimit(limit *int, fallback int) int {
	if limit == nil {
		return fallback
	}
	return *limit
}

// Search ranks candidates against query.
func (e *Engine) Search(candidates []string, query string, maxResults *int) []matcher.ScoredResult {
	return matcher.FuzzySearch(candidates, query, resolveLimit(maxResults, e.settings.DefaultMaxResults))
}

// Frequency returns the word-frequency table of text.
func (e *Engine) Frequency(text string) analyzer.FrequencyTable {
	return analyzer.WordFrequency(text)
}

// Keywords returns the top keywords of text.
func (e *Engine) Keywords(text string, limit *int) []analyzer.Keyword {
	return analyzer.ExtractKeywords(text, resolveLimit(limit, e.settings.DefaultKeywordLimit))
}

// ReadingTime returns the reading-time estimate of text in minutes.
func (e *Engine) ReadingTime(text string) float64 {
	return analyzer.EstimateReadingTime(text)
}

// Analyze returns the combined report for text.
func (e *Engine) Analyze(text string, limit *int) analyzer.Report {
	return analyzer.Analyze(text, resolveLimit(limit, e.settings.DefaultKeywordLimit))
}
