package services

import (
	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
	"github.com/gcbaptista/go-text-toolkit/model"
)

// TextProcessor defines the text operations exposed to callers.
// A nil limit selects the implementation's configured default; explicit
// non-positive limits produce empty results.
type TextProcessor interface {
	Search(candidates []string, query string, maxResults *int) []matcher.ScoredResult
	Frequency(text string) analyzer.FrequencyTable
	Keywords(text string, limit *int) []analyzer.Keyword
	ReadingTime(text string) float64
	Analyze(text string, limit *int) analyzer.Report
}

// UsageTracker records handled requests and reports on them.
type UsageTracker interface {
	Track(event model.UsageEvent)
	Dashboard() model.UsageDashboard
}
