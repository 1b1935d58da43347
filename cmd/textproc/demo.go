package main

import (
	"fmt"
	"io"

	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
)

var demoTasks = []string{
	"Implement user authentication system",
	"Fix responsive design issues",
	"Add customer dashboard",
	"Optimize database queries",
	"Create onboarding flow",
	"Update documentation",
	"Refactor authentication module",
	"Add unit tests",
	"Implement real-time notifications",
}

const demoText = "The kanban board helps teams visualize workflow and optimize delivery. " +
	"Tasks move through different stages from backlog to completion. " +
	"The system provides insights and analytics to improve team performance."

const (
	demoQuery        = "auth"
	demoMaxResults   = 5
	demoKeywordLimit = 5
)

func runDemo(out io.Writer) error {
	fmt.Fprintln(out, "=== Text Processor Demo ===")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Fuzzy search for '%s':\n", demoQuery)
	results := matcher.FuzzySearch(demoTasks, demoQuery, demoMaxResults)
	fmt.Fprintln(out, renderResults(out, results))
	fmt.Fprintln(out)

	report := analyzer.Analyze(demoText, demoKeywordLimit)
	fmt.Fprintln(out, "Text Analysis:")
	fmt.Fprintf(out, "Reading time: %g minutes\n", report.ReadingTimeMinutes)
	fmt.Fprintf(out, "Words: %d, unique tokens: %d\n", report.WordCount, report.UniqueTokens)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Top keywords:")
	_, err := fmt.Fprintln(out, renderKeywords(out, report.Keywords))
	return err
}
