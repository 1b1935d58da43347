// Package matcher ranks candidate strings against a query with a fuzzy-match score.
//
// Scoring is additive over an ordered list of rules evaluated on case-folded
// text, followed by an in-order character (subsequence) bonus:
//
//	exact match   +1000
//	prefix        +500
//	substring     +250
//	subsequence   +10 per query character found in order
//
// An exact match therefore also collects the prefix and substring bonuses.
package matcher

import (
	"sort"
	"strings"

	"github.com/gcbaptista/go-text-toolkit/internal/tokenizer"
)

// DefaultMaxResults is the result limit used when a caller has no preference.
const DefaultMaxResults = 10

// SubsequenceBonus is awarded for each query character matched in order.
const SubsequenceBonus = 10

// Rule is a single boolean check over the folded candidate and query.
type Rule struct {
	Name    string
	Bonus   int
	Matches func(candidate, query string) bool
}

// Rules is applied in order; every matching rule adds its bonus.
var Rules = []Rule{
	{Name: "exact", Bonus: 1000, Matches: func(c, q string) bool { return c == q }},
	{Name: "prefix", Bonus: 500, Matches: strings.HasPrefix},
	{Name: "substring", Bonus: 250, Matches: strings.Contains},
}

// ScoredResult pairs a candidate, in its original case, with its score.
type ScoredResult struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

// Score returns the fuzzy-match score of candidate against query.
// An empty query scores 0 against everything.
func Score(candidate, query string) int {
	if query == "" {
		return 0
	}
	return score(tokenizer.Fold(candidate), tokenizer.Fold(query))
}

// score expects both arguments already folded.
func score(candidate, query string) int {
	if query == "" {
		return 0
	}

	total := 0
	for _, rule := range Rules {
		if rule.Matches(candidate, query) {
			total += rule.Bonus
		}
	}
	return total + subsequenceScore(candidate, query)
}

// subsequenceScore walks candidate once, advancing a cursor into query on every
// matching byte. Gaps are not penalized.
func subsequenceScore(candidate, query string) int {
	matched := 0
	for i := 0; i < len(candidate) && matched < len(query); i++ {
		if candidate[i] == query[matched] {
			matched++
		}
	}
	return matched * SubsequenceBonus
}

// FuzzySearch scores every candidate against query and returns those with a
// positive score, highest first. Candidates with equal scores keep their input
// order. At most maxResults entries are returned; maxResults <= 0 yields none.
// The returned slice is never nil.
func FuzzySearch(candidates []string, query string, maxResults int) []ScoredResult {
	results := make([]ScoredResult, 0)
	if maxResults <= 0 || len(candidates) == 0 || query == "" {
		return results
	}

	folded := tokenizer.Fold(query)
	for _, candidate := range candidates {
		if s := score(tokenizer.Fold(candidate), folded); s > 0 {
			results = append(results, ScoredResult{Score: s, Text: candidate})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
