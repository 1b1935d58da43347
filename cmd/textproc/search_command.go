package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
)

func newSearchCommand() *cobra.Command {
	var query string
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search --query QUERY [CANDIDATE...]",
		Short: "Rank candidates against a query",
		Long: "Rank candidates against a query with the fuzzy-match score.\n" +
			"Candidates are taken from the arguments, or one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := args
			if len(candidates) == 0 {
				lines, err := readLines(cmd)
				if err != nil {
					return err
				}
				candidates = lines
			}

			results := matcher.FuzzySearch(candidates, query, limit)
			if jsonOut {
				return writeJSON(cmd, results)
			}
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No matches for '%s'\n", query)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderResults(cmd.OutOrStdout(), results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Query to rank candidates against")
	cmd.Flags().IntVarP(&limit, "limit", "n", matcher.DefaultMaxResults, "Maximum number of results")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

// readLines returns the non-blank lines of the command's stdin.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	return lines, nil
}
