package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
)

type analyzeOutput struct {
	analyzer.Report
	Frequency analyzer.FrequencyTable `json:"frequency,omitempty"`
}

func newAnalyzeCommand() *cobra.Command {
	var limit int
	var jsonOut bool
	var showFrequency bool

	cmd := &cobra.Command{
		Use:   "analyze [TEXT...]",
		Short: "Report reading time, keywords and word frequency for a text",
		Long:  "Analyze the text given as arguments, or read it from stdin when none is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read text: %w", err)
				}
				text = string(data)
			}

			output := analyzeOutput{Report: analyzer.Analyze(text, limit)}
			if showFrequency {
				output.Frequency = analyzer.WordFrequency(text)
			}

			if jsonOut {
				return writeJSON(cmd, output)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Reading time: %g minutes\n", output.ReadingTimeMinutes)
			fmt.Fprintf(out, "Words: %d, tokens: %d, unique tokens: %d\n",
				output.WordCount, output.TokenCount, output.UniqueTokens)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Top keywords:")
			fmt.Fprintln(out, renderKeywords(out, output.Keywords))

			if showFrequency {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Word frequency:")
				fmt.Fprintln(out, renderFrequency(out, output.Frequency))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", analyzer.DefaultKeywordLimit, "Maximum number of keywords")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&showFrequency, "frequency", false, "Include the full word-frequency table")
	return cmd
}

// renderFrequency lists every token, most frequent first, then alphabetically.
func renderFrequency(out io.Writer, frequency analyzer.FrequencyTable) string {
	words := make([]string, 0, len(frequency))
	for w := range frequency {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if frequency[words[i]] != frequency[words[j]] {
			return frequency[words[i]] > frequency[words[j]]
		}
		return words[i] < words[j]
	})

	rows := make([][]string, len(words))
	for i, w := range words {
		rows[i] = []string{w, strconv.Itoa(frequency[w])}
	}
	return renderTable(out, []string{"Token", "Count"}, rows, 2)
}
