package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/gcbaptista/go-text-toolkit/internal/analyzer"
	"github.com/gcbaptista/go-text-toolkit/internal/matcher"
)

// renderTable draws rows under headers for display on out. Columns whose
// 1-based number is in rightAligned are right-aligned; the rest are left-aligned.
// Headers are colored only when out is a terminal.
func renderTable(out io.Writer, headers []string, rows [][]string, rightAligned ...int) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	style := table.StyleRounded
	if shouldColorize(out) {
		style.Color.Header = text.Colors{text.Bold, text.FgCyan}
	}
	tw.SetStyle(style)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, number := range rightAligned {
		configs = append(configs, table.ColumnConfig{
			Number:      number,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderResults(out io.Writer, results []matcher.ScoredResult) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{strconv.Itoa(i + 1), r.Text, strconv.Itoa(r.Score)}
	}
	return renderTable(out, []string{"#", "Candidate", "Score"}, rows, 1, 3)
}

func renderKeywords(out io.Writer, keywords []analyzer.Keyword) string {
	rows := make([][]string, len(keywords))
	for i, kw := range keywords {
		rows[i] = []string{kw.Word, strconv.Itoa(kw.Count)}
	}
	return renderTable(out, []string{"Keyword", "Count"}, rows, 2)
}
