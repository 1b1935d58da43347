package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var demo bool

	rootCmd := &cobra.Command{
		Use:           "textproc",
		Short:         "Fuzzy search and text analysis toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			out := cmd.OutOrStdout()

			if demo {
				if err := runDemo(out); err != nil {
					return err
				}
			} else {
				printBanner(out)
			}

			fmt.Fprintf(out, "\nExecution time: %d microseconds\n", time.Since(started).Microseconds())
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&demo, "demo", false, "Run the canned search and analysis demonstration")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func printBanner(out io.Writer) {
	fmt.Fprintln(out, "Text Processor")
	fmt.Fprintln(out, "Usage: textproc --demo")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Features:")
	fmt.Fprintln(out, "  - Fast fuzzy search")
	fmt.Fprintln(out, "  - Keyword extraction")
	fmt.Fprintln(out, "  - Reading time estimation")
	fmt.Fprintln(out, "  - Word frequency analysis")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands: serve, search, analyze, config (see textproc --help)")
}
