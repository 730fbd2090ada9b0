package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/liao/chat-analyzer/internal/analyzer"
	"github.com/liao/chat-analyzer/internal/loader"
	"github.com/liao/chat-analyzer/internal/report"
)

func searchCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <file> <term>",
		Short: "Case-insensitive search over the raw transcript",
		Long: `Search every line of the export for a word or phrase.

Output is TSV: lineNumber, timestamp, sender, message.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loader.ReadFile(args[0])
			if err != nil {
				return err
			}

			results, err := analyzer.SearchFile(cmd.Context(), f, args[1], slog.Default())
			if err != nil {
				return err
			}

			if a.jsonOutput(asJSON) {
				return report.WriteJSON(os.Stdout, results)
			}
			if len(results) == 0 {
				fmt.Fprintln(os.Stderr, "No results found.")
				return nil
			}
			return report.WriteSearchResults(os.Stdout, results, a.styled())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of TSV")

	return cmd
}
