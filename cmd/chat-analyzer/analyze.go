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

func analyzeCmd(a *app) *cobra.Command {
	var user, out string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Print message, call and media statistics for a chat export",
		Long: `Analyze a WhatsApp (.zip) or Telegram (.html) chat export.

The current user (whose messages count as "sent") is detected from the
export unless --user is given or CHAT_ANALYZER_USER is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loader.ReadFile(args[0])
			if err != nil {
				return err
			}

			if user == "" {
				user = a.cfg.Analyzer.CurrentUser
			}
			res, err := analyzer.Analyze(cmd.Context(), f, analyzer.Options{
				CurrentUser: user,
				Thresholds:  a.cfg.Thresholds(),
				Logger:      slog.Default(),
			})
			if err != nil {
				return err
			}

			if out != "" {
				if err := report.Save(out, res); err != nil {
					return fmt.Errorf("save report: %w", err)
				}
				slog.Info("saved report", "path", out)
			}

			if a.jsonOutput(asJSON) {
				return report.WriteJSON(os.Stdout, res)
			}
			return report.Render(os.Stdout, res, a.styled())
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Name of the current user as it appears in the export")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Also write the result as JSON to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of the text report")

	return cmd
}
