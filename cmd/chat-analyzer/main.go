package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/liao/chat-analyzer/internal/config"
)

var version = "dev"

type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "chat-analyzer",
		Short:         "Analyze WhatsApp (.zip) and Telegram (.html) chat exports",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file path (yaml/toml/json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log what was detected while parsing")

	rootCmd.AddCommand(analyzeCmd(a))
	rootCmd.AddCommand(searchCmd(a))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// styled 终端输出时才加颜色
func (a *app) styled() bool {
	switch a.cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func (a *app) jsonOutput(flag bool) bool {
	return flag || a.cfg.Output.Format == "json"
}
