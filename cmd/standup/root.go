// ABOUTME: Root Cobra command and global flags for standup CLI.
// ABOUTME: Sets up lifecycle hooks for config loading, logging, and session opening.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/2389-research/standup/internal/config"
	"github.com/2389-research/standup/internal/session"
)

var globalConfig *config.Config
var globalLogger = slog.Default()

// Flags
var (
	fileFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "standup",
	Short: "Daily standup journal",
	Long: `
███████╗████████╗ █████╗ ███╗   ██╗██████╗ ██╗   ██╗██████╗
██╔════╝╚══██╔══╝██╔══██╗████╗  ██║██╔══██╗██║   ██║██╔══██╗
███████╗   ██║   ███████║██╔██╗ ██║██║  ██║██║   ██║██████╔╝
╚════██║   ██║   ██╔══██║██║╚██╗██║██║  ██║██║   ██║██╔═══╝
███████║   ██║   ██║  ██║██║ ╚████║██████╔╝╚██████╔╝██║
╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝╚═════╝  ╚═════╝ ╚═╝

Keep a log of what you did yesterday, what you are doing today,
and what is blocking you. Notes live in a single JSON file.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		globalLogger = newLogger(verboseFlag)
		slog.SetDefault(globalLogger)

		if cmd.Name() == "help" || cmd.Name() == "setup" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		globalConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "", "Journal file path (overrides config and $STANDUP_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openSession loads the journal with the given working date override.
func openSession(date string) (*session.Session, error) {
	cfg := globalConfig
	if cfg == nil {
		cfg = &config.Config{}
	}
	return session.Open(session.Options{
		DateOverride: date,
		Path:         cfg.JournalPathProvider(fileFlag),
		Logger:       globalLogger,
	})
}

// newestFirstDefault reports the configured list order.
func newestFirstDefault() bool {
	return globalConfig != nil && globalConfig.Display.NewestFirst
}
