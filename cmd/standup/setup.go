// ABOUTME: Cobra command for interactive journal setup.
// ABOUTME: Launches a bubbletea TUI wizard to choose and validate the journal location.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/standup/internal/config"
	"github.com/2389-research/standup/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose where your journal lives",
	Long:  "Interactive wizard to configure the journal file location and list order.",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := tui.NewSetupModel(cfg.Journal.Path, cfg.Display.NewestFirst)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	out := cmd.OutOrStdout()
	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		_, _ = fmt.Fprintln(out, "Setup cancelled.")
		return nil
	}

	path, newestFirst := final.Result()
	cfg.Journal.Path = path
	cfg.Display.NewestFirst = newestFirst

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(out, "Config saved successfully.")
	} else {
		_, _ = fmt.Fprintf(out, "Config saved to %s\n", configPath)
	}
	return nil
}
