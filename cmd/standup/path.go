// ABOUTME: CLI command that prints the resolved journal file path.
// ABOUTME: Honors --file, $STANDUP_FILE, and the config file in that order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/standup/internal/config"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the journal file path",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	cfg := globalConfig
	if cfg == nil {
		cfg = &config.Config{}
	}
	path, err := cfg.JournalPathProvider(fileFlag)()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
