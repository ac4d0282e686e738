// ABOUTME: CLI command that lists every recorded standup.
// ABOUTME: Prints entries in chronological order, optionally newest first and limited.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2389-research/standup/internal/session"
)

var (
	listNewestFirst bool
	listLimit       int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded standups",
	Long:    "List every recorded standup sorted by date. The default order comes from display.newest_first in the config.",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listNewestFirst, "newest-first", false, "List the most recent day first")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of days to show (0 for all)")
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession("")
	if err != nil {
		return err
	}

	order := session.OldestFirst
	newest := newestFirstDefault()
	if cmd.Flags().Changed("newest-first") {
		newest = listNewestFirst
	}
	if newest {
		order = session.NewestFirst
	}

	texts := sess.List(order)
	if len(texts) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No standups recorded.")
		return nil
	}
	if listLimit > 0 && len(texts) > listLimit {
		texts = texts[:listLimit]
	}

	out := cmd.OutOrStdout()
	for i, text := range texts {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprint(out, renderEntry(text))
	}
	return nil
}
