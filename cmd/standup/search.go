// ABOUTME: CLI command that searches standup notes.
// ABOUTME: Case-insensitive substring match over every note, most recent day first.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search standup notes",
	Long:  "Search every note by case-insensitive substring matching. Matching days are shown most recent first.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Maximum number of days to show")
}

func runSearch(cmd *cobra.Command, args []string) error {
	sess, err := openSession("")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	matches := sess.Search(strings.Join(args, " "))
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(out, "No matching standups found.")
		return nil
	}
	if searchLimit > 0 && len(matches) > searchLimit {
		matches = matches[:searchLimit]
	}

	for i, entry := range matches {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		_, _ = fmt.Fprint(out, renderEntry(entry.String()))
	}
	return nil
}
