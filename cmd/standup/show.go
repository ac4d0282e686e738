// ABOUTME: CLI command that displays one day's standup.
// ABOUTME: Renders the working date's entry with numbered notes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showDate string

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"s"},
	Short:   "Display the notes from a standup",
	Long:    "Show the today, yesterday, and blocker notes recorded for a day.",
	Args:    cobra.NoArgs,
	RunE:    runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "Standup date as YYYY-MM-DD (default: today)")
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession(showDate)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderEntry(sess.Show()))
	return nil
}
