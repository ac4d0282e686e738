// ABOUTME: CLI commands that record standup notes.
// ABOUTME: Provides today, yesterday, and blocker subcommands sharing a --date flag.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2389-research/standup/internal/models"
)

var todayCmd = newRecordCmd(models.Today, "Record what you will work on", "t")
var yesterdayCmd = newRecordCmd(models.Yesterday, "Record what you worked on the day before", "y")
var blockerCmd = newRecordCmd(models.Blocker, "Record what is blocking you", "b", "blocked")

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(yesterdayCmd)
	rootCmd.AddCommand(blockerCmd)
}

func newRecordCmd(aspect models.Aspect, short string, aliases ...string) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:     aspect.String() + " <message...>",
		Aliases: aliases,
		Short:   short,
		Long:    fmt.Sprintf("Add a note to the %s list of a day's standup. Words are joined with spaces.", aspect),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(cmd, aspect, date, args)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Standup date as YYYY-MM-DD (default: today)")
	return cmd
}

func runRecord(cmd *cobra.Command, aspect models.Aspect, date string, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return models.InvalidInput("record note", fmt.Errorf("message is empty"))
	}

	sess, err := openSession(date)
	if err != nil {
		return err
	}

	entry, err := sess.Record(aspect, message)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s note #%d for %s\n", aspect, len(entry.Notes(aspect)), entry.Date())
	return nil
}
