// ABOUTME: CLI command that deletes a standup or a single note from it.
// ABOUTME: Takes a required --date and an optional aspect and 1-based line number.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/2389-research/standup/internal/models"
)

var deleteDate string

var deleteCmd = &cobra.Command{
	Use:     "delete --date YYYY-MM-DD [aspect line]",
	Aliases: []string{"d"},
	Short:   "Delete the standup on the specified day",
	Long: `Delete a whole day's standup, or one note from it when an aspect
(today, yesterday, blocker) and the line number shown by 'standup show' are given.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return models.InvalidInput("parse arguments", fmt.Errorf("expected no arguments or <aspect> <line>, got %d", len(args)))
		}
		return nil
	},
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteDate, "date", "d", "", "Standup date as YYYY-MM-DD")
	_ = deleteCmd.MarkFlagRequired("date")
}

func runDelete(cmd *cobra.Command, args []string) error {
	var (
		aspect models.Aspect
		index  int
	)
	if len(args) == 2 {
		var err error
		if aspect, err = parseAspectArg(args[0]); err != nil {
			return err
		}
		if index, err = parseLineArg(args[1]); err != nil {
			return err
		}
	}

	sess, err := openSession(deleteDate)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		_, ok, err := sess.DeleteEntry()
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintf(out, "No standup recorded for %s.\n", sess.WorkingDate())
			return nil
		}
		_, _ = fmt.Fprintf(out, "Deleted standup for %s.\n", sess.WorkingDate())
		return nil
	}

	entry, err := sess.DeleteLine(aspect, index)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, renderEntry(entry.String()))
	return nil
}

// parseAspectArg accepts the aspect names plus "blocked" for blocker.
func parseAspectArg(token string) (models.Aspect, error) {
	if token == "blocked" {
		return models.Blocker, nil
	}
	return models.ParseAspect(token)
}

// parseLineArg converts a displayed 1-based line number to a 0-based index.
func parseLineArg(token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, models.InvalidInput("parse line number", fmt.Errorf("%q is not a number", token))
	}
	if n < 1 {
		return 0, models.InvalidInput("parse line number", fmt.Errorf("line numbers start at 1, got %d", n))
	}
	return n - 1, nil
}
