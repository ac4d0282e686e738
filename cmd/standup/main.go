// ABOUTME: Entry point for the standup binary.
// ABOUTME: Executes the root Cobra command and maps error kinds to exit messages.
package main

import (
	"fmt"
	"os"

	"github.com/2389-research/standup/internal/models"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage renders err with a hint for the kinds a user can act on.
func errorMessage(err error) string {
	msg := "standup: " + err.Error()
	switch models.KindOf(err) {
	case models.KindDecode:
		return msg + "\nThe journal file was left untouched; fix or move it and try again."
	case models.KindConfig:
		return msg + "\nSet the journal location with --file or $STANDUP_FILE."
	case models.KindInvalidInput:
		return msg + "\nRun 'standup --help' for usage."
	default:
		return msg
	}
}
