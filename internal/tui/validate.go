// ABOUTME: Journal location validation for the setup wizard.
// ABOUTME: Checks that an existing journal decodes, or that a new one can be created.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2389-research/standup/internal/config"
	"github.com/2389-research/standup/internal/storage"
)

// ValidateJournal checks that path holds a readable journal or can hold a new one.
// The context allows cancellation when the user quits during validation.
func ValidateJournal(ctx context.Context, path string) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	if expanded == "" {
		return errors.New("journal path is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(expanded)
	switch {
	case errors.Is(err, os.ErrNotExist):
		dir := filepath.Dir(expanded)
		dirInfo, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("directory %s is not accessible: %w", dir, err)
		}
		if !dirInfo.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to stat journal: %w", err)
	case info.IsDir():
		return fmt.Errorf("%s is a directory", expanded)
	}

	journal, err := storage.NewJournalFile(expanded, nil, nil)
	if err != nil {
		return err
	}
	defer func() { _ = journal.Close() }()

	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = journal.Load()
	return err
}
