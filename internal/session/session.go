// ABOUTME: Session binds the journal file, entry store, and a working date for one command.
// ABOUTME: Every mutation is written through to the journal file before returning.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"cloud.google.com/go/civil"

	"github.com/2389-research/standup/internal/models"
	"github.com/2389-research/standup/internal/storage"
)

// PathProvider resolves the journal file location.
type PathProvider func() (string, error)

// Order selects how List arranges entries.
type Order int

const (
	OldestFirst Order = iota
	NewestFirst
)

// Options configures Open.
type Options struct {
	// DateOverride is an optional YYYY-MM-DD working date. Empty means today.
	DateOverride string

	// Path resolves the journal file. Required.
	Path PathProvider

	// Now is the clock used for "today". Defaults to time.Now.
	Now func() time.Time

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Session is one command's view of the journal.
type Session struct {
	journal storage.JournalStore
	store   *storage.Store
	date    civil.Date
	logger  *slog.Logger
}

// Open resolves the journal path, loads the journal, and fixes the working date.
func Open(opts Options) (*Session, error) {
	if opts.Path == nil {
		return nil, models.ConfigError("open session", errors.New("no journal path provider"))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	date := models.LocalDate(now())
	if opts.DateOverride != "" {
		d, err := models.ParseDate(opts.DateOverride)
		if err != nil {
			return nil, err
		}
		date = d
	}

	path, err := opts.Path()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve journal path: %w", err)
	}

	codec := storage.NewCodec(storage.WithClock(now), storage.WithLogger(logger))
	journal, err := storage.NewJournalFile(path, codec, logger)
	if err != nil {
		return nil, err
	}

	store, err := journal.Load()
	if err != nil {
		return nil, err
	}

	logger.Debug("session opened", "path", path, "date", date, "entries", store.Len())
	return &Session{
		journal: journal,
		store:   store,
		date:    date,
		logger:  logger,
	}, nil
}

// WorkingDate returns the date commands operate on.
func (s *Session) WorkingDate() civil.Date {
	return s.date
}

// Path returns the journal file location.
func (s *Session) Path() string {
	return s.journal.Path()
}

// CurrentEntry returns the working date's entry, or an empty one.
func (s *Session) CurrentEntry() models.Entry {
	if e, ok := s.store.Get(s.date); ok {
		return e
	}
	return models.FromDate(s.date)
}

// Record appends message to the working date's aspect list and saves.
func (s *Session) Record(aspect models.Aspect, message string) (models.Entry, error) {
	e := s.CurrentEntry().Add(aspect, message)
	if err := s.put(e); err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

// DeleteEntry removes the working date's entry and saves.
// The boolean reports whether an entry existed.
func (s *Session) DeleteEntry() (models.Entry, bool, error) {
	e, ok := s.store.Delete(s.date)
	if err := s.flush(); err != nil {
		s.restore(s.date, e, ok)
		return models.Entry{}, false, err
	}
	return e, ok, nil
}

// DeleteLine removes the note at the 0-based index from the working date's
// aspect list and saves. An out-of-range index leaves the entry unchanged.
func (s *Session) DeleteLine(aspect models.Aspect, index int) (models.Entry, error) {
	before := s.CurrentEntry()
	e := before.Remove(aspect, index)
	if e.Equal(before) {
		s.logger.Debug("line out of range, entry unchanged",
			"date", s.date, "aspect", aspect, "index", index)
	}
	if err := s.put(e); err != nil {
		return models.Entry{}, err
	}
	return e, nil
}

// AllEntries returns every entry in ascending date order.
func (s *Session) AllEntries() []models.Entry {
	return s.store.List()
}

// Show returns the display text of the working date's entry.
func (s *Session) Show() string {
	return s.CurrentEntry().String()
}

// List returns the display text of every entry in the requested order.
func (s *Session) List(order Order) []string {
	entries := s.AllEntries()
	if order == NewestFirst {
		slices.Reverse(entries)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	return out
}

// Search returns entries with a note containing query, newest first.
func (s *Session) Search(query string) []models.Entry {
	var matches []models.Entry
	entries := s.AllEntries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Contains(query) {
			matches = append(matches, entries[i])
		}
	}
	return matches
}

func (s *Session) flush() error {
	if err := s.journal.Save(s.store); err != nil {
		return fmt.Errorf("failed to save journal: %w", err)
	}
	return nil
}

// put stores e and saves. A failed save puts back what was there before.
func (s *Session) put(e models.Entry) error {
	prev, had := s.store.Get(e.Date())
	s.store.Insert(e)
	if err := s.flush(); err != nil {
		s.restore(e.Date(), prev, had)
		return err
	}
	return nil
}

// restore resets date to prev, or removes it when there was no entry.
func (s *Session) restore(date civil.Date, prev models.Entry, had bool) {
	if had {
		s.store.Insert(prev)
		return
	}
	s.store.Delete(date)
}
