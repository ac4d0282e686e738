// ABOUTME: Core data model for standup entries and note aspects.
// ABOUTME: Entry is a value type; every mutator returns a new Entry and leaves the receiver untouched.
package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// DateLayout is the on-disk and command-line date format.
const DateLayout = "2006-01-02"

// Aspect names one of the three note lists of an Entry.
type Aspect int

const (
	Today Aspect = iota
	Yesterday
	Blocker
)

// ValidAspects lists the accepted aspect tokens in display order.
var ValidAspects = []string{
	"today",
	"yesterday",
	"blocker",
}

// String returns the aspect token.
func (a Aspect) String() string {
	switch a {
	case Today:
		return "today"
	case Yesterday:
		return "yesterday"
	case Blocker:
		return "blocker"
	}
	return fmt.Sprintf("Aspect(%d)", int(a))
}

// ParseAspect converts a token into an Aspect.
func ParseAspect(token string) (Aspect, error) {
	switch token {
	case "today":
		return Today, nil
	case "yesterday":
		return Yesterday, nil
	case "blocker":
		return Blocker, nil
	}
	return 0, InvalidInput("parse aspect",
		fmt.Errorf("unknown aspect %q (valid: %s)", token, strings.Join(ValidAspects, ", ")))
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, InvalidInput("parse date", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return d, nil
}

// LocalDate returns the calendar day of t in the local time zone.
func LocalDate(t time.Time) civil.Date {
	return civil.DateOf(t.In(time.Local))
}

// Entry is one day's standup notes.
type Entry struct {
	date      civil.Date
	today     []string
	yesterday []string
	blocker   []string
}

// New creates an empty entry dated on the local day of now.
func New(now time.Time) Entry {
	return FromDate(LocalDate(now))
}

// FromDate creates an empty entry for the given date.
func FromDate(date civil.Date) Entry {
	return Entry{date: date}
}

// Date returns the entry's calendar date.
func (e Entry) Date() civil.Date {
	return e.date
}

// Today returns a copy of the today notes.
func (e Entry) Today() []string { return e.Notes(Today) }

// Yesterday returns a copy of the yesterday notes.
func (e Entry) Yesterday() []string { return e.Notes(Yesterday) }

// Blocker returns a copy of the blocker notes.
func (e Entry) Blocker() []string { return e.Notes(Blocker) }

// Notes returns a copy of the list named by aspect.
func (e Entry) Notes(aspect Aspect) []string {
	return slices.Clone(e.list(aspect))
}

// IsBlocked reports whether the entry has any blocker notes.
func (e Entry) IsBlocked() bool {
	return len(e.blocker) > 0
}

// Add returns a new entry with message appended to the aspect's list.
func (e Entry) Add(aspect Aspect, message string) Entry {
	old := e.list(aspect)
	next := make([]string, 0, len(old)+1)
	next = append(next, old...)
	next = append(next, message)
	return e.with(aspect, next)
}

// Remove returns a new entry without the note at the 0-based index.
// An index outside the list yields an entry equal to e.
func (e Entry) Remove(aspect Aspect, index int) Entry {
	old := e.list(aspect)
	if index < 0 || index >= len(old) {
		return e.clone()
	}
	next := make([]string, 0, len(old)-1)
	next = append(next, old[:index]...)
	next = append(next, old[index+1:]...)
	return e.with(aspect, next)
}

// SetDate returns a new entry moved to date.
func (e Entry) SetDate(date civil.Date) Entry {
	c := e.clone()
	c.date = date
	return c
}

// Equal reports whether both entries have the same date and notes.
func (e Entry) Equal(other Entry) bool {
	return e.date == other.date &&
		slices.Equal(e.today, other.today) &&
		slices.Equal(e.yesterday, other.yesterday) &&
		slices.Equal(e.blocker, other.blocker)
}

// Contains reports whether any note contains query, ignoring case.
func (e Entry) Contains(query string) bool {
	q := strings.ToLower(query)
	for _, list := range [][]string{e.today, e.yesterday, e.blocker} {
		for _, note := range list {
			if strings.Contains(strings.ToLower(note), q) {
				return true
			}
		}
	}
	return false
}

// Heading returns the "YYYY-MM-DD - Weekday" title line.
func (e Entry) Heading() string {
	return fmt.Sprintf("%s - %s", e.date.String(), e.date.In(time.Local).Weekday())
}

// String renders the entry for terminal display.
func (e Entry) String() string {
	var sb strings.Builder
	sb.WriteString(e.Heading())
	sb.WriteString("\n")
	writeSection(&sb, Today, e.today)
	writeSection(&sb, Yesterday, e.yesterday)
	if e.IsBlocked() {
		writeSection(&sb, Blocker, e.blocker)
	}
	return sb.String()
}

func writeSection(sb *strings.Builder, aspect Aspect, notes []string) {
	fmt.Fprintf(sb, "  %s:\n", aspect)
	for i, note := range notes {
		fmt.Fprintf(sb, "    %d. %s\n", i+1, note)
	}
}

func (e Entry) list(aspect Aspect) []string {
	switch aspect {
	case Today:
		return e.today
	case Yesterday:
		return e.yesterday
	case Blocker:
		return e.blocker
	}
	return nil
}

// with returns a copy of e whose aspect list is replaced by notes.
func (e Entry) with(aspect Aspect, notes []string) Entry {
	c := e.clone()
	switch aspect {
	case Today:
		c.today = notes
	case Yesterday:
		c.yesterday = notes
	case Blocker:
		c.blocker = notes
	}
	return c
}

func (e Entry) clone() Entry {
	return Entry{
		date:      e.date,
		today:     slices.Clone(e.today),
		yesterday: slices.Clone(e.yesterday),
		blocker:   slices.Clone(e.blocker),
	}
}
