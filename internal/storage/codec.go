// ABOUTME: JSON codec between standup entries and the journal file format.
// ABOUTME: Decoding is lenient per field and strict only about the top-level shape.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/tidwall/gjson"

	"github.com/2389-research/standup/internal/models"
)

// Codec converts entries to and from the journal file's JSON array.
type Codec struct {
	now    func() time.Time
	logger *slog.Logger
}

// CodecOption configures optional Codec dependencies.
type CodecOption func(*Codec)

// WithClock sets the clock used to date entries whose date is missing or unreadable.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used to report decode fallbacks.
func WithLogger(logger *slog.Logger) CodecOption {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCodec creates a codec using the system clock unless overridden.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fileEntry is the on-disk shape of one entry.
type fileEntry struct {
	Date      string   `json:"date"`
	Today     []string `json:"today"`
	Yesterday []string `json:"yesterday"`
	Blocker   []string `json:"blocker"`
}

// Encode renders entries as a JSON array in the given order.
func (c *Codec) Encode(entries []models.Entry) ([]byte, error) {
	out := make([]fileEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, fileEntry{
			Date:      e.Date().String(),
			Today:     nonNil(e.Today()),
			Yesterday: nonNil(e.Yesterday()),
			Blocker:   nonNil(e.Blocker()),
		})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode journal: %w", err)
	}
	return data, nil
}

// Decode parses a JSON array of entry objects.
// A missing or unparsable date falls back to the codec's current day. Note
// lists that are missing or not arrays decode as empty, and non-string
// elements are dropped.
func (c *Codec) Decode(data []byte) ([]models.Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, models.DecodeError("decode journal", errors.New("content is not valid JSON"))
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, models.DecodeError("decode journal", errors.New("top level is not an array"))
	}

	var (
		entries []models.Entry
		badElem = -1
		index   int
	)
	root.ForEach(func(_, obj gjson.Result) bool {
		if !obj.IsObject() {
			badElem = index
			return false
		}
		entries = append(entries, c.decodeEntry(index, obj))
		index++
		return true
	})
	if badElem >= 0 {
		return nil, models.DecodeError("decode journal", fmt.Errorf("element %d is not an object", badElem))
	}

	return entries, nil
}

func (c *Codec) decodeEntry(index int, obj gjson.Result) models.Entry {
	e := models.FromDate(c.decodeDate(index, obj.Get("date")))

	for _, aspect := range []models.Aspect{models.Today, models.Yesterday, models.Blocker} {
		list := obj.Get(aspect.String())
		if !list.IsArray() {
			continue
		}
		list.ForEach(func(_, note gjson.Result) bool {
			if note.Type == gjson.String {
				e = e.Add(aspect, note.Str)
			}
			return true
		})
	}

	return e
}

func (c *Codec) decodeDate(index int, value gjson.Result) civil.Date {
	today := models.LocalDate(c.now())
	if value.Type != gjson.String {
		c.logger.Debug("journal entry has no date, using today", "index", index, "date", today)
		return today
	}
	d, err := civil.ParseDate(value.Str)
	if err != nil {
		c.logger.Debug("journal entry has unreadable date, using today",
			"index", index, "value", value.Str, "date", today)
		return today
	}
	return d
}

func nonNil(notes []string) []string {
	if notes == nil {
		return []string{}
	}
	return notes
}
