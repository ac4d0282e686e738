// ABOUTME: In-memory date-keyed store of standup entries backed by a B-tree.
// ABOUTME: Holds one entry per date and lists them in ascending date order.
package storage

import (
	"io"

	"cloud.google.com/go/civil"
	"github.com/google/btree"

	"github.com/2389-research/standup/internal/models"
)

const storeDegree = 16

// Store maps calendar dates to entries.
type Store struct {
	tree *btree.BTreeG[models.Entry]
}

func byDate(a, b models.Entry) bool {
	return a.Date().Before(b.Date())
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{tree: btree.NewG(storeDegree, byDate)}
}

// Get returns the entry stored for date.
func (s *Store) Get(date civil.Date) (models.Entry, bool) {
	return s.tree.Get(models.FromDate(date))
}

// Insert stores entry under its date, replacing any entry already there.
func (s *Store) Insert(entry models.Entry) {
	s.tree.ReplaceOrInsert(entry)
}

// Delete removes and returns the entry stored for date.
func (s *Store) Delete(date civil.Date) (models.Entry, bool) {
	return s.tree.Delete(models.FromDate(date))
}

// List returns every entry in ascending date order.
func (s *Store) List() []models.Entry {
	out := make([]models.Entry, 0, s.tree.Len())
	s.tree.Ascend(func(e models.Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return s.tree.Len()
}

// LoadFrom builds a fresh store from the encoded entries read from r.
func LoadFrom(r io.Reader, codec *Codec) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, models.IOError("read journal", err)
	}

	entries, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	s := NewStore()
	for _, e := range entries {
		s.Insert(e)
	}
	return s, nil
}

// FlushTo encodes every entry and writes the full result to w.
func (s *Store) FlushTo(w io.Writer, codec *Codec) error {
	data, err := codec.Encode(s.List())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return models.IOError("write journal", err)
	}
	return nil
}
