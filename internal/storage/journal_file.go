// ABOUTME: Single-file JSON journal storage for standup entries.
// ABOUTME: Loads the whole file into a Store and saves it back with an atomic rename.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/2389-research/standup/internal/models"
)

// JournalFile stores every entry in one JSON file.
type JournalFile struct {
	path   string
	codec  *Codec
	logger *slog.Logger
}

var _ JournalStore = (*JournalFile)(nil)

// NewJournalFile creates a journal backed by the file at path.
func NewJournalFile(path string, codec *Codec, logger *slog.Logger) (*JournalFile, error) {
	if path == "" {
		return nil, models.ConfigError("open journal", errors.New("journal path is empty"))
	}
	if codec == nil {
		codec = NewCodec()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JournalFile{
		path:   path,
		codec:  codec,
		logger: logger,
	}, nil
}

// Path returns the journal file location.
func (j *JournalFile) Path() string {
	return j.path
}

// Load reads the journal into a fresh Store. A missing file is created empty.
func (j *JournalFile) Load() (*Store, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, os.ErrNotExist) {
		j.logger.Debug("journal not found, creating it", "path", j.path)
		store := NewStore()
		if err := j.Save(store); err != nil {
			return nil, err
		}
		return store, nil
	}
	if err != nil {
		return nil, models.IOError("read journal", err)
	}

	// Zero-byte journals were written by older versions on first run.
	if len(bytes.TrimSpace(data)) == 0 {
		j.logger.Debug("journal is empty", "path", j.path)
		return NewStore(), nil
	}

	store, err := LoadFrom(bytes.NewReader(data), j.codec)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", j.path, err)
	}
	j.logger.Debug("journal loaded", "path", j.path, "entries", store.Len())
	return store, nil
}

// Save overwrites the journal with the full content of store.
func (j *JournalFile) Save(store *Store) error {
	var buf bytes.Buffer
	if err := store.FlushTo(&buf, j.codec); err != nil {
		return err
	}
	if err := atomicWrite(j.path, buf.Bytes()); err != nil {
		return models.IOError("write journal", err)
	}
	j.logger.Debug("journal saved", "path", j.path, "entries", store.Len())
	return nil
}

// Close releases any resources held by the store.
func (j *JournalFile) Close() error {
	return nil
}

// atomicWrite writes data to a temp file beside path and renames it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()[:8]+".tmp")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
