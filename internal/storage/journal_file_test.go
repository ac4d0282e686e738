// ABOUTME: Tests for single-file JSON journal storage.
// ABOUTME: Covers creation on first load, save/load roundtrip, empty files, and write failures.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389-research/standup/internal/models"
)

func newTestJournal(t *testing.T, path string) *JournalFile {
	t.Helper()
	j, err := NewJournalFile(path, fixedCodec(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournalLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".standup.json")
	j := newTestJournal(t, path)

	store, err := j.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJournalLoadCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "standup.json")
	j := newTestJournal(t, path)

	_, err := j.Load()
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestJournalSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".standup.json")
	j := newTestJournal(t, path)

	store := NewStore()
	store.Insert(models.FromDate(jan1).Add(models.Today, "Fix bug").Add(models.Blocker, "review"))
	store.Insert(models.FromDate(jan1.AddDays(-1)).Add(models.Yesterday, "Planning"))
	require.NoError(t, j.Save(store))

	loaded, err := newTestJournal(t, path).Load()
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	for i, e := range store.List() {
		assert.True(t, e.Equal(loaded.List()[i]), "entry %d", i)
	}
}

func TestJournalSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".standup.json")
	j := newTestJournal(t, path)

	big := NewStore()
	for i := 0; i < 10; i++ {
		big.Insert(models.FromDate(jan1.AddDays(i)).Add(models.Today, strings.Repeat("x", 100)))
	}
	require.NoError(t, j.Save(big))

	small := NewStore()
	small.Insert(models.FromDate(jan1))
	require.NoError(t, j.Save(small))

	loaded, err := j.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestJournalLoadZeroByteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".standup.json")
	require.NoError(t, os.WriteFile(path, []byte(" \n"), 0o600))

	store, err := newTestJournal(t, path).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestJournalLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".standup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"date":"2024-01-01"}`), 0o600))

	_, err := newTestJournal(t, path).Load()
	require.Error(t, err)
	assert.Equal(t, models.KindDecode, models.KindOf(err))
	assert.Contains(t, err.Error(), path)
}

func TestJournalLoadDirectoryIsIOError(t *testing.T) {
	dir := t.TempDir()

	_, err := newTestJournal(t, dir).Load()
	require.Error(t, err)
	assert.Equal(t, models.KindIO, models.KindOf(err))
}

func TestJournalSaveFailureLeavesNoTempFiles(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "journal.json")
	require.NoError(t, os.Mkdir(target, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o600))

	store := NewStore()
	store.Insert(models.FromDate(jan1))
	err := newTestJournal(t, target).Save(store)
	require.Error(t, err)
	assert.Equal(t, models.KindIO, models.KindOf(err))

	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "journal.json", entries[0].Name())
	assert.FileExists(t, filepath.Join(target, "keep"))
}

func TestNewJournalFileRequiresPath(t *testing.T) {
	_, err := NewJournalFile("", nil, nil)
	require.Error(t, err)
	assert.Equal(t, models.KindConfig, models.KindOf(err))
}
