// ABOUTME: Interface definition for journal file persistence.
// ABOUTME: Defines the contract for loading and saving the whole entry store.
package storage

// JournalStore defines operations for persisting a Store as a single file.
type JournalStore interface {
	// Load reads the whole journal, creating an empty one if none exists.
	Load() (*Store, error)

	// Save replaces the journal's content with the full store.
	Save(store *Store) error

	// Path returns the location of the journal file.
	Path() string

	// Close releases any resources held by the store.
	Close() error
}
