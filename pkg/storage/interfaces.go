package storage

import "io"

// StorageService stores raw image bytes and hands back a stable URL.
type StorageService interface {
	// Save writes a new file and returns its URL.
	Save(filename string, src io.Reader) (string, error)

	// Replace archives the file behind oldURL, writes the new file and
	// returns its URL. The archived copy is kept, not deleted.
	Replace(oldURL string, filename string, src io.Reader) (string, error)
}
