// Package storage defines the vault file-system abstraction.
package storage

import "github.com/marc-alexis-com/Markdown-link-analyser/internal/models"

// Provider is the interface for vault file operations. All paths are
// relative to the vault root.
type Provider interface {
	// List returns every .md note under the vault root.
	List() ([]models.Note, error)
	// Read returns the raw bytes of the note at path.
	Read(path string) ([]byte, error)
	// Size returns the current byte size of the note at path.
	Size(path string) (int64, error)
}
