// Package testutil provides shared test helpers for setting up vaults.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/storage"
)

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// WriteNote writes name.md with the given content into dir.
func WriteNote(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
