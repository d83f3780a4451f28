package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/apperr"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to vault directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// safePath resolves a relative path against the vault root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes vault root: %s", rel)
	}
	return abs, nil
}

// List walks the vault and returns one Note per .md file. A note's identity
// is its base file name without the extension; when two files share a stem
// the first one in walk order wins and later ones are dropped, keeping
// identities unique per run.
func (f *FS) List() ([]models.Note, error) {
	var out []models.Note
	seen := make(map[string]struct{})
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), ".md")
		if _, dup := seen[name]; dup {
			return nil
		}
		seen[name] = struct{}{}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(f.root, p)
		out = append(out, models.Note{
			Name: name,
			Path: rel,
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	return out, nil
}

// Read returns the raw bytes of a vault file, with the unusual line
// terminators U+2028 and U+2029 normalised to newlines.
func (f *FS) Read(path string) ([]byte, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w: %w", path, apperr.ErrRead, err)
	}
	return normaliseLineTerminators(data), nil
}

// Size returns the current on-disk size of a vault file.
func (f *FS) Size(path string) (int64, error) {
	abs, err := f.safePath(path)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return 0, fmt.Errorf("storage: size %s: %w: %w", path, apperr.ErrSizeLookup, err)
	}
	return info.Size(), nil
}

func normaliseLineTerminators(data []byte) []byte {
	s := string(data)
	if !strings.ContainsAny(s, "  ") {
		return data
	}
	s = strings.ReplaceAll(s, " ", "\n")
	s = strings.ReplaceAll(s, " ", "\n")
	return []byte(s)
}
