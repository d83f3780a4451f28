// Package export writes the outputs of a run: the CSV report, the copied
// note files, and the combined Markdown artifact.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/apperr"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/storage"
)

// CSVHeader is the header row of the report, one column per DegreeRecord
// field.
var CSVHeader = []string{"nom_du_fichier", "nombre_liens_sortants", "nombre_liens_entrants", "total_liens", "file_size"}

// WriteCSV writes the semicolon-delimited report for every ranked record.
func WriteCSV(w io.Writer, records []models.DegreeRecord) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Path,
			strconv.Itoa(r.Outbound),
			strconv.Itoa(r.Inbound),
			strconv.Itoa(r.Total),
			strconv.FormatInt(r.Size, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to path.
func WriteCSVFile(path string, records []models.DegreeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create csv %s: %w: %w", path, apperr.ErrWrite, err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return fmt.Errorf("export: csv %s: %w: %w", path, apperr.ErrWrite, err)
	}
	return nil
}

// Copy copies the selected notes from the vault into dest, preserving their
// relative paths. Every failure is logged and skips that note only; the rest
// of the batch is still attempted.
func Copy(store storage.Provider, records []models.DegreeRecord, dest string, logger *slog.Logger) {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		err = fmt.Errorf("export: %w: %w", apperr.ErrMkdir, err)
		logger.Error("could not create destination directory",
			slog.String("dest", dest), slog.String("error", err.Error()))
	}
	for i, r := range records {
		if err := copyNote(store, r.Path, dest); err != nil {
			logger.Error("copy failed, skipping note",
				slog.String("note", r.Name), slog.String("error", err.Error()))
			continue
		}
		logger.Debug("copied note",
			slog.Int("n", i+1), slog.Int("of", len(records)), slog.String("file", r.Path))
	}
}

func copyNote(store storage.Provider, rel, dest string) error {
	data, err := store.Read(rel)
	if err != nil {
		return fmt.Errorf("export: %w: %w", apperr.ErrCopy, err)
	}
	target := filepath.Join(dest, rel)
	if dir := filepath.Dir(target); dir != dest {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w: %w", apperr.ErrMkdir, err)
		}
	}
	if err := writeFile(target, data); err != nil {
		return fmt.Errorf("export: %w: %w", apperr.ErrCopy, err)
	}
	return nil
}

// Combine concatenates the selected notes' raw contents into one file at
// path, in ranked order, with exactly one blank line between consecutive
// notes. An unreadable note is logged and left out.
func Combine(store storage.Provider, records []models.DegreeRecord, path string, logger *slog.Logger) error {
	var parts [][]byte
	for _, r := range records {
		data, err := store.Read(r.Path)
		if err != nil {
			logger.Error("skipping note in combined output",
				slog.String("note", r.Name), slog.String("error", err.Error()))
			continue
		}
		parts = append(parts, data)
	}

	var buf []byte
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, '\n', '\n')
		}
		buf = append(buf, p...)
	}

	if err := writeFile(path, buf); err != nil {
		return fmt.Errorf("export: combine %s: %w: %w", path, apperr.ErrWrite, err)
	}
	return nil
}

// writeFile atomically writes content: tmp file → fsync → rename.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mdlinks-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	success = true
	return nil
}
