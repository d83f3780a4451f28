// Package internal provides the main application initialization and the
// analysis pipeline.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/export"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/filter"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/graph"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/parser"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/rank"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/selection"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/storage"
)

// Run executes one full analysis pass with the given options. The phases are
// strictly ordered: scan, tag extraction and filtering, link building,
// ranking, selection, export. Per-note failures are logged and degrade to
// safe defaults; only a missing vault or an unreadable vault root aborts the
// run.
func Run(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := newLogger(cfg.App.Verbose)

	logger.Info("starting analysis",
		slog.String("vault", cfg.Vault.Path),
		slog.String("output_csv", cfg.Export.CSVPath))
	if cfg.Export.DryRun {
		logger.Info("dry-run mode: no changes will be made")
	}

	store, err := storage.NewFS(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	notes, err := store.List()
	if err != nil {
		return fmt.Errorf("list vault: %w", err)
	}
	logger.Info("vault scanned", slog.Int("markdown_files", len(notes)))

	// Tag pass: a note whose content cannot be read never enters the tag
	// index and is therefore excluded from everything downstream.
	tagIndex := make(map[string]models.TagSet, len(notes))
	for _, n := range notes {
		data, err := store.Read(n.Path)
		if err != nil {
			logger.Error("tag pass: read failed, excluding note",
				slog.String("note", n.Name), slog.String("error", err.Error()))
			continue
		}
		tagIndex[n.Name] = parser.ExtractTags(parser.StripCodeFences(string(data)))
	}

	crit := filter.Criteria{
		Select: models.NewTagSet(cfg.Filter.SelectTags...),
		Ignore: models.NewTagSet(cfg.Filter.IgnoreTags...),
	}
	filtered := make(map[string]models.Note, len(notes))
	for _, n := range notes {
		tags, indexed := tagIndex[n.Name]
		if !indexed {
			continue
		}
		if crit.Match(tags) {
			filtered[n.Name] = n
		}
	}
	logger.Info("tag filter applied", slog.Int("remaining_notes", len(filtered)))

	// Link pass re-reads content so a note turning unreadable between the
	// passes still degrades on its own.
	g := graph.Build(filtered, store.Read, logger)

	records := rank.Build(g, filtered, store.Size, logger)

	constraints := selection.Constraints{
		TopN:       cfg.Selection.Top,
		TopPercent: cfg.Selection.TopPercent,
		MaxBytes:   cfg.Selection.MaxBytes(),
	}
	selected := constraints.Apply(records)
	if len(selected) > 0 {
		logger.Info("selection computed", slog.Int("selected_notes", len(selected)))
	} else {
		logger.Info("no notes selected under the given constraints")
	}

	if cfg.Export.DryRun {
		for _, r := range selected {
			logger.Info("would copy note",
				slog.String("file", r.Path), slog.Int64("bytes", r.Size))
		}
		logger.Info("dry-run: skipped CSV, copy, and combine")
		return nil
	}

	if !cfg.Export.NoCSV {
		if err := export.WriteCSVFile(cfg.Export.CSVPath, records); err != nil {
			logger.Error("csv report failed", slog.String("error", err.Error()))
		} else {
			logger.Info("csv report written", slog.String("path", cfg.Export.CSVPath))
		}
	} else {
		logger.Info("csv output disabled")
	}

	if cfg.Export.Dest != "" && len(selected) > 0 {
		logger.Info("copying selected notes",
			slog.Int("count", len(selected)), slog.String("dest", cfg.Export.Dest))
		export.Copy(store, selected, cfg.Export.Dest, logger)
	}

	if cfg.Export.CombinePath != "" {
		if len(selected) > 0 {
			logger.Info("combining selected notes",
				slog.Int("count", len(selected)), slog.String("path", cfg.Export.CombinePath))
			if err := export.Combine(store, selected, cfg.Export.CombinePath, logger); err != nil {
				logger.Error("combine failed", slog.String("error", err.Error()))
			}
		} else {
			logger.Info("no notes to combine")
		}
	}

	logger.Info("processing complete")
	return nil
}

// newLogger returns a Debug-level stderr logger for verbose runs and a
// no-op logger otherwise. Diagnostic output is entirely gated on verbosity.
func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
