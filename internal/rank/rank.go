// Package rank assembles per-note degree records and orders them by
// connectivity.
package rank

import (
	"log/slog"
	"sort"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/graph"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
)

// Build returns one DegreeRecord per filtered note, sorted by total degree
// descending with ties broken by name so the ordering is deterministic. Byte
// sizes come from a fresh size lookup; a failed lookup records 0 and the run
// continues.
func Build(g *graph.Graph, notes map[string]models.Note, size func(path string) (int64, error), logger *slog.Logger) []models.DegreeRecord {
	records := make([]models.DegreeRecord, 0, len(notes))
	for name, note := range notes {
		sz, err := size(note.Path)
		if err != nil {
			logger.Error("size lookup failed, recording 0",
				slog.String("note", name), slog.String("error", err.Error()))
			sz = 0
		}
		out := g.OutDegree(name)
		in := g.InDegree(name)
		records = append(records, models.DegreeRecord{
			Name:     name,
			Path:     note.Path,
			Outbound: out,
			Inbound:  in,
			Total:    out + in,
			Size:     sz,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Total != records[j].Total {
			return records[i].Total > records[j].Total
		}
		return records[i].Name < records[j].Name
	})

	return records
}
