// Package graph builds the directed wikilink graph over the filtered note
// set and derives per-note degrees.
package graph

import (
	"log/slog"
	"sort"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
	"github.com/marc-alexis-com/Markdown-link-analyser/internal/parser"
)

// Graph holds the outbound adjacency sets and derived in-degrees of the
// filtered note set.
type Graph struct {
	outbound map[string]map[string]struct{}
	inbound  map[string]int
}

// Build reads every filtered note through read, extracts its [[...]]
// references, and keeps only edges whose trimmed target is the exact name of
// another filtered note. Repeated links to the same target count once and
// self-references are dropped. A note whose content cannot be read here
// contributes no out-edges but may still receive in-edges.
func Build(notes map[string]models.Note, read func(path string) ([]byte, error), logger *slog.Logger) *Graph {
	g := &Graph{
		outbound: make(map[string]map[string]struct{}, len(notes)),
		inbound:  make(map[string]int, len(notes)),
	}

	for name, note := range notes {
		g.outbound[name] = make(map[string]struct{})
		data, err := read(note.Path)
		if err != nil {
			logger.Error("link pass: read failed, note has no outgoing links",
				slog.String("note", name), slog.String("error", err.Error()))
			continue
		}
		for _, target := range parser.ExtractLinks(string(data)) {
			if target == name {
				continue
			}
			if _, ok := notes[target]; !ok {
				continue
			}
			g.outbound[name][target] = struct{}{}
		}
		logger.Debug("links extracted",
			slog.String("note", name), slog.Int("outgoing", len(g.outbound[name])))
	}

	for name := range notes {
		for source := range notes {
			if _, ok := g.outbound[source][name]; ok {
				g.inbound[name]++
			}
		}
	}

	return g
}

// OutDegree returns the number of distinct filtered notes name links to.
func (g *Graph) OutDegree(name string) int {
	return len(g.outbound[name])
}

// InDegree returns the number of distinct filtered notes linking to name.
func (g *Graph) InDegree(name string) int {
	return g.inbound[name]
}

// Edges returns every retained edge, sorted by source then target.
func (g *Graph) Edges() []models.Link {
	var out []models.Link
	for source, targets := range g.outbound {
		for target := range targets {
			out = append(out, models.Link{Source: source, Target: target})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
