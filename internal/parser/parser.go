// Package parser extracts tags and wikilink targets from raw note text.
package parser

import (
	"regexp"
	"strings"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```.*?```")
	tagRe       = regexp.MustCompile(`(?:#)?([A-Za-z0-9_\-]+)`)
	wikilinkRe  = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
)

// StripCodeFences removes fenced code regions (triple-backtick delimited,
// possibly spanning multiple lines) so their content cannot masquerade as
// tags.
func StripCodeFences(content string) string {
	return codeFenceRe.ReplaceAllString(content, "")
}

// ExtractTags returns the set of distinct tag tokens in content: an optional
// leading marker followed by alphanumerics, underscores, or hyphens. Tokens
// are case-sensitive and stored without the marker. Callers must strip code
// fences first.
func ExtractTags(content string) models.TagSet {
	matches := tagRe.FindAllStringSubmatch(content, -1)
	tags := make(models.TagSet, len(matches))
	for _, m := range matches {
		tags.Add(m[1])
	}
	return tags
}

// ExtractLinks returns every [[...]] target in content, trimmed of
// surrounding whitespace, in order of appearance. Repeated targets are kept;
// deduplication belongs to the graph builder.
func ExtractLinks(content string) []string {
	matches := wikilinkRe.FindAllStringSubmatch(content, -1)
	var out []string
	for _, m := range matches {
		target := strings.TrimSpace(m[1])
		if target == "" {
			continue
		}
		out = append(out, target)
	}
	return out
}
