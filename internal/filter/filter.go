// Package filter decides which notes survive the tag constraints.
package filter

import "github.com/marc-alexis-com/Markdown-link-analyser/internal/models"

// Criteria holds the externally supplied tag constraints. Both sets default
// to empty, which disables the corresponding check.
type Criteria struct {
	Select models.TagSet // a note must carry all of these
	Ignore models.TagSet // a note must carry none of these
}

// Match reports whether a note with the given tags passes both constraints.
// Both checks are pure predicates; their order does not affect the result.
func (c Criteria) Match(tags models.TagSet) bool {
	if len(c.Select) > 0 && !tags.HasAll(c.Select) {
		return false
	}
	if len(c.Ignore) > 0 && !tags.Disjoint(c.Ignore) {
		return false
	}
	return true
}
