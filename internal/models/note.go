// Package models defines the domain types for the link analyser.
package models

// Note represents one Markdown file discovered in the vault. Name is the
// note's identity: the file name without its extension, unique per run.
type Note struct {
	Name string
	Path string // relative to the vault root
	Size int64  // bytes, 0 when the size lookup failed
}

// TagSet is an unordered set of case-sensitive tag tokens, without the
// leading marker character.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from the given tokens.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add inserts a tag into the set.
func (s TagSet) Add(tag string) {
	s[tag] = struct{}{}
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// HasAll reports whether every tag of other is in s.
func (s TagSet) HasAll(other TagSet) bool {
	for t := range other {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Disjoint reports whether s and other share no tag.
func (s TagSet) Disjoint(other TagSet) bool {
	for t := range other {
		if s.Has(t) {
			return false
		}
	}
	return true
}

// Link represents a directed edge between two notes.
type Link struct {
	Source string
	Target string
}

// DegreeRecord is the per-note connectivity summary the ranking and
// selection stages operate on.
type DegreeRecord struct {
	Name     string
	Path     string
	Outbound int // distinct notes this note links to
	Inbound  int // distinct notes linking to this note
	Total    int // Outbound + Inbound
	Size     int64
}
