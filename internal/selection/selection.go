// Package selection applies count, percentage, and size-budget constraints
// to the ranked note list.
package selection

import (
	"math"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
)

// Constraints are the export-subset limits. Zero values mean the
// corresponding constraint is not applied; all present constraints combine
// conjunctively.
type Constraints struct {
	TopN       int
	TopPercent float64
	MaxBytes   int64
}

// EffectiveLimit resolves TopN and TopPercent against the ranked population
// size. The percentage-derived count is floor(percent/100 × population) and
// only applies when positive; when both limits are present the smaller wins.
// The second return value reports whether any count limit applies.
func (c Constraints) EffectiveLimit(population int) (int, bool) {
	limit := 0
	set := false
	if c.TopN > 0 {
		limit = c.TopN
		set = true
	}
	if c.TopPercent > 0 && c.TopPercent <= 100 {
		n := int(math.Floor(c.TopPercent / 100 * float64(population)))
		if n > 0 && (!set || n < limit) {
			limit = n
			set = true
		}
	}
	return limit, set
}

// Apply walks records in ranked order and returns the prefix that satisfies
// every constraint. The size budget is strict: a record whose inclusion
// would push the running total above MaxBytes stops the walk, with no
// skipping ahead to smaller records further down the list.
func (c Constraints) Apply(records []models.DegreeRecord) []models.DegreeRecord {
	limit, hasLimit := c.EffectiveLimit(len(records))

	var out []models.DegreeRecord
	var total int64
	for _, r := range records {
		if hasLimit && len(out) >= limit {
			break
		}
		if c.MaxBytes > 0 && total+r.Size > c.MaxBytes {
			break
		}
		out = append(out, r)
		total += r.Size
	}
	return out
}
