package selection

import (
	"testing"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal/models"
)

func ranked(sizes ...int64) []models.DegreeRecord {
	out := make([]models.DegreeRecord, len(sizes))
	for i, sz := range sizes {
		out[i] = models.DegreeRecord{
			Name:  string(rune('A' + i)),
			Total: len(sizes) - i,
			Size:  sz,
		}
	}
	return out
}

func TestApply_NoConstraints(t *testing.T) {
	records := ranked(1, 2, 3)
	got := Constraints{}.Apply(records)
	if len(got) != 3 {
		t.Errorf("len = %d, want all 3 records", len(got))
	}
}

func TestApply_TopN(t *testing.T) {
	records := ranked(1, 1, 1, 1)
	got := Constraints{TopN: 2}.Apply(records)
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("got %v, want the 2 highest ranked", got)
	}
}

func TestApply_TopNMonotonic(t *testing.T) {
	records := ranked(1, 1, 1, 1, 1)
	prev := Constraints{TopN: 2}.Apply(records)
	next := Constraints{TopN: 4}.Apply(records)
	if len(next) < len(prev) {
		t.Fatalf("raising TopN shrank the selection: %d -> %d", len(prev), len(next))
	}
	for i, r := range prev {
		if next[i] != r {
			t.Errorf("raising TopN replaced record %d: %v != %v", i, next[i], r)
		}
	}
}

func TestApply_PercentFloor(t *testing.T) {
	records := ranked(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	got := Constraints{TopPercent: 25}.Apply(records)
	if len(got) != 2 {
		t.Errorf("25%% of 10 notes should floor to 2, got %d", len(got))
	}
}

func TestApply_PercentFlooringToZeroIsIgnored(t *testing.T) {
	records := ranked(1, 1, 1)
	got := Constraints{TopPercent: 10}.Apply(records)
	// floor(0.10 × 3) = 0: the percentage constraint does not apply.
	if len(got) != 3 {
		t.Errorf("len = %d, want 3 when the derived count is zero", len(got))
	}
}

func TestApply_CountAndPercentMostRestrictiveWins(t *testing.T) {
	records := ranked(1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	got := Constraints{TopN: 5, TopPercent: 20}.Apply(records)
	if len(got) != 2 {
		t.Errorf("min(5, 20%% of 10) = 2, got %d", len(got))
	}
	got = Constraints{TopN: 1, TopPercent: 50}.Apply(records)
	if len(got) != 1 {
		t.Errorf("min(1, 50%% of 10) = 1, got %d", len(got))
	}
}

func TestApply_SizeBudgetStrict(t *testing.T) {
	const mb = 1024 * 1024
	records := ranked(10*mb, 20*mb, 5*mb)
	got := Constraints{MaxBytes: 25 * mb}.Apply(records)
	// Adding the 20 MB note would reach 30 MB > 25 MB; iteration stops there
	// even though the 5 MB note alone would fit.
	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("got %v, want only the first 10 MB note", got)
	}
}

func TestApply_SizeBudgetExactFit(t *testing.T) {
	records := ranked(10, 15)
	got := Constraints{MaxBytes: 25}.Apply(records)
	if len(got) != 2 {
		t.Errorf("a total exactly at the ceiling is allowed, got %d records", len(got))
	}
}

func TestEffectiveLimit(t *testing.T) {
	if limit, ok := (Constraints{}).EffectiveLimit(10); ok {
		t.Errorf("no constraints should report no limit, got %d", limit)
	}
	if limit, ok := (Constraints{TopN: 3}).EffectiveLimit(10); !ok || limit != 3 {
		t.Errorf("EffectiveLimit = %d/%v, want 3/true", limit, ok)
	}
	if limit, ok := (Constraints{TopPercent: 25}).EffectiveLimit(10); !ok || limit != 2 {
		t.Errorf("EffectiveLimit = %d/%v, want 2/true", limit, ok)
	}
	if _, ok := (Constraints{TopPercent: 10}).EffectiveLimit(3); ok {
		t.Error("a zero-flooring percentage must not impose a limit")
	}
}
