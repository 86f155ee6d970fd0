package conversation

import (
	"strings"
	"testing"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

func TestLineResults(t *testing.T) {
	entries := []domain.CatalogEntry{
		{ID: "SPEED", DisplayName: "SPEED", Alias: "速度"},
		{ID: "SLOWNESS", DisplayName: "SLOWNESS"},
		{ID: "LUCK", DisplayName: "LUCK"},
	}

	got := LineResults(entries, 10)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "1. SPEED (速度)") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}

	got = LineResults(entries, 2)
	if !strings.Contains(got, "1 more") || strings.Contains(got, "LUCK") {
		t.Fatalf("expected truncation:\n%s", got)
	}
}

func TestLineStatus(t *testing.T) {
	d := domain.NewDraft()
	if got := LineStatus(d); !strings.Contains(got, "(unnamed)") || !strings.Contains(got, "bad, regular, good") {
		t.Fatalf("unexpected status: %q", got)
	}

	d.Names = domain.Names{Bad: "Sludge", Regular: "Ale", Good: "Fine Ale"}
	d.Effects = append(d.Effects, domain.EffectLine{Kind: domain.KindCustom, Raw: "SPEED/1/30"})
	got := LineStatus(d)
	if got != "Ale: 0 ingredient(s), 1 effect(s)" {
		t.Fatalf("unexpected status: %q", got)
	}
}

func TestLineGuideCoversEverySection(t *testing.T) {
	for _, s := range []domain.Section{domain.SectionLore, domain.SectionServerCommands, domain.SectionPlayerCommands} {
		if !strings.Contains(LineGuide(s), "+++") {
			t.Errorf("%s guide lacks the quality prefixes", s)
		}
	}
}
