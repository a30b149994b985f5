package wordpool

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/AhmetShbz/wordrush/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Items: []catalog.Item{
		{ID: "e1", Prompt: "book", Answer: "kitap", Tier: catalog.TierEasy},
		{ID: "e2", Prompt: "pen", Answer: "kalem", Tier: catalog.TierEasy},
		{ID: "e3", Prompt: "water", Answer: "su", Tier: catalog.TierEasy},
		{ID: "e4", Prompt: "flower", Answer: "çiçek", Tier: catalog.TierEasy},
		{ID: "m1", Prompt: "to go", Answer: "gitmek", Tier: catalog.TierMedium},
	}}
}

func fixedRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPool_NoRepeatsWithinLap(t *testing.T) {
	p := New(testCatalog(), fixedRng())

	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		item, err := p.SelectNext(catalog.TierEasy)
		if err != nil {
			t.Fatalf("unexpected error on draw %d: %v", i+1, err)
		}
		if seen[item.ID] {
			t.Fatalf("item %s repeated within a lap", item.ID)
		}
		seen[item.ID] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 easy items drawn, got %d", len(seen))
	}
}

func TestPool_LapResetAfterExhaustion(t *testing.T) {
	p := New(testCatalog(), fixedRng())

	for i := 0; i < 4; i++ {
		if _, err := p.SelectNext(catalog.TierEasy); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := p.Remaining(catalog.TierEasy); got != 0 {
		t.Fatalf("Remaining = %d after full lap, want 0", got)
	}

	// Fifth draw starts a new lap instead of failing.
	item, err := p.SelectNext(catalog.TierEasy)
	if err != nil {
		t.Fatalf("expected lap reset, got error: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a real item after lap reset")
	}
	if got := p.Remaining(catalog.TierEasy); got != 3 {
		t.Errorf("Remaining = %d after first draw of new lap, want 3", got)
	}
}

func TestPool_EmptyTierExhausted(t *testing.T) {
	p := New(testCatalog(), fixedRng())
	_, err := p.SelectNext(catalog.TierHard)
	if !errors.Is(err, ErrExhausted) {
		t.Errorf("expected ErrExhausted for empty tier, got %v", err)
	}
}

func TestPool_IndependentPoolsDoNotShareUsage(t *testing.T) {
	cat := testCatalog()
	p1 := New(cat, fixedRng())
	p2 := New(cat, fixedRng())

	for i := 0; i < 4; i++ {
		if _, err := p1.SelectNext(catalog.TierEasy); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := p2.Remaining(catalog.TierEasy); got != 4 {
		t.Errorf("second pool Remaining = %d, want 4 (usage must be per-pool)", got)
	}
}

func TestPool_Decoys(t *testing.T) {
	p := New(testCatalog(), fixedRng())

	decoys := p.Decoys(catalog.TierEasy, "e1", 3)
	if len(decoys) != 3 {
		t.Fatalf("expected 3 decoys, got %d", len(decoys))
	}
	for _, d := range decoys {
		if d == "kitap" {
			t.Error("decoys must exclude the current item's answer")
		}
	}
}
