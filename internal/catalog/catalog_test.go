package catalog

import (
	"strings"
	"testing"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	if err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}

	for _, tier := range AllTiers() {
		if n := len(cat.ByTier(tier)); n < 10 {
			t.Errorf("tier %s has %d items, want at least 10 for choice modes", tier, n)
		}
	}
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`{"words":[
		{"id":"w1","prompt":"book","answer":"kitap","tier":"easy"},
		{"id":"w1","prompt":"pen","answer":"kalem","tier":"easy"}
	]}`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_SchemaRejectsMissingField(t *testing.T) {
	raw := []byte(`{"words":[{"id":"w1","prompt":"book","tier":"easy"}]}`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected validation error for missing answer")
	}
}

func TestParse_SchemaRejectsUnknownTier(t *testing.T) {
	raw := []byte(`{"words":[{"id":"w1","prompt":"book","answer":"kitap","tier":"insane"}]}`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected validation error for unknown tier")
	}
}

func TestParse_SchemaRejectsEmptyAnswer(t *testing.T) {
	raw := []byte(`{"words":[{"id":"w1","prompt":"book","answer":"","tier":"easy"}]}`)
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected validation error for empty answer")
	}
}

func TestCatalog_Answers(t *testing.T) {
	cat := &Catalog{Items: []Item{
		{ID: "a", Prompt: "book", Answer: "kitap", Tier: TierEasy},
		{ID: "b", Prompt: "pen", Answer: "kalem", Tier: TierEasy},
		{ID: "c", Prompt: "to go", Answer: "gitmek", Tier: TierMedium},
	}}

	answers := cat.Answers(TierEasy, "a")
	if len(answers) != 1 || answers[0] != "kalem" {
		t.Errorf("Answers = %v, want [kalem]", answers)
	}
}
