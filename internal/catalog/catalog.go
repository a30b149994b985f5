package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// Tier identifies a named difficulty bundle.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// AllTiers returns all tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return string(t)
	}
}

// Item is a single question unit. Items are immutable once loaded;
// per-session usage tracking lives in the word pool, never on the item.
type Item struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Answer string `json:"answer"`
	Tier   Tier   `json:"tier"`
}

// Catalog is the full authored item set shared by all sessions.
type Catalog struct {
	Items []Item
}

//go:embed words.json
var wordsJSON []byte

// Load parses and validates the embedded word catalog.
func Load() (*Catalog, error) {
	return Parse(wordsJSON)
}

// Parse validates raw catalog JSON against the catalog schema and decodes it.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateCatalog(raw); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}

	var doc struct {
		Words []Item `json:"words"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Words))
	for _, it := range doc.Words {
		if seen[it.ID] {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}

	return &Catalog{Items: doc.Words}, nil
}

// ByTier returns the items belonging to the given tier.
func (c *Catalog) ByTier(tier Tier) []Item {
	return lo.Filter(c.Items, func(it Item, _ int) bool {
		return it.Tier == tier
	})
}

// Answers returns the answer texts for a tier, excluding the given item id.
// Used to build decoy options for choice-based game modes.
func (c *Catalog) Answers(tier Tier, excludeID string) []string {
	items := lo.Filter(c.Items, func(it Item, _ int) bool {
		return it.Tier == tier && it.ID != excludeID
	})
	return lo.Map(items, func(it Item, _ int) string {
		return it.Answer
	})
}
